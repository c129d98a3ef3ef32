package acoustid

import (
	"encoding/xml"
	"time"
)

// Response formats accepted by the lookup endpoint
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Config holds configuration for the AcoustID client
type Config struct {
	// HTTP configuration
	Timeout time.Duration // Default: 10s

	// Rate limiting. AcoustID allows 3 requests per second per client;
	// the limiter paces requests, it never retries them.
	RequestsPerSecond int // Default: 3
	BurstSize         int // Default: 3

	// User agent sent with every lookup
	UserAgent string

	// Base URL (for testing)
	BaseURL string // Default: https://api.acoustid.org
}

// LookupParams carries the query parameters for a single lookup
type LookupParams struct {
	ClientKey       string
	DurationSeconds int
	Fingerprint     string
	Format          string // "json" or "xml"
}

// xmlResponse mirrors just the status and error elements of the XML body.
// The rest of the body is relayed verbatim and never re-serialized.
type xmlResponse struct {
	XMLName xml.Name `xml:"response"`
	Status  string   `xml:"status"`
	Error   struct {
		Message string `xml:"message"`
	} `xml:"error"`
}
