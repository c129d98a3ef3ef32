package identify

import (
	"context"

	"github.com/killallgit/songid/internal/services/acoustid"
	"github.com/killallgit/songid/pkg/chromaprint"
)

// Fingerprinter produces an acoustic fingerprint for a local audio file
type Fingerprinter interface {
	Calculate(ctx context.Context, filePath string) (*chromaprint.Fingerprint, error)
}

// LookupClient queries the identification service and returns the raw
// response body
type LookupClient interface {
	Lookup(ctx context.Context, params acoustid.LookupParams) (string, error)
}
