package types

import (
	"github.com/killallgit/songid/internal/services/identify"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Fingerprinter identify.Fingerprinter
	Lookup        identify.LookupClient

	// ClientKey is the server-side AcoustID credential used for uploads
	ClientKey string

	// TempDir receives uploaded audio while it is being identified
	TempDir string

	// MaxUploadSize caps the accepted request body in bytes
	MaxUploadSize int64
}
