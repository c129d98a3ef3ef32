package identify

import (
	"context"
	"strings"

	"github.com/killallgit/songid/internal/services/acoustid"
	apperrors "github.com/killallgit/songid/pkg/errors"
)

// Identifier drives the whole identification pipeline: it validates the
// configured file, derives its fingerprint and duration through a
// Fingerprinter, and resolves them against the identification service
// through a LookupClient.
//
// An Identifier is not safe for concurrent use. Callers running parallel
// lookups should use one Identifier per operation.
type Identifier struct {
	fingerprinter Fingerprinter
	lookup        LookupClient

	filePath       string
	clientKey      string
	responseFormat string
}

// New creates an Identifier with no file or client key configured and the
// response format defaulting to json. Configuration is applied through the
// setters, conventionally in file, client key, format order.
func New(fingerprinter Fingerprinter, lookup LookupClient) *Identifier {
	return &Identifier{
		fingerprinter:  fingerprinter,
		lookup:         lookup,
		responseFormat: FormatJSON,
	}
}

// SetFile sets the audio file to identify after validating it. On failure
// the previously configured file, if any, stays in effect.
func (i *Identifier) SetFile(path string) error {
	if err := validateFile(path); err != nil {
		return err
	}
	i.filePath = path
	return nil
}

// File returns the currently configured file path
func (i *Identifier) File() string {
	return i.filePath
}

// SetClientKey sets the identification service credential. The key is not
// validated here; it is checked before any lookup runs.
func (i *Identifier) SetClientKey(key string) {
	i.clientKey = key
}

// ClientKey returns the configured credential, or a validation error if
// none was ever set
func (i *Identifier) ClientKey() (string, error) {
	if i.clientKey == "" {
		return "", apperrors.ValidationError("client_key", "no client key provided")
	}
	return i.clientKey, nil
}

// SetResponseFormat sets the response format after lowercasing and
// validating it. On failure the previous, valid format stays in effect.
func (i *Identifier) SetResponseFormat(format string) error {
	format = strings.ToLower(format)
	if err := validateResponseFormat(format); err != nil {
		return err
	}
	i.responseFormat = format
	return nil
}

// ResponseFormat returns the currently configured response format
func (i *Identifier) ResponseFormat() string {
	return i.responseFormat
}

// SongDetails validates the configured file and runs the fingerprinting
// tool against it. Details are recomputed on every call.
func (i *Identifier) SongDetails(ctx context.Context) (*SongDetails, error) {
	if err := validateFile(i.filePath); err != nil {
		return nil, err
	}

	fp, err := i.fingerprinter.Calculate(ctx, i.filePath)
	if err != nil {
		return nil, apperrors.ToolError(err)
	}

	duration := int(fp.Duration)
	if duration < 0 {
		duration = 0
	}

	return &SongDetails{
		DurationSeconds: duration,
		Fingerprint:     fp.Fingerprint,
	}, nil
}

// Fingerprint returns the acoustic fingerprint for path, or for the
// currently configured file when path is empty
func (i *Identifier) Fingerprint(ctx context.Context, path string) (string, error) {
	details, err := i.detailsFor(ctx, path)
	if err != nil {
		return "", err
	}
	return details.Fingerprint, nil
}

// Duration returns the duration in whole seconds for path, or for the
// currently configured file when path is empty
func (i *Identifier) Duration(ctx context.Context, path string) (int, error) {
	details, err := i.detailsFor(ctx, path)
	if err != nil {
		return 0, err
	}
	return details.DurationSeconds, nil
}

func (i *Identifier) detailsFor(ctx context.Context, path string) (*SongDetails, error) {
	if path != "" {
		if err := i.SetFile(path); err != nil {
			return nil, err
		}
	}
	return i.SongDetails(ctx)
}

// Query runs the full pipeline and returns the raw response body from the
// identification service in the configured format. The client key is
// checked first, then the response format, then the file is validated and
// fingerprinted. Nothing is retried: tool, transport and service failures
// are each reported once.
func (i *Identifier) Query(ctx context.Context) (string, error) {
	clientKey, err := i.ClientKey()
	if err != nil {
		return "", err
	}

	if err := validateResponseFormat(i.responseFormat); err != nil {
		return "", err
	}

	details, err := i.SongDetails(ctx)
	if err != nil {
		return "", err
	}

	return i.lookup.Lookup(ctx, acoustid.LookupParams{
		ClientKey:       clientKey,
		DurationSeconds: details.DurationSeconds,
		Fingerprint:     details.Fingerprint,
		Format:          i.responseFormat,
	})
}
