package identify

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"

	apperrors "github.com/killallgit/songid/pkg/errors"
)

// allowedMIMETypes lists the content types accepted for fingerprinting:
// the MP3, M4A and WAV families plus the generic octet-stream fallback
// returned for unrecognized binary content. fpcalc itself is the final
// arbiter for those.
var allowedMIMETypes = []string{
	"audio/mpeg",
	"audio/mp3",
	"audio/mpeg3",
	"audio/x-mpeg-3",
	"audio/mp4",
	"audio/m4a",
	"audio/x-m4a",
	"audio/wav",
	"audio/x-wav",
	"audio/wave",
	"audio/vnd.wave",
	"application/octet-stream",
}

// validateFile checks that path points to a usable audio file. The checks
// run in a fixed order and stop at the first failure: non-empty path,
// existence, readability, regular file, then content-detected MIME type.
// Detection inspects file content, never the extension, so a text file
// renamed to .mp3 is rejected before it reaches fpcalc.
func validateFile(path string) error {
	if path == "" {
		return apperrors.ValidationError("file", "no file provided")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.NotFound(path)
		}
		// Stat fails with EACCES when a parent directory is unreadable;
		// that is still a permission problem, not a malformed input.
		if os.IsPermission(err) {
			return apperrors.PermissionDenied(path).WithCause(err)
		}
		return apperrors.ValidationError("file", err.Error()).WithCause(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return apperrors.PermissionDenied(path).WithCause(err)
	}
	f.Close()

	if !info.Mode().IsRegular() {
		return apperrors.ValidationError("file", fmt.Sprintf("%s is not a file", path))
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return apperrors.ValidationError("file", "could not detect content type").WithCause(err)
	}
	for _, allowed := range allowedMIMETypes {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return apperrors.ValidationError("file",
		fmt.Sprintf("unsupported format %s, accepted formats: mp3, m4a, wav", mtype.String()))
}

// validateResponseFormat checks that format is one of the recognized
// values. Callers lowercase before validating.
func validateResponseFormat(format string) error {
	switch format {
	case FormatJSON, FormatXML:
		return nil
	case "":
		return apperrors.ValidationError("format", "no response format provided")
	default:
		return apperrors.ValidationError("format",
			fmt.Sprintf("unknown response format %q, accepted formats: json, xml", format))
	}
}
