package chromaprint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// Chromaprint wraps the fpcalc fingerprinting tool
type Chromaprint struct {
	fpcalcPath string
	timeout    time.Duration
}

// New creates a new Chromaprint instance. fpcalcPath may be a bare binary
// name resolved via PATH or an absolute path; it is passed to the subprocess
// directly, the working directory is never changed to locate it.
func New(fpcalcPath string, timeout time.Duration) *Chromaprint {
	return &Chromaprint{
		fpcalcPath: fpcalcPath,
		timeout:    timeout,
	}
}

// ValidateBinary checks if fpcalc is available
func (c *Chromaprint) ValidateBinary() error {
	if _, err := exec.LookPath(c.fpcalcPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFpcalcNotFound, c.fpcalcPath)
	}
	return nil
}

// Calculate runs fpcalc against filePath and returns the fingerprint and
// duration. The tool is always asked for JSON output regardless of what
// format the caller wants from the identification service.
func (c *Chromaprint) Calculate(ctx context.Context, filePath string) (*Fingerprint, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.fpcalcPath, "-json", filePath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, NewProcessingError("fingerprint_calculation", filePath, err, stderr.String())
	}

	if stdout.Len() == 0 {
		return nil, NewProcessingError("fingerprint_calculation", filePath, ErrEmptyOutput, stderr.String())
	}

	var fp Fingerprint
	if err := json.Unmarshal(stdout.Bytes(), &fp); err != nil {
		return nil, NewProcessingError("fingerprint_parsing", filePath, err, "")
	}

	if fp.Fingerprint == "" {
		return nil, NewProcessingError("fingerprint_parsing", filePath, ErrEmptyFingerprint, "")
	}

	return &fp, nil
}
