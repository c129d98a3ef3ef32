package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode ErrorCode
		wantHTTP int
	}{
		{"validation", ValidationError("format", "unknown response format"), ErrCodeValidation, http.StatusBadRequest},
		{"not found", NotFound("/tmp/missing.mp3"), ErrCodeNotFound, http.StatusNotFound},
		{"permission", PermissionDenied("/tmp/locked.mp3"), ErrCodePermissionDenied, http.StatusForbidden},
		{"tool", ToolError(errors.New("exit status 1")), ErrCodeFingerprintTool, http.StatusUnprocessableEntity},
		{"network", NetworkError(errors.New("connection refused")), ErrCodeNetwork, http.StatusBadGateway},
		{"service", ServiceError("invalid fingerprint"), ErrCodeRemoteService, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GetCode(tt.err) != tt.wantCode {
				t.Errorf("GetCode() = %s, want %s", GetCode(tt.err), tt.wantCode)
			}
			if GetHTTPCode(tt.err) != tt.wantHTTP {
				t.Errorf("GetHTTPCode() = %d, want %d", GetHTTPCode(tt.err), tt.wantHTTP)
			}
			if !Is(tt.err, tt.wantCode) {
				t.Errorf("Is() = false, want true for %s", tt.wantCode)
			}
		})
	}
}

func TestServiceErrorCarriesMessage(t *testing.T) {
	err := ServiceError("invalid fingerprint")
	if err.Message != "invalid fingerprint" {
		t.Errorf("Expected message to be preserved verbatim, got %q", err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("exit status 2")
	err := ToolError(cause)
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
}

func TestGetCodeNonAppError(t *testing.T) {
	if GetCode(errors.New("plain")) != ErrCodeInternal {
		t.Error("Expected plain errors to map to INTERNAL")
	}
	if GetHTTPCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("Expected plain errors to map to 500")
	}
}
