package acoustid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/songid/pkg/errors"
)

func TestClient_Lookup(t *testing.T) {
	rawBody := `{"status": "ok", "results": [{"id": "9ff43b6a", "score": 0.97}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/lookup", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "test-client-key", query.Get("client"))
		assert.Equal(t, "245", query.Get("duration"))
		assert.Equal(t, "AQADtEmi0JG1CYkx", query.Get("fingerprint"))
		assert.Equal(t, "recordings compress", query.Get("meta")) // '+' decodes to space
		assert.Equal(t, "json", query.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rawBody))
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	body, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "test-client-key",
		DurationSeconds: 245,
		Fingerprint:     "AQADtEmi0JG1CYkx",
		Format:          FormatJSON,
	})
	require.NoError(t, err)

	// The body must come back verbatim, not re-serialized.
	assert.Equal(t, rawBody, body)
}

func TestClient_Lookup_FingerprintEscaped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Query() decodes, so a round-trip proves the raw value was escaped.
		assert.Equal(t, "AQAD+/7a&=x", r.URL.Query().Get("fingerprint"))
		_, _ = w.Write([]byte(`{"status": "ok", "results": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "key",
		DurationSeconds: 10,
		Fingerprint:     "AQAD+/7a&=x",
		Format:          FormatJSON,
	})
	require.NoError(t, err)
}

func TestClient_Lookup_ServiceErrorJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","error":{"message":"invalid fingerprint"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "key",
		DurationSeconds: 245,
		Fingerprint:     "AQAD",
		Format:          FormatJSON,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeRemoteService))
	assert.Contains(t, err.Error(), "invalid fingerprint")
}

func TestClient_Lookup_ServiceErrorStatusCaseInsensitive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ERROR","error":{"message":"invalid API key"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "key",
		DurationSeconds: 245,
		Fingerprint:     "AQAD",
		Format:          FormatJSON,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeRemoteService))
	assert.Contains(t, err.Error(), "invalid API key")
}

func TestClient_Lookup_ServiceErrorXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "xml", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><response><status>error</status><error><message>invalid fingerprint</message></error></response>`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "key",
		DurationSeconds: 245,
		Fingerprint:     "AQAD",
		Format:          FormatXML,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeRemoteService))
	assert.Contains(t, err.Error(), "invalid fingerprint")
}

func TestClient_Lookup_XMLSuccessVerbatim(t *testing.T) {
	rawBody := `<?xml version="1.0"?><response><status>ok</status><results/></response>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rawBody))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	body, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "key",
		DurationSeconds: 245,
		Fingerprint:     "AQAD",
		Format:          FormatXML,
	})
	require.NoError(t, err)
	assert.Equal(t, rawBody, body)
}

func TestClient_Lookup_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(Config{BaseURL: server.URL, Timeout: 1 * time.Second})

	_, err := client.Lookup(context.Background(), LookupParams{
		ClientKey:       "key",
		DurationSeconds: 245,
		Fingerprint:     "AQAD",
		Format:          FormatJSON,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNetwork))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, "https://api.acoustid.org", client.baseURL)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
}
