package acoustid

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	apperrors "github.com/killallgit/songid/pkg/errors"
)

// lookupMeta is the fixed metadata-richness flag sent with every lookup.
// The plus separators are literal on the wire, so the query string is
// assembled by hand below instead of through url.Values.
const lookupMeta = "recordings+compress"

const defaultUserAgent = "songid/1.0 (+https://github.com/killallgit/songid)"

// Client handles communication with the AcoustID lookup API
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewClient creates a new AcoustID client
func NewClient(cfg Config) *Client {
	// Apply defaults
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 3
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = cfg.RequestsPerSecond
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.acoustid.org"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	limiter := rate.NewLimiter(
		rate.Every(time.Second/time.Duration(cfg.RequestsPerSecond)),
		cfg.BurstSize,
	)

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: limiter,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
	}
}

// Lookup issues a GET against the lookup endpoint and returns the raw
// response body in the requested format. A body whose top-level status
// field reports an error becomes a REMOTE_SERVICE error carrying the
// service's own message; transport failures become NETWORK errors.
// Nothing is retried.
func (c *Client) Lookup(ctx context.Context, params LookupParams) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", apperrors.NetworkError(fmt.Errorf("rate limiter wait: %w", err))
	}

	// Only the fingerprint needs escaping; everything else goes out as-is.
	lookupURL := fmt.Sprintf(
		"%s/v2/lookup?client=%s&duration=%d&fingerprint=%s&meta=%s&format=%s",
		c.baseURL,
		params.ClientKey,
		params.DurationSeconds,
		url.QueryEscape(params.Fingerprint),
		lookupMeta,
		params.Format,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", apperrors.NetworkError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NetworkError(fmt.Errorf("read response: %w", err))
	}

	// A service-reported error takes precedence over the HTTP status:
	// AcoustID delivers its error bodies on non-2xx codes too.
	if err := checkStatus(body, params.Format); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NetworkError(fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	return string(body), nil
}

// checkStatus inspects the top-level status field of the body and turns a
// service-reported error into a structured error. The comparison is case
// insensitive.
func checkStatus(body []byte, format string) error {
	switch format {
	case FormatXML:
		var parsed xmlResponse
		if err := xml.Unmarshal(body, &parsed); err != nil {
			return nil // not a recognizable response envelope, leave it to the caller
		}
		if strings.EqualFold(parsed.Status, "error") {
			return apperrors.ServiceError(serviceMessage(parsed.Error.Message))
		}
	default:
		status := gjson.GetBytes(body, "status").String()
		if strings.EqualFold(status, "error") {
			return apperrors.ServiceError(serviceMessage(gjson.GetBytes(body, "error.message").String()))
		}
	}
	return nil
}

func serviceMessage(message string) string {
	if message == "" {
		return "identification service reported an error"
	}
	return message
}
