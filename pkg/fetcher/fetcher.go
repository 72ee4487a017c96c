package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"sprawdzacz/models"
)

// userAgent identifies the checker as a regular browser; the tracked
// site serves a cut-down page to unknown clients.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

const requestTimeout = 60 * time.Second

// StatusError reports a non-200 response. Kept as a distinct type so
// callers can word status problems differently from transport ones.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// Fetcher performs single-attempt page fetches. Session cookies are
// configured once per run and attached to every request; the client is
// read-only after construction and safe to reuse serially.
type Fetcher struct {
	client  *http.Client
	cookies []models.SessionCookie
}

func NewFetcher(cookies []models.SessionCookie) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: requestTimeout},
		cookies: cookies,
	}
}

// GetPage fetches url and returns the response body as a string.
// Non-200 responses are errors; there are no retries.
func (f *Fetcher) GetPage(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	for _, c := range f.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(bodyBytes), nil
}
