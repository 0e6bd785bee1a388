package instagramimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/orgball2608/mindlink/internal/instagram"
)

// fetchPage downloads the HTML of cleanURL. Any transport failure or
// non-2xx status becomes a *instagram.FetchError.
func (i *InstaImpl) fetchPage(ctx context.Context, cleanURL string) (string, error) {
	if i.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.fetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cleanURL, nil)
	if err != nil {
		return "", &instagram.FetchError{URL: cleanURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	i.setBrowserHeaders(req)

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", &instagram.FetchError{URL: cleanURL, Err: err}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(i.limitBody(resp.Body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		i.logger.Debug("Upstream response headers", "url", cleanURL, "status", resp.StatusCode, "headers", resp.Header)
		return "", &instagram.FetchError{URL: cleanURL, Status: resp.StatusCode, Body: string(body)}
	}

	if readErr != nil {
		return "", &instagram.FetchError{URL: cleanURL, Err: fmt.Errorf("failed to read response body: %w", readErr)}
	}

	return string(body), nil
}

// setBrowserHeaders makes the request look like a desktop browser navigation
// so Instagram serves the full page with its Open Graph tags.
func (i *InstaImpl) setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", i.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")
}

func (i *InstaImpl) limitBody(r io.Reader) io.Reader {
	if i.maxBodyBytes <= 0 {
		return r
	}
	return io.LimitReader(r, i.maxBodyBytes)
}
