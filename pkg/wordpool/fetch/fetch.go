// Package fetch retrieves raw word corpora over HTTP and normalizes the
// heterogeneous bodies third-party hosts serve into flat token lists.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cognicore/wordpool/pkg/wordpool/internalerr"
)

// DefaultTimeout bounds a single corpus fetch.
const DefaultTimeout = 8 * time.Second

const defaultUserAgent = "wordpool"

// Fetcher downloads and parses one corpus per call. The zero value is
// usable; Client and Timeout exist for tests and tuning.
type Fetcher struct {
	Client    *http.Client
	Timeout   time.Duration
	UserAgent string
}

// Fetch GETs rawURL and returns the normalized token list. Failures map
// onto the internalerr fetch sentinels (ErrTimeout, ErrBadStatus,
// ErrParseFailure, ErrEmptyResult, ErrNetwork), matchable with errors.Is.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]string, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrNetwork, err)
	}
	ua := f.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := f.httpClient().Do(req)
	if err != nil {
		return nil, wrapTransportErr(err, timeout)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d from %s", internalerr.ErrBadStatus, resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransportErr(err, timeout)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body from %s", internalerr.ErrEmptyResult, rawURL)
	}

	words := Tokens(body)
	if len(words) == 0 {
		if malformedJSON(body) {
			return nil, fmt.Errorf("%w: malformed JSON body from %s", internalerr.ErrParseFailure, rawURL)
		}
		return nil, fmt.Errorf("%w: no usable tokens in body from %s", internalerr.ErrEmptyResult, rawURL)
	}
	return words, nil
}

func wrapTransportErr(err error, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", internalerr.ErrTimeout, timeout)
	}
	return fmt.Errorf("%w: %v", internalerr.ErrNetwork, err)
}

func (f *Fetcher) httpClient() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}
