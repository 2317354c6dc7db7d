package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cognicore/wordpool/pkg/wordpool/internalerr"
)

type roundTrip func(*http.Request) *http.Response

func (rt roundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req), nil
}

type failTrip struct{ err error }

func (f failTrip) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

type stallTrip struct{}

func (stallTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	<-req.Context().Done()
	return nil, req.Context().Err()
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchSuccess(t *testing.T) {
	f := &Fetcher{Client: &http.Client{
		Transport: roundTrip(func(req *http.Request) *http.Response {
			if req.Header.Get("User-Agent") == "" {
				t.Error("Expected a User-Agent header")
			}
			return respond(200, "apple\ngrape\nmango\n")
		}),
	}}

	words, err := f.Fetch(context.Background(), "https://corpus.test/common.txt")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(words) != 3 || words[0] != "apple" {
		t.Errorf("Unexpected words: %v", words)
	}
}

func TestFetchBadStatus(t *testing.T) {
	f := &Fetcher{Client: &http.Client{
		Transport: roundTrip(func(*http.Request) *http.Response {
			return respond(404, "not found")
		}),
	}}

	_, err := f.Fetch(context.Background(), "https://corpus.test/missing.txt")
	if !errors.Is(err, internalerr.ErrBadStatus) {
		t.Fatalf("Expected ErrBadStatus, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error should carry the status code: %v", err)
	}
}

func TestFetchEmptyBody(t *testing.T) {
	f := &Fetcher{Client: &http.Client{
		Transport: roundTrip(func(*http.Request) *http.Response {
			return respond(200, "  \n ")
		}),
	}}

	_, err := f.Fetch(context.Background(), "https://corpus.test/empty.txt")
	if !errors.Is(err, internalerr.ErrEmptyResult) {
		t.Fatalf("Expected ErrEmptyResult, got %v", err)
	}
}

// A body that downloads fine but filters down to zero tokens is an empty
// corpus, not a parse failure.
func TestFetchNoUsableTokens(t *testing.T) {
	f := &Fetcher{Client: &http.Client{
		Transport: roundTrip(func(*http.Request) *http.Response {
			return respond(200, "12345 67890")
		}),
	}}

	_, err := f.Fetch(context.Background(), "https://corpus.test/junk.bin")
	if !errors.Is(err, internalerr.ErrEmptyResult) {
		t.Fatalf("Expected ErrEmptyResult, got %v", err)
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	f := &Fetcher{Client: &http.Client{
		Transport: roundTrip(func(*http.Request) *http.Response {
			return respond(200, `{"words": ["apple",`)
		}),
	}}

	_, err := f.Fetch(context.Background(), "https://corpus.test/broken.json")
	if !errors.Is(err, internalerr.ErrParseFailure) {
		t.Fatalf("Expected ErrParseFailure, got %v", err)
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	f := &Fetcher{Client: &http.Client{
		Transport: failTrip{err: errors.New("connection refused")},
	}}

	_, err := f.Fetch(context.Background(), "https://corpus.test/common.txt")
	if !errors.Is(err, internalerr.ErrNetwork) {
		t.Fatalf("Expected ErrNetwork, got %v", err)
	}
}

func TestFetchTimeout(t *testing.T) {
	f := &Fetcher{
		Client:  &http.Client{Transport: stallTrip{}},
		Timeout: 20 * time.Millisecond,
	}

	start := time.Now()
	_, err := f.Fetch(context.Background(), "https://corpus.test/slow.txt")
	if !errors.Is(err, internalerr.ErrTimeout) {
		t.Fatalf("Expected ErrTimeout, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Timeout did not bound the fetch")
	}
}
