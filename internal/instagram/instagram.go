package instagram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/orgball2608/mindlink/internal/domain"
)

var ErrMissingURL = errors.New("URL parameter is required")

// FetchError is returned when the post page cannot be retrieved.
// Status and Body are set only when the upstream answered.
type FetchError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("Request failed with status code %d", e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HasResponse reports whether the upstream returned a status.
func (e *FetchError) HasResponse() bool {
	return e.Status != 0
}

// HTTPClient is the subset of *http.Client the extractor needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go
type Client interface {
	// GetMetadata returns the metadata of the post or reel at rawURL.
	// Results are cached under rawURL exactly as given.
	GetMetadata(ctx context.Context, rawURL string) (*domain.Metadata, error)
}
