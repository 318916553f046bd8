package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrFavouriteExists   = errors.New("recipe is already a favourite")
	ErrFavouriteNotFound = errors.New("favourite not found")
	ErrInvalidRecipeID   = errors.New("invalid recipe id")
	ErrPageOutOfRange    = errors.New("page is out of range")
)

// UpstreamError describes a failed call to the recipe provider.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("recipe api %s: status %d: %s", e.Op, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("recipe api %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("recipe api %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamNotFound reports whether err is an upstream 404.
func IsUpstreamNotFound(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusNotFound
}
