// Package fetch retrieves raw activity records from external profile APIs.
// Each fetcher returns a fixed-shape record; callers treat any error as the
// source being absent rather than failing the pipeline.
package fetch

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds every profile API request.
const DefaultTimeout = 5 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; FigureIt/1.0)"

// Error represents an error during a profile fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
