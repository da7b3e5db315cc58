package dictionaryapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const baseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

// DefaultTimeout bounds the whole request, including body read
const DefaultTimeout = 5 * time.Second

// ErrNotFound is returned when the service has no entry for the word
var ErrNotFound = errors.New("word not found")

// StatusError reports a non-404 unsuccessful response status
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unsuccessful API response %d", e.Code)
}

// DecodeError reports a response body that is not valid JSON
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client implements integration with DictionaryAPI
// docs: https://dictionaryapi.dev/
type Client struct {
	client *http.Client
}

// Get fetches dictionary entries for a single word. The word is embedded
// in the URL path as-is. A body holding valid JSON of an unexpected shape
// yields no entries and no error; the caller owns the shape check.
func (c Client) Get(ctx context.Context, word string) ([]WordEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+word, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionaryapi.dev: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from dictionaryapi")
		return nil, &StatusError{Code: resp.StatusCode}
	}
	var entries []WordEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		if !json.Valid(body) {
			return nil, &DecodeError{Err: err}
		}
		// valid JSON that is not an entry array
		return nil, nil
	}
	return entries, nil
}

// NewClient creates a Client with a request-scoped HTTP client. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Client{client: &http.Client{Timeout: timeout}}
}
