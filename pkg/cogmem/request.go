package cogmem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Result is a decoded JSON response body. The service's response shapes are
// not contractually fixed per operation, so results are returned as an open
// string-keyed map rather than typed records.
type Result map[string]interface{}

// request composes the full endpoint URL, attaches auth and content-type
// headers, sends the request, and maps the response into a Result or error.
//
// Response handling order matters: the body is JSON-decoded first, and a
// decode failure is always an *APIError carrying the raw text and status,
// even when the status itself was 2xx. Only then is the status inspected;
// >= 400 becomes an *APIError whose message prefers the body's "error" field
// over its "message" field over the raw text. A successful result is returned
// unmodified.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body interface{}) (Result, error) {
	endpoint := c.baseURL + servicePath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cogmem: failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("cogmem: failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cogmem: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cogmem: failed to read response body: %w", err)
	}

	if c.logger != nil {
		c.logger.Debugf("%s %s -> %d (%d bytes)", method, servicePath+path, resp.StatusCode, len(raw))
	}

	var data Result
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &APIError{
			Message:    "invalid JSON response: " + string(raw),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			Message:    errorMessage(data, raw),
			StatusCode: resp.StatusCode,
		}
	}

	return data, nil
}

// errorMessage picks the user-facing message out of an error response body:
// the "error" field, else the "message" field, else the raw text.
func errorMessage(data Result, raw []byte) string {
	if msg, ok := data["error"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := data["message"].(string); ok && msg != "" {
		return msg
	}
	return string(raw)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Result, error) {
	return c.request(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (Result, error) {
	return c.request(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) patch(ctx context.Context, path string, body interface{}) (Result, error) {
	return c.request(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) del(ctx context.Context, path string) (Result, error) {
	return c.request(ctx, http.MethodDelete, path, nil, nil)
}
