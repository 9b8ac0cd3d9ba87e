package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/studycast/internal/store"
)

// jsonCall describes one JSON request to the backend.
type jsonCall struct {
	// method is the HTTP method.
	method string
	// uri is the path below the project URL.
	uri string
	// query is appended to the URL.
	query url.Values
	// body is encoded as the JSON request body when set.
	body any
	// header is added to the request.
	header http.Header
}

// fetchJSON reads JSON from the specified URI with the specified query.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, uri string, query url.Values) (*FetchJSONResult[T], error) {
	return doJSON[T](c, ctx, jsonCall{method: http.MethodGet, uri: uri, query: query})
}

// doJSON sends a JSON request and decodes the JSON response.
// An empty response body leaves Data nil.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func doJSON[T any](c *ClientImpl, ctx context.Context, call jsonCall) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, call.uri)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody

	if call.body != nil {
		payload, marshalErr := json.Marshal(call.body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode request: %w", marshalErr)
		}

		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, call.method, route, body)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Accept", "application/json")

	if call.body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	for key, values := range call.header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	if call.query != nil {
		request.URL.RawQuery = call.query.Encode()
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &FetchJSONResult[T]{StatusCode: response.StatusCode}, statusError(response)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return &FetchJSONResult[T]{StatusCode: response.StatusCode}, nil
		}

		return &FetchJSONResult[T]{StatusCode: response.StatusCode}, fmt.Errorf("failed to decode response: %w", err)
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}

// statusError turns a failed response into an error carrying the backend message.
func statusError(response *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyLength)) //nolint:errcheck // Best effort.

	var body errorBody
	if json.Unmarshal(raw, &body) != nil {
		body.Message = strings.TrimSpace(string(raw))
	}

	if body.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", store.ErrDuplicatePodcast, body.text())
	}

	if message := body.text(); message != "" {
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedHTTPStatus, response.StatusCode, message)
	}

	return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
}

// eq builds a PostgREST equality filter.
func eq(value string) string {
	return "eq." + value
}
