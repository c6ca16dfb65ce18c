package fac

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport uses hc when given, otherwise a client with timeout.
func NewHTTPTransport(hc *http.Client, timeout time.Duration) *HTTPTransport {
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &HTTPTransport{httpClient: hc}
}

// Post sends body to url and returns the raw response body of a 2xx answer.
func (t *HTTPTransport) Post(ctx context.Context, url string, header http.Header, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := respBody
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(excerpt)),
		}
	}

	return respBody, nil
}

// RequestHeaders are the headers FAC expects on both endpoints.
func RequestHeaders() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", ContentType)
	return h
}
