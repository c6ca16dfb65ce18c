package fac_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/fac-payments-go/internal/infrastructure/fac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_Post_Success(t *testing.T) {
	var gotBody, gotContentType, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		_, _ = w.Write([]byte("<AuthorizeResponse/>"))
	}))
	defer server.Close()

	transport := fac.NewHTTPTransport(nil, 5*time.Second)

	resp, err := transport.Post(context.Background(), server.URL+"/Authorize", fac.RequestHeaders(), []byte("<AuthorizeRequest/>"))

	require.NoError(t, err)
	assert.Equal(t, "<AuthorizeResponse/>", string(resp))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "<AuthorizeRequest/>", gotBody)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
}

func TestHTTPTransport_Post_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("x", 2000)))
	}))
	defer server.Close()

	transport := fac.NewHTTPTransport(nil, 5*time.Second)

	resp, err := transport.Post(context.Background(), server.URL, fac.RequestHeaders(), nil)

	require.Error(t, err)
	assert.Nil(t, resp)

	transportErr, ok := fac.IsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
	assert.Len(t, transportErr.Body, 512)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPTransport_Post_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	transport := fac.NewHTTPTransport(nil, time.Second)

	_, err := transport.Post(context.Background(), url, fac.RequestHeaders(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error making request")
	_, ok := fac.IsTransportError(err)
	assert.False(t, ok)
}

func TestHTTPTransport_RespectsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	transport := fac.NewHTTPTransport(nil, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := transport.Post(ctx, server.URL, fac.RequestHeaders(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPTransport_UsesProvidedClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("X-Test")))
	}))
	defer server.Close()

	hc := &http.Client{Transport: headerRoundTripper{next: http.DefaultTransport}}
	transport := fac.NewHTTPTransport(hc, 0)

	resp, err := transport.Post(context.Background(), server.URL, fac.RequestHeaders(), nil)

	require.NoError(t, err)
	assert.Equal(t, "via-custom-client", string(resp))
}

type headerRoundTripper struct {
	next http.RoundTripper
}

func (h headerRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Test", "via-custom-client")
	return h.next.RoundTrip(r)
}
