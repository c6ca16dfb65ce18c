package application

import (
	"context"
	"net/http"
)

// Transport is the port for the HTTP round-trip to FAC. Timeouts and
// cancellation are the transport's concern.
type Transport interface {
	Post(ctx context.Context, url string, header http.Header, body []byte) ([]byte, error)
}
