package testhelpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// RecordedRequest is one request the stub gateway received.
type RecordedRequest struct {
	Path        string
	ContentType string
	Body        string
}

// StubGateway is an httptest server that answers like FAC.
type StubGateway struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	respond  func(r RecordedRequest) (int, string)
}

// StartStubGateway approves every standard authorization and returns a form
// for every 3DS one. The order number is echoed back in the response.
func StartStubGateway(t *testing.T) *StubGateway {
	g := &StubGateway{respond: defaultResponse}
	g.Server = httptest.NewServer(http.HandlerFunc(g.handle))
	t.Cleanup(g.Server.Close)
	return g
}

func (g *StubGateway) URL() string {
	return g.Server.URL
}

// RespondWith replaces the response for subsequent requests.
func (g *StubGateway) RespondWith(fn func(r RecordedRequest) (int, string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.respond = fn
}

func (g *StubGateway) Requests() []RecordedRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]RecordedRequest(nil), g.requests...)
}

func (g *StubGateway) RequireSingleRequest(t *testing.T) RecordedRequest {
	reqs := g.Requests()
	require.Len(t, reqs, 1)
	return reqs[0]
}

func (g *StubGateway) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := RecordedRequest{
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(body),
	}

	g.mu.Lock()
	g.requests = append(g.requests, rec)
	respond := g.respond
	g.mu.Unlock()

	status, resp := respond(rec)
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

func defaultResponse(r RecordedRequest) (int, string) {
	orderNumber := RequestField(r.Body, "OrderNumber")
	if r.Path == "/Authorize3DS" {
		return http.StatusOK, ThreeDSResponse("Success", "<form id=\""+orderNumber+"\"></form>")
	}
	return http.StatusOK, AuthorizeResponse("1", orderNumber)
}

// RequestField returns the text of the first element named tag in an
// authorization request document.
func RequestField(body, tag string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return ""
	}
	if el := doc.FindElement("//" + tag); el != nil {
		return el.Text()
	}
	return ""
}
