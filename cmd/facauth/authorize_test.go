package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/fac-payments-go/internal/application/services/testhelpers"
)

type cliResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func runCLI(t *testing.T, gw *testhelpers.StubGateway, args ...string) (cliResult, error) {
	t.Setenv("FAC_MERCHANT__ACQUIRER_ID", "1")
	t.Setenv("FAC_MERCHANT__MERCHANT_ID", "2")
	t.Setenv("FAC_MERCHANT__PROCESSING_PASSWORD", "pw")
	t.Setenv("FAC_GATEWAY__BASE_URL", gw.URL())
	t.Setenv("FAC_LOGGER__LEVEL", "error")

	var out bytes.Buffer
	cmd := newAuthorizeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	var res cliResult
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &res), out.String())
	}
	return res, err
}

func TestAuthorizeCmd_Standard(t *testing.T) {
	gw := testhelpers.StartStubGateway(t)

	res, err := runCLI(t, gw,
		"--order-id", "ORD1",
		"--total", "10.00",
		"--card", "4111 1111 1111 1111",
		"--expiry", "12/25",
		"--cvv", "123",
		"--custom-data", "from-cli",
	)
	require.NoError(t, err)
	assert.True(t, res.Success)

	var data struct {
		ReferenceNumber string `json:"reference_number"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.Equal(t, "REF-ORD1", data.ReferenceNumber)

	req := gw.RequireSingleRequest(t)
	assert.Equal(t, "000000001000", testhelpers.RequestField(req.Body, "Amount"))
	assert.Equal(t, "from-cli", testhelpers.RequestField(req.Body, "CustomData"))
	assert.Equal(t, "1225", testhelpers.RequestField(req.Body, "CardExpiryDate"))
}

func TestAuthorizeCmd_ThreeDS_GeneratesOrderID(t *testing.T) {
	gw := testhelpers.StartStubGateway(t)

	res, err := runCLI(t, gw,
		"--variant", "3ds",
		"--total", "5",
		"--card", "4111111111111111",
		"--expiry", "1225",
		"--cvv", "123",
	)
	require.NoError(t, err)
	assert.True(t, res.Success)

	req := gw.RequireSingleRequest(t)
	assert.Equal(t, "/Authorize3DS", req.Path)
	assert.Len(t, testhelpers.RequestField(req.Body, "OrderNumber"), 36)
}

func TestAuthorizeCmd_Declined(t *testing.T) {
	gw := testhelpers.StartStubGateway(t)
	gw.RespondWith(func(r testhelpers.RecordedRequest) (int, string) {
		return http.StatusOK, testhelpers.AuthorizeResponse("2", testhelpers.RequestField(r.Body, "OrderNumber"))
	})

	res, err := runCLI(t, gw,
		"--total", "10.00",
		"--card", "4111111111111111",
		"--expiry", "1225",
		"--cvv", "123",
	)
	assert.ErrorIs(t, err, errNotApproved)
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to process transaction", res.Error)
}

func TestAuthorizeCmd_BadFlags(t *testing.T) {
	gw := testhelpers.StartStubGateway(t)

	tests := map[string][]string{
		"missing card": {"--total", "1", "--expiry", "1225", "--cvv", "123"},
		"bad total":    {"--total", "ten", "--card", "4111", "--expiry", "1225", "--cvv", "123"},
		"bad variant":  {"--variant", "moto", "--total", "1", "--card", "4111", "--expiry", "1225", "--cvv", "123"},
		"extra args":   {"positional", "--total", "1", "--card", "4111", "--expiry", "1225", "--cvv", "123"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newAuthorizeCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(args)

			assert.Error(t, cmd.Execute())
		})
	}
	assert.Empty(t, gw.Requests())
}
