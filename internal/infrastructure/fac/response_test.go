package fac_test

import (
	"testing"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
	"github.com/DanielPopoola/fac-payments-go/internal/infrastructure/fac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeDSSuccess = `<Authorize3DSResponse xmlns="http://schemas.firstatlanticcommerce.com/gateway/data" xmlns:i="http://www.w3.org/2001/XMLSchema-instance">
	<HTMLFormData>&lt;form action="https://acs.example/"&gt;&lt;/form&gt;</HTMLFormData>
	<ResponseCode>0</ResponseCode>
	<ResponseCodeDescription>Success</ResponseCodeDescription>
</Authorize3DSResponse>`

const threeDSDeclined = `<Authorize3DSResponse xmlns="http://schemas.firstatlanticcommerce.com/gateway/data">
	<HTMLFormData></HTMLFormData>
	<ResponseCode>3</ResponseCode>
	<ResponseCodeDescription>Declined</ResponseCodeDescription>
</Authorize3DSResponse>`

func authorizeResponse(reasonCode string) string {
	return `<AuthorizeResponse xmlns="http://schemas.firstatlanticcommerce.com/gateway/data" xmlns:i="http://www.w3.org/2001/XMLSchema-instance">
	<AcquirerId>464748</AcquirerId>
	<CreditCardTransactionResults>
		<AuthCode>123456</AuthCode>
		<ReasonCode>` + reasonCode + `</ReasonCode>
		<ReasonCodeDescription>Transaction is approved.</ReasonCodeDescription>
		<ReferenceNumber>307916543749</ReferenceNumber>
		<ResponseCode>1</ResponseCode>
	</CreditCardTransactionResults>
	<FraudControlResults></FraudControlResults>
	<MerchantId>88801234</MerchantId>
	<OrderNumber>ORD1</OrderNumber>
	<Signature>gatewaySig==</Signature>
	<SignatureMethod>SHA1</SignatureMethod>
</AuthorizeResponse>`
}

func TestParseResponse_ThreeDS(t *testing.T) {
	t.Run("success returns the html form", func(t *testing.T) {
		res, err := fac.ParseResponse([]byte(threeDSSuccess), domain.VariantThreeDS)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Empty(t, res.Error)
		assert.Equal(t, domain.ThreeDSForm(`<form action="https://acs.example/"></form>`), res.Data)
		require.NotNil(t, res.Meta)
		assert.Equal(t, "Process transaction", res.Meta.Message)
		assert.Equal(t, "0", res.Meta.ResponseCode)
	})

	t.Run("non success description fails", func(t *testing.T) {
		res, err := fac.ParseResponse([]byte(threeDSDeclined), domain.VariantThreeDS)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Nil(t, res.Data)
		assert.Equal(t, fac.MsgThreeDSNotProcessed, res.Error)
	})

	t.Run("description must match exactly", func(t *testing.T) {
		body := `<Authorize3DSResponse><HTMLFormData>x</HTMLFormData><ResponseCodeDescription>success</ResponseCodeDescription></Authorize3DSResponse>`

		res, err := fac.ParseResponse([]byte(body), domain.VariantThreeDS)

		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("missing description is a protocol error", func(t *testing.T) {
		body := `<Authorize3DSResponse><HTMLFormData>x</HTMLFormData></Authorize3DSResponse>`

		_, err := fac.ParseResponse([]byte(body), domain.VariantThreeDS)

		require.Error(t, err)
		_, ok := fac.IsProtocolError(err)
		assert.True(t, ok)
		assert.Contains(t, err.Error(), "ResponseCodeDescription")
	})

	t.Run("wrong root is a protocol error", func(t *testing.T) {
		_, err := fac.ParseResponse([]byte(authorizeResponse("1")), domain.VariantThreeDS)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Authorize3DSResponse")
	})
}

func TestParseResponse_Standard(t *testing.T) {
	t.Run("reason code 1 is approved", func(t *testing.T) {
		res, err := fac.ParseResponse([]byte(authorizeResponse("1")), domain.VariantStandard)

		require.NoError(t, err)
		assert.True(t, res.Success)

		data, ok := res.Authorization()
		require.True(t, ok)
		assert.Equal(t, &domain.AuthorizationData{
			ReasonCode:            "1",
			ResponseCode:          "1",
			ReferenceNumber:       "307916543749",
			ReasonCodeDescription: "Transaction is approved.",
			Signature:             "gatewaySig==",
		}, data)
	})

	t.Run("any other reason code is declined", func(t *testing.T) {
		for _, code := range []string{"0", "2", "11", " 1", ""} {
			res, err := fac.ParseResponse([]byte(authorizeResponse(code)), domain.VariantStandard)

			require.NoError(t, err, code)
			assert.False(t, res.Success, code)
			assert.Nil(t, res.Data, code)
			assert.Equal(t, fac.MsgDeclined, res.Error, code)
			require.NotNil(t, res.Meta, code)
			assert.Equal(t, code, res.Meta.ReasonCode, code)
		}
	})

	t.Run("empty results fail", func(t *testing.T) {
		body := `<AuthorizeResponse><CreditCardTransactionResults/><Signature>s</Signature></AuthorizeResponse>`

		res, err := fac.ParseResponse([]byte(body), domain.VariantStandard)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, fac.MsgNoTransactionResult, res.Error)
	})

	t.Run("no results element fails", func(t *testing.T) {
		body := `<AuthorizeResponse><Signature>s</Signature></AuthorizeResponse>`

		res, err := fac.ParseResponse([]byte(body), domain.VariantStandard)

		require.NoError(t, err)
		assert.Equal(t, fac.MsgNoTransactionResult, res.Error)
	})

	t.Run("only the first result is considered", func(t *testing.T) {
		body := `<AuthorizeResponse>
			<CreditCardTransactionResults><ReasonCode>2</ReasonCode></CreditCardTransactionResults>
			<CreditCardTransactionResults><ReasonCode>1</ReasonCode></CreditCardTransactionResults>
			<Signature>s</Signature>
		</AuthorizeResponse>`

		res, err := fac.ParseResponse([]byte(body), domain.VariantStandard)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "2", res.Meta.ReasonCode)
	})

	t.Run("approved result without signature is a protocol error", func(t *testing.T) {
		body := `<AuthorizeResponse><CreditCardTransactionResults>
			<ReasonCode>1</ReasonCode><ReasonCodeDescription>ok</ReasonCodeDescription>
			<ReferenceNumber>1</ReferenceNumber><ResponseCode>1</ResponseCode>
		</CreditCardTransactionResults></AuthorizeResponse>`

		_, err := fac.ParseResponse([]byte(body), domain.VariantStandard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "AuthorizeResponse/Signature")
	})
}

func TestParseResponse_Malformed(t *testing.T) {
	cases := map[string]string{
		"truncated": `<AuthorizeResponse><CreditCardTransactionResults><ReasonCode>1</Reason`,
		"not xml":   `<html><body>502 Bad Gateway</body>`,
		"empty":     ``,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := fac.ParseResponse([]byte(body), domain.VariantStandard)

			require.Error(t, err)
			assert.False(t, res.Success)
			_, ok := fac.IsProtocolError(err)
			assert.True(t, ok)
		})
	}
}
