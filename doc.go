// Package facpayments is a client for the First Atlantic Commerce (FAC)
// XML payment gateway.
//
// A [Client] is built once per merchant and currency with [NewClient] and is
// safe for concurrent use. Each call to [Client.AuthorizeTransaction] performs
// one authorization round-trip and always returns a [Result]; failures of any
// kind are reported through [Result.Error] instead of a Go error.
//
// # Standard authorization
//
//	client, err := facpayments.NewClient(merchant, currency,
//		facpayments.WithEnvironment(facpayments.EnvProduction))
//	if err != nil {
//		return err
//	}
//	res := client.AuthorizeTransaction(ctx, facpayments.AuthorizeRequest{
//		Card:    facpayments.CardInfo{Number: "4111111111111111", Expiry: "1225", CVV: "123"},
//		OrderID: "ORD1",
//		Total:   decimal.RequireFromString("10.00"),
//	})
//	if data, ok := res.Authorization(); ok {
//		fmt.Println(data.ReferenceNumber)
//	}
//
// # 3-D Secure
//
// Set Variant to [VariantThreeDS]. On success [Result.ThreeDSForm] holds the
// HTML form the merchant renders to send the cardholder to the issuer. The
// cardholder returns to RedirectURL, the merchant's MerchantResponseURL, or
// the fallback set with [WithThreeDSFallbackURL], in that order. Outside
// production the fallback defaults to FAC's test parser page.
package facpayments
