package fac

import "encoding/xml"

const (
	gatewayNamespace  = "http://schemas.firstatlanticcommerce.com/gateway/data"
	instanceNamespace = "http://www.w3.org/2001/XMLSchema-instance"

	installments    = 0
	transactionCode = 8
)

// AuthorizeRequest is the body of POST /Authorize.
type AuthorizeRequest struct {
	XMLName xml.Name `xml:"AuthorizeRequest"`
	RequestCommon
	FraudDetails FraudDetails `xml:"FraudDetails"`
}

// Authorize3DSRequest is the body of POST /Authorize3DS.
type Authorize3DSRequest struct {
	XMLName xml.Name `xml:"Authorize3DSRequest"`
	RequestCommon
	MerchantResponseURL string       `xml:"MerchantResponseURL"`
	FraudDetails        FraudDetails `xml:"FraudDetails"`
}

// RequestCommon holds the blocks shared by both request variants, in the
// order FAC's schema requires.
type RequestCommon struct {
	Xmlns              string             `xml:"xmlns,attr"`
	XmlnsI             string             `xml:"xmlns:i,attr"`
	BillingDetails     BillingDetails     `xml:"BillingDetails"`
	CardDetails        CardDetails        `xml:"CardDetails"`
	TransactionDetails TransactionDetails `xml:"TransactionDetails"`
}

// BillingDetails must be present with every element, even when empty.
type BillingDetails struct {
	BillToAddress     string `xml:"BillToAddress"`
	BillToAddress2    string `xml:"BillToAddress2"`
	BillToCity        string `xml:"BillToCity"`
	BillToCountry     string `xml:"BillToCountry"`
	BillToFirstName   string `xml:"BillToFirstName"`
	BillToLastName    string `xml:"BillToLastName"`
	BillToState       string `xml:"BillToState"`
	BillToTelephone   string `xml:"BillToTelephone"`
	BillToZipPostCode string `xml:"BillToZipPostCode"`
	BillToCounty      string `xml:"BillToCounty"`
	BillToMobile      string `xml:"BillToMobile"`
}

type CardDetails struct {
	CardCVV2       string `xml:"CardCVV2"`
	CardExpiryDate string `xml:"CardExpiryDate"`
	CardNumber     string `xml:"CardNumber"`
	Installments   int    `xml:"Installments"`
}

type TransactionDetails struct {
	AcquirerID       int    `xml:"AcquirerId"`
	Amount           string `xml:"Amount"`
	Currency         string `xml:"Currency"`
	CurrencyExponent int    `xml:"CurrencyExponent"`
	CustomData       string `xml:"CustomData"`
	IPAddress        string `xml:"IPAddress"`
	MerchantID       int    `xml:"MerchantId"`
	OrderNumber      string `xml:"OrderNumber"`
	Signature        string `xml:"Signature"`
	SignatureMethod  string `xml:"SignatureMethod"`
	TransactionCode  int    `xml:"TransactionCode"`
}

type FraudDetails struct {
	SessionID string `xml:"SessionId"`
}
