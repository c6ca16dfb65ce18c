package domain

// Result is the envelope returned for every authorization attempt.
// Callers must check Success before trusting Data.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta carries informational gateway fields that are not the payload itself.
type Meta struct {
	Message               string `json:"message,omitempty"`
	ResponseCode          string `json:"response_code,omitempty"`
	ReasonCode            string `json:"reason_code,omitempty"`
	ReasonCodeDescription string `json:"reason_code_description,omitempty"`
}

// ThreeDSForm is the HTML form FAC returns for a 3DS authorization. The
// merchant renders it to redirect the cardholder to the issuer.
type ThreeDSForm string

// AuthorizationData is returned for an approved standard authorization.
type AuthorizationData struct {
	ReasonCode            string `json:"reason_code"`
	ResponseCode          string `json:"response_code"`
	ReferenceNumber       string `json:"reference_number"`
	ReasonCodeDescription string `json:"reason_code_description"`
	// Signature is FAC's response signature, kept for optional verification.
	Signature string `json:"fac_transaction_signature"`
}

// Failure builds a failed envelope; Data is always empty.
func Failure(message string) Result {
	return Result{Error: message}
}

// Authorization returns the standard authorization data when present.
func (r Result) Authorization() (*AuthorizationData, bool) {
	d, ok := r.Data.(*AuthorizationData)
	return d, ok && r.Success
}

// ThreeDSForm returns the redirect form of a successful 3DS authorization.
func (r Result) ThreeDSForm() (ThreeDSForm, bool) {
	f, ok := r.Data.(ThreeDSForm)
	return f, ok && r.Success
}
