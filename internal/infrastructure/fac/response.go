package fac

import (
	"github.com/beevik/etree"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
)

// Messages placed in Result.Error when FAC does not approve a transaction.
const (
	MsgThreeDSNotProcessed = "Failed to process your transaction"
	MsgNoTransactionResult = "Transaction failed"
	MsgDeclined            = "Failed to process transaction"

	msgThreeDSProcessed = "Process transaction"
	successDescription  = "Success"
	approvedReasonCode  = "1"
)

// ParseResponse reduces a FAC response document to a Result. A decline is a
// Result with Success false and a nil error; an unreadable document returns a
// *ProtocolError.
func ParseResponse(body []byte, v domain.Variant) (domain.Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return domain.Result{}, &ProtocolError{Message: "malformed response document", Err: err}
	}

	switch v {
	case domain.VariantThreeDS:
		return parseAuthorize3DSResponse(doc)
	case domain.VariantStandard:
		return parseAuthorizeResponse(doc)
	default:
		return domain.Result{}, domain.NewInvalidVariantError(v.String())
	}
}

func parseAuthorize3DSResponse(doc *etree.Document) (domain.Result, error) {
	root := doc.SelectElement("Authorize3DSResponse")
	if root == nil {
		return domain.Result{}, newMissingElementError("Authorize3DSResponse")
	}

	description, err := childText(root, "ResponseCodeDescription")
	if err != nil {
		return domain.Result{}, err
	}
	meta := &domain.Meta{ResponseCode: optionalChildText(root, "ResponseCode")}

	if description != successDescription {
		meta.Message = description
		return domain.Result{Error: MsgThreeDSNotProcessed, Meta: meta}, nil
	}

	form, err := childText(root, "HTMLFormData")
	if err != nil {
		return domain.Result{}, err
	}
	meta.Message = msgThreeDSProcessed

	return domain.Result{
		Success: true,
		Data:    domain.ThreeDSForm(form),
		Meta:    meta,
	}, nil
}

func parseAuthorizeResponse(doc *etree.Document) (domain.Result, error) {
	root := doc.SelectElement("AuthorizeResponse")
	if root == nil {
		return domain.Result{}, newMissingElementError("AuthorizeResponse")
	}

	var results []*etree.Element
	for _, r := range root.SelectElements("CreditCardTransactionResults") {
		if len(r.ChildElements()) > 0 {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return domain.Failure(MsgNoTransactionResult), nil
	}
	first := results[0]

	reasonCode, err := childText(first, "ReasonCode")
	if err != nil {
		return domain.Result{}, err
	}
	if reasonCode != approvedReasonCode {
		return domain.Result{
			Error: MsgDeclined,
			Meta: &domain.Meta{
				ReasonCode:            reasonCode,
				ReasonCodeDescription: optionalChildText(first, "ReasonCodeDescription"),
				ResponseCode:          optionalChildText(first, "ResponseCode"),
			},
		}, nil
	}

	data := &domain.AuthorizationData{ReasonCode: reasonCode}
	fields := []struct {
		parent *etree.Element
		tag    string
		dst    *string
	}{
		{first, "ResponseCode", &data.ResponseCode},
		{first, "ReferenceNumber", &data.ReferenceNumber},
		{first, "ReasonCodeDescription", &data.ReasonCodeDescription},
		{root, "Signature", &data.Signature},
	}
	for _, f := range fields {
		if *f.dst, err = childText(f.parent, f.tag); err != nil {
			return domain.Result{}, err
		}
	}

	return domain.Result{
		Success: true,
		Data:    data,
		Meta: &domain.Meta{
			ReasonCode:            data.ReasonCode,
			ReasonCodeDescription: data.ReasonCodeDescription,
			ResponseCode:          data.ResponseCode,
		},
	}, nil
}

// childText returns the text of the first child named tag.
func childText(parent *etree.Element, tag string) (string, error) {
	el := parent.SelectElement(tag)
	if el == nil {
		return "", newMissingElementError(parent.Tag + "/" + tag)
	}
	return el.Text(), nil
}

func optionalChildText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return el.Text()
	}
	return ""
}
