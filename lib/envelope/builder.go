package envelopehandler

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	envelopeapimodels "esign-sender/models/api/envelope"
	esignapimodels "esign-sender/models/api/esign"
	"text/template"

	"github.com/pkg/errors"
)

const (
	emailSubject = "Request to signature on the attached document."
	doc1Name     = "I hope this message finds you well. I am writing to request your signature on the attached document. " +
		"Could you please review the document and sign it where indicated? To make the process as easy as possible, " +
		"I have attached the document to this email for your convenience. If you have any questions or concerns, " +
		"please don't hesitate to reach out to me. Thank you for your attention to this matter, " +
		"and I look forward to receiving the signed document from you."
	doc2Name = "Contract document"
	doc3Name = "Review it"

	signerRecipientID = "1"
	ccRecipientID     = "2"

	// якорь из document1, набран белым
	signatureAnchor = "**signature_1**"
	// якорь в демонстрационных docx и pdf
	docAnchor = "/sn1/"

	anchorXOffset = "20"
	anchorYOffset = "10"
)

//go:embed templates/order_form.html
var orderFormTpl string

// text/template, а не html/template: контактные данные должны попасть в документ как есть
var orderForm = template.Must(template.New("order_form").Parse(orderFormTpl))

// MakeEnvelope собирает определение конверта: три документа, подписант и получатель копии
func MakeEnvelope(ctx context.Context, source DocumentSource, args envelopeapimodels.EnvelopeArgs) (*esignapimodels.EnvelopeDefinition, error) {
	doc2DocxBytes, err := source.ReadFile(ctx, args.Doc2File)
	if err != nil {
		return nil, err
	}
	doc3PdfBytes, err := source.ReadFile(ctx, args.Doc3File)
	if err != nil {
		return nil, err
	}
	doc1Html, err := Document1(args)
	if err != nil {
		return nil, err
	}

	env := &esignapimodels.EnvelopeDefinition{
		EmailSubject: emailSubject,
		Documents: []esignapimodels.Document{
			{
				DocumentBase64: base64.StdEncoding.EncodeToString([]byte(doc1Html)),
				Name:           doc1Name,
				FileExtension:  "html",
				DocumentID:     "1",
			},
			{
				DocumentBase64: base64.StdEncoding.EncodeToString(doc2DocxBytes),
				Name:           doc2Name,
				FileExtension:  "docx",
				DocumentID:     "2",
			},
			{
				DocumentBase64: base64.StdEncoding.EncodeToString(doc3PdfBytes),
				Name:           doc3Name,
				FileExtension:  "pdf",
				DocumentID:     "3",
			},
		},
		Recipients: &esignapimodels.Recipients{
			Signers: []esignapimodels.Signer{
				{
					RecipientBase: esignapimodels.RecipientBase{
						Email:        args.SignerEmail,
						Name:         args.SignerName,
						RecipientID:  signerRecipientID,
						RoutingOrder: "1",
					},
					Tabs: &esignapimodels.Tabs{
						SignHereTabs: []esignapimodels.SignHere{
							anchorSignHere(signatureAnchor),
							anchorSignHere(docAnchor),
						},
					},
				},
			},
			CarbonCopies: []esignapimodels.CarbonCopy{
				{
					RecipientBase: esignapimodels.RecipientBase{
						Email:        args.CcEmail,
						Name:         args.CcName,
						RecipientID:  ccRecipientID,
						RoutingOrder: "2",
					},
				},
			},
		},
		Status: args.Status,
	}
	if err = env.Validate(); err != nil {
		return nil, errors.Wrap(err, "некорректный конверт")
	}
	return env, nil
}

// Document1 html документ заказа с контактами подписанта и получателя копии
func Document1(args envelopeapimodels.EnvelopeArgs) (string, error) {
	buf := new(bytes.Buffer)
	err := orderForm.Execute(buf, args)
	if err != nil {
		return "", errors.Wrap(err, "ошибка формирования документа")
	}
	return buf.String(), nil
}

func anchorSignHere(anchor string) esignapimodels.SignHere {
	return esignapimodels.SignHere{
		AnchorString:  anchor,
		AnchorUnits:   esignapimodels.AnchorUnitsPixels,
		AnchorXOffset: anchorXOffset,
		AnchorYOffset: anchorYOffset,
	}
}
