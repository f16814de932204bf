package esignapimodels

import (
	"github.com/pkg/errors"
)

const (
	EnvelopeStatusCreated = "created" // черновик
	EnvelopeStatusSent    = "sent"
)

// EnvelopeDefinition тело запроса на создание конверта
type EnvelopeDefinition struct {
	EmailSubject string      `json:"emailSubject,omitempty"`
	Documents    []Document  `json:"documents,omitempty"`
	Recipients   *Recipients `json:"recipients,omitempty"`
	Status       string      `json:"status,omitempty"`
}

// Validate проверяет уникальность ид документов и получателей
func (e EnvelopeDefinition) Validate() error {
	docIDs := make(map[string]bool, len(e.Documents))
	for _, doc := range e.Documents {
		if doc.DocumentID == "" {
			return errors.Errorf("не указан ид документа %q", doc.Name)
		}
		if docIDs[doc.DocumentID] {
			return errors.Errorf("ид документа %v повторяется", doc.DocumentID)
		}
		docIDs[doc.DocumentID] = true
	}
	if e.Recipients == nil {
		return nil
	}
	recIDs := map[string]bool{}
	for _, rec := range e.Recipients.All() {
		id := rec.GetRecipientID()
		if id == "" {
			return errors.Errorf("не указан ид получателя %v", rec.GetEmail())
		}
		if recIDs[id] {
			return errors.Errorf("ид получателя %v повторяется", id)
		}
		recIDs[id] = true
	}
	return nil
}

type Document struct {
	DocumentBase64 string `json:"documentBase64,omitempty"`
	Name           string `json:"name,omitempty"`          // может отличаться от имени файла
	FileExtension  string `json:"fileExtension,omitempty"` // исходный формат, подписанный документ всегда pdf
	DocumentID     string `json:"documentId,omitempty"`
}

type Recipients struct {
	Signers      []Signer     `json:"signers,omitempty"`
	CarbonCopies []CarbonCopy `json:"carbonCopies,omitempty"`
}

// All возвращает всех получателей в порядке маршрута
func (r Recipients) All() []Recipient {
	result := make([]Recipient, 0, len(r.Signers)+len(r.CarbonCopies))
	for _, signer := range r.Signers {
		result = append(result, signer)
	}
	for _, cc := range r.CarbonCopies {
		result = append(result, cc)
	}
	sortByRoutingOrder(result)
	return result
}

type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	Status         string `json:"status,omitempty"`
	StatusDateTime string `json:"statusDateTime,omitempty"`
	Uri            string `json:"uri,omitempty"`
}

type ErrorDetails struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}
