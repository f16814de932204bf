package dbmodels

import (
	envelopeapimodels "esign-sender/models/api/envelope"

	"github.com/pkg/errors"
)

// EnvelopeAudit запись об отправленном конверте. Сам конверт не хранится.
type EnvelopeAudit struct {
	BaseModel
	EnvelopeID  string `gorm:"type:varchar(64);index"`
	AccountID   string `gorm:"type:varchar(64)"`
	Status      string `gorm:"type:varchar(32)"`
	SignerEmail string `gorm:"type:varchar(255)"`
	CcEmail     string `gorm:"type:varchar(255)"`
	RequestedBy string `gorm:"type:varchar(255)"`
}

func (r EnvelopeAudit) Validate() error {
	if r.EnvelopeID == "" {
		return errors.New("отсутствует ид конверта")
	}
	if r.AccountID == "" {
		return errors.New("отсутствует ид аккаунта")
	}
	return nil
}

func (r EnvelopeAudit) ToModelView() envelopeapimodels.EnvelopeAuditView {
	return envelopeapimodels.EnvelopeAuditView{
		ID:          r.ID,
		EnvelopeID:  r.EnvelopeID,
		AccountID:   r.AccountID,
		Status:      r.Status,
		SignerEmail: r.SignerEmail,
		CcEmail:     r.CcEmail,
		RequestedBy: r.RequestedBy,
		CreatedAt:   r.CreatedAt,
	}
}
