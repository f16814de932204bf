package envelopeapimodels

import "time"

// EnvelopeArgs данные для сборки конверта
type EnvelopeArgs struct {
	SignerEmail string `json:"signer_email"` // почта подписанта
	SignerName  string `json:"signer_name"`  // имя подписанта
	CcEmail     string `json:"cc_email"`     // почта получателя копии
	CcName      string `json:"cc_name"`      // имя получателя копии
	Doc2File    string `json:"doc2_file"`    // путь к docx (локальный или s3://bucket/key)
	Doc3File    string `json:"doc3_file"`    // путь к pdf (локальный или s3://bucket/key)
	Status      string `json:"status"`       // статус конверта: sent - отправить, created - черновик
}

// WithDefaults заполняет пустые поля значениями из def
func (a EnvelopeArgs) WithDefaults(def EnvelopeArgs) EnvelopeArgs {
	if a.SignerEmail == "" {
		a.SignerEmail = def.SignerEmail
	}
	if a.SignerName == "" {
		a.SignerName = def.SignerName
	}
	if a.CcEmail == "" {
		a.CcEmail = def.CcEmail
	}
	if a.CcName == "" {
		a.CcName = def.CcName
	}
	if a.Doc2File == "" {
		a.Doc2File = def.Doc2File
	}
	if a.Doc3File == "" {
		a.Doc3File = def.Doc3File
	}
	if a.Status == "" {
		a.Status = def.Status
	}
	return a
}

// SendEnvelopeArgs полный набор входных данных отправки
type SendEnvelopeArgs struct {
	BasePath     string
	AccessToken  string
	AccountID    string
	EnvelopeArgs EnvelopeArgs
}

type EnvelopeResult struct {
	EnvelopeID string `json:"envelopeId"`
}

type EnvelopeAuditView struct {
	ID          string    `json:"id"`
	EnvelopeID  string    `json:"envelope_id"`
	AccountID   string    `json:"account_id"`
	Status      string    `json:"status"`
	SignerEmail string    `json:"signer_email"`
	CcEmail     string    `json:"cc_email"`
	RequestedBy string    `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
}
