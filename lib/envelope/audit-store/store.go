package envelopeauditstore

import (
	dbmodels "esign-sender/models/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.EnvelopeAudit) (id string, err error)
	List(page, limit int) (list []dbmodels.EnvelopeAudit, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EnvelopeAudit) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(page, limit int) (list []dbmodels.EnvelopeAudit, rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.EnvelopeAudit{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	err = i.db.
		Model(&dbmodels.EnvelopeAudit{}).
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
