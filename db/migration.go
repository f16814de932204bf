package db

import (
	dbmodels "esign-sender/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.EnvelopeAudit{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EnvelopeAudit")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
