package initializers

import (
	"esign-sender/config"
	"esign-sender/db"

	log "github.com/sirupsen/logrus"
)

// InitDBConnection без БД сервис работает, но аудит отправленных конвертов не ведется
func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		log.WithError(err).Error("Ошибка подключения к БД, аудит конвертов отключен")
		db.DB = nil
		return
	}
	if err = db.PingDB(); err != nil {
		log.WithError(err).Error("БД не отвечает, аудит конвертов отключен")
		db.DB = nil
	}
}
