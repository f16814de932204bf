package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"JWT_SECRET"`
	}
	ESign struct {
		BasePath    string `default:"https://demo.docusign.net/restapi" env:"ESIGN_BASE_PATH"`
		AccessToken string `default:"" env:"ESIGN_ACCESS_TOKEN"`
		AccountID   string `default:"" env:"ESIGN_ACCOUNT_ID"`
	}
	// значения по умолчанию для конверта, если в запросе поле не заполнено
	Envelope struct {
		SignerEmail string `default:"" env:"ENVELOPE_SIGNER_EMAIL"`
		SignerName  string `default:"" env:"ENVELOPE_SIGNER_NAME"`
		CcEmail     string `default:"" env:"ENVELOPE_CC_EMAIL"`
		CcName      string `default:"" env:"ENVELOPE_CC_NAME"`
		Doc2File    string `default:"static/World_Wide_Corp_Battle_Plan_Trafalgar.docx" env:"ENVELOPE_DOC2_FILE"`
		Doc3File    string `default:"static/World_Wide_Corp_lorem.pdf" env:"ENVELOPE_DOC3_FILE"`
		Status      string `default:"sent" env:"ENVELOPE_STATUS"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"esign" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User        string `default:"" env:"SMTP_USER"`
		Password    string `default:"" env:"SMTP_PASSWORD"`
		Host        string `default:"" env:"SMTP_HOST"`
		Port        string `default:"" env:"SMTP_PORT"`
		TLSEnabled  *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		NotifyEmail string `default:"" env:"NOTIFY_EMAIL"` // куда слать уведомление об отправленном конверте
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
