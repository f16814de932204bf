package initializers

import (
	"context"
	"esign-sender/config"
	"esign-sender/db"
	"esign-sender/fiberlog"
	envelopehandler "esign-sender/lib/envelope"
	envelopeauditstore "esign-sender/lib/envelope/audit-store"
	esignclient "esign-sender/lib/esign/client"
	"esign-sender/lib/smtp"
	s3client "esign-sender/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()

	var auditStore envelopeauditstore.Provider
	if db.DB != nil {
		auditStore = envelopeauditstore.NewInstance(db.DB)
	}
	envelopehandler.NewHandler(
		envelopehandler.NewDocumentSource(s3client.Client),
		esignclient.NewProvider,
		auditStore,
		smtp.Instance,
		config.Conf.Smtp.NotifyEmail,
	)
}
