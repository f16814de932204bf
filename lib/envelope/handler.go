package envelopehandler

import (
	"context"
	envelopeauditstore "esign-sender/lib/envelope/audit-store"
	esignclient "esign-sender/lib/esign/client"
	"esign-sender/lib/smtp"
	initchecker "esign-sender/lib/utils/init-checker"
	apimodels "esign-sender/models/api"
	envelopeapimodels "esign-sender/models/api/envelope"
	dbmodels "esign-sender/models/db"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// SendEnvelope собирает конверт и отправляет его в сервис подписи
	SendEnvelope(ctx context.Context, args envelopeapimodels.SendEnvelopeArgs, requestedBy string) (envelopeapimodels.EnvelopeResult, error)
	ListSent(pagination apimodels.Pagination) (list []envelopeapimodels.EnvelopeAuditView, rowCount int64, err error)
}

var Instance Provider

type ClientFactory func(basePath, accessToken string) esignclient.Provider

type impl struct {
	source      DocumentSource
	newClient   ClientFactory
	auditStore  envelopeauditstore.Provider
	notifier    smtp.Provider
	notifyEmail string
}

// NewHandler auditStore и notifier могут быть nil, тогда аудит и уведомления отключены
func NewHandler(source DocumentSource, newClient ClientFactory, auditStore envelopeauditstore.Provider, notifier smtp.Provider, notifyEmail string) {
	instance := &impl{
		source:      source,
		newClient:   newClient,
		auditStore:  auditStore,
		notifier:    notifier,
		notifyEmail: notifyEmail,
	}
	initchecker.CheckInit(
		"source", instance.source,
		"newClient", instance.newClient,
	)
	Instance = instance
}

func (i impl) SendEnvelope(ctx context.Context, args envelopeapimodels.SendEnvelopeArgs, requestedBy string) (envelopeapimodels.EnvelopeResult, error) {
	logger := log.
		WithField("account_id", args.AccountID).
		WithField("envelope_status", args.EnvelopeArgs.Status)

	envelope, err := MakeEnvelope(ctx, i.source, args.EnvelopeArgs)
	if err != nil {
		return envelopeapimodels.EnvelopeResult{}, errors.Wrap(err, "ошибка сборки конверта")
	}

	client := i.newClient(args.BasePath, args.AccessToken)
	results, err := client.CreateEnvelope(ctx, args.AccountID, *envelope)
	if err != nil {
		return envelopeapimodels.EnvelopeResult{}, errors.Wrap(err, "ошибка создания конверта")
	}
	envelopeID := results.EnvelopeID

	logger.
		WithField("envelope_id", envelopeID).
		Infof("Envelope was created. EnvelopeId %v", envelopeID)

	i.saveAudit(logger, args, envelopeID, requestedBy)
	i.notify(logger, envelopeID)

	return envelopeapimodels.EnvelopeResult{EnvelopeID: envelopeID}, nil
}

func (i impl) ListSent(pagination apimodels.Pagination) (list []envelopeapimodels.EnvelopeAuditView, rowCount int64, err error) {
	if i.auditStore == nil {
		return []envelopeapimodels.EnvelopeAuditView{}, 0, nil
	}
	page, limit := pagination.GetPage()
	recList, rowCount, err := i.auditStore.List(page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка отправленных конвертов")
	}
	list = make([]envelopeapimodels.EnvelopeAuditView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, rowCount, nil
}

// ошибки аудита и уведомлений только логируются, результат отправки от них не зависит
func (i impl) saveAudit(logger *log.Entry, args envelopeapimodels.SendEnvelopeArgs, envelopeID, requestedBy string) {
	if i.auditStore == nil {
		return
	}
	rec := dbmodels.EnvelopeAudit{
		EnvelopeID:  envelopeID,
		AccountID:   args.AccountID,
		Status:      args.EnvelopeArgs.Status,
		SignerEmail: args.EnvelopeArgs.SignerEmail,
		CcEmail:     args.EnvelopeArgs.CcEmail,
		RequestedBy: requestedBy,
	}
	_, err := i.auditStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения аудита конверта")
	}
}

func (i impl) notify(logger *log.Entry, envelopeID string) {
	if i.notifier == nil || i.notifyEmail == "" {
		return
	}
	msg := fmt.Sprintf("Envelope was created. EnvelopeId %v", envelopeID)
	err := i.notifier.SendEMail(i.notifyEmail, "Конверт создан", msg)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления о конверте")
	}
}
