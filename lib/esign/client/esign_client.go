package esignclient

import (
	"bytes"
	"context"
	"encoding/json"
	esignapimodels "esign-sender/models/api/esign"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	//https://developers.docusign.com/docs/esign-rest-api/reference/envelopes/envelopes/create/
	CreateEnvelope(ctx context.Context, accountID string, envelope esignapimodels.EnvelopeDefinition) (*esignapimodels.EnvelopeSummary, error)
}

type impl struct {
	basePath    string
	accessToken string
	httpClient  *http.Client
}

func NewProvider(basePath, accessToken string) Provider {
	return &impl{
		basePath:    strings.TrimRight(basePath, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

const (
	envelopesPath string = "/v2.1/accounts/%v/envelopes"
)

func (i impl) CreateEnvelope(ctx context.Context, accountID string, envelope esignapimodels.EnvelopeDefinition) (*esignapimodels.EnvelopeSummary, error) {
	uri := i.basePath + fmt.Sprintf(envelopesPath, url.PathEscape(accountID))
	logger := log.
		WithField("account_id", accountID).
		WithField("external_request", uri)
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации запроса")
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса")
	}
	r.Header.Add("Content-Type", "application/json")
	resp := esignapimodels.EnvelopeSummary{}

	// документы в base64 в лог не пишем
	logger = logger.
		WithField("documents", len(envelope.Documents)).
		WithField("envelope_status", envelope.Status)

	err = i.sendRequest(logger, r, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("Accept", "application/json")
	if i.accessToken != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", i.accessToken))
	}
	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в сервис подписи")
		return errors.Wrap(err, "ошибка отправки запроса в сервис подписи")
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "ошибка чтения ответа")
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				return errors.Wrap(err, "ошибка десериализации ответа")
			}
		}
		return nil
	}

	logger = logger.
		WithField("status_code", response.StatusCode).
		WithField("response_body", string(responseBody))
	errorResp := esignapimodels.ErrorDetails{}
	err = json.Unmarshal(responseBody, &errorResp)
	if err != nil {
		logger.WithError(err).Error("ошибка десериализации ответа")
	}
	logger.Error("ошибка запроса в сервис подписи")
	if errorResp.ErrorCode != "" {
		return errors.Errorf("сервис подписи вернул ошибку (%v): %v: %v", response.StatusCode, errorResp.ErrorCode, errorResp.Message)
	}
	return errors.Errorf("сервис подписи вернул ошибку (%v)", response.StatusCode)
}
