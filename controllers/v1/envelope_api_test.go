package apiv1

import (
	"context"
	"encoding/json"
	"esign-sender/config"
	envelopehandler "esign-sender/lib/envelope"
	authutils "esign-sender/lib/utils/auth-utils"
	"esign-sender/middleware"
	apimodels "esign-sender/models/api"
	envelopeapimodels "esign-sender/models/api/envelope"
	esignapimodels "esign-sender/models/api/esign"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeHandler struct {
	args        envelopeapimodels.SendEnvelopeArgs
	requestedBy string
	err         error
}

func (f *fakeHandler) SendEnvelope(_ context.Context, args envelopeapimodels.SendEnvelopeArgs, requestedBy string) (envelopeapimodels.EnvelopeResult, error) {
	f.args = args
	f.requestedBy = requestedBy
	if f.err != nil {
		return envelopeapimodels.EnvelopeResult{}, f.err
	}
	return envelopeapimodels.EnvelopeResult{EnvelopeID: "env-1"}, nil
}

func (f *fakeHandler) ListSent(pagination apimodels.Pagination) ([]envelopeapimodels.EnvelopeAuditView, int64, error) {
	return []envelopeapimodels.EnvelopeAuditView{{EnvelopeID: "env-1"}}, 1, nil
}

func getApp(t *testing.T, handler *fakeHandler) *fiber.App {
	conf := new(config.Configuration)
	conf.ESign.BasePath = "https://demo.example.com/restapi"
	conf.ESign.AccessToken = "token-1"
	conf.ESign.AccountID = "acc-1"
	conf.Envelope.SignerEmail = "default-signer@example.com"
	conf.Envelope.SignerName = "Default Signer"
	conf.Envelope.Doc2File = "static/doc2.docx"
	conf.Envelope.Doc3File = "static/doc3.pdf"
	conf.Envelope.Status = esignapimodels.EnvelopeStatusSent
	config.Conf = conf
	t.Cleanup(func() { config.Conf = nil })

	envelopehandler.Instance = handler
	app := fiber.New()
	app.Use(middleware.AuthorizationRequired(testSecret))
	InitEnvelopeApiRouters(app)
	return app
}

func getAuthHeader(t *testing.T) string {
	token, err := authutils.GetToken("user-1", testSecret, 60)
	require.Nil(t, err)
	return "Bearer " + token
}

func TestEnvelopeApi(t *testing.T) {
	t.Run(`send check`, func(t *testing.T) {
		handler := &fakeHandler{}
		app := getApp(t, handler)

		req := httptest.NewRequest("POST", "/envelopes", strings.NewReader(`{"signer_name":"Ann","cc_email":"cc@example.com","status":"created"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", getAuthHeader(t))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var result struct {
			Status string                           `json:"status"`
			Data   envelopeapimodels.EnvelopeResult `json:"data"`
		}
		require.Nil(t, json.Unmarshal(body, &result))
		require.Equal(t, "success", result.Status)
		require.Equal(t, "env-1", result.Data.EnvelopeID)

		require.Equal(t, "acc-1", handler.args.AccountID)
		require.Equal(t, "token-1", handler.args.AccessToken)
		require.Equal(t, "Ann", handler.args.EnvelopeArgs.SignerName)
		require.Equal(t, "default-signer@example.com", handler.args.EnvelopeArgs.SignerEmail)
		require.Equal(t, "cc@example.com", handler.args.EnvelopeArgs.CcEmail)
		require.Equal(t, "static/doc2.docx", handler.args.EnvelopeArgs.Doc2File)
		require.Equal(t, esignapimodels.EnvelopeStatusCreated, handler.args.EnvelopeArgs.Status)
		require.Equal(t, "user-1", handler.requestedBy)
	})

	t.Run(`send without body uses defaults`, func(t *testing.T) {
		handler := &fakeHandler{}
		app := getApp(t, handler)

		req := httptest.NewRequest("POST", "/envelopes", nil)
		req.Header.Set("Authorization", getAuthHeader(t))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, esignapimodels.EnvelopeStatusSent, handler.args.EnvelopeArgs.Status)
		require.Equal(t, "Default Signer", handler.args.EnvelopeArgs.SignerName)
	})

	t.Run(`empty status default check`, func(t *testing.T) {
		handler := &fakeHandler{}
		app := getApp(t, handler)
		config.Conf.Envelope.Status = ""

		req := httptest.NewRequest("POST", "/envelopes", nil)
		req.Header.Set("Authorization", getAuthHeader(t))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, esignapimodels.EnvelopeStatusSent, handler.args.EnvelopeArgs.Status)
	})

	t.Run(`send error check`, func(t *testing.T) {
		handler := &fakeHandler{err: errors.New("ошибка создания конверта")}
		app := getApp(t, handler)

		req := httptest.NewRequest("POST", "/envelopes", nil)
		req.Header.Set("Authorization", getAuthHeader(t))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run(`unauthorized check`, func(t *testing.T) {
		app := getApp(t, &fakeHandler{})

		req := httptest.NewRequest("POST", "/envelopes", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`list check`, func(t *testing.T) {
		app := getApp(t, &fakeHandler{})

		req := httptest.NewRequest("GET", "/envelopes?page=1&limit=5", nil)
		req.Header.Set("Authorization", getAuthHeader(t))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var result apimodels.ScrollerResponse
		require.Nil(t, json.Unmarshal(body, &result))
		require.Equal(t, int64(1), result.RowCount)
	})
}
