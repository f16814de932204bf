package apiv1

import (
	"esign-sender/config"
	"esign-sender/controllers"
	envelopehandler "esign-sender/lib/envelope"
	authutils "esign-sender/lib/utils/auth-utils"
	apimodels "esign-sender/models/api"
	envelopeapimodels "esign-sender/models/api/envelope"
	esignapimodels "esign-sender/models/api/esign"

	"github.com/gofiber/fiber/v2"
)

type envelopeApiController struct {
	controllers.BaseAPIController
}

func InitEnvelopeApiRouters(app *fiber.App) {
	controller := envelopeApiController{}
	app.Route("envelopes", func(router fiber.Router) {
		router.Post("", controller.send) // собрать и отправить конверт
		router.Get("", controller.list)  // список отправленных конвертов
	})
}

// @Summary Отправить конверт на подпись
// @Tags Конверты
// @Description Собирает конверт из трех документов и отправляет в сервис подписи. Пустые поля берутся из конфигурации.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		envelopeapimodels.EnvelopeArgs	false	"request body"
// @Success 200 {object} apimodels.Response{data=envelopeapimodels.EnvelopeResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/envelopes [post]
func (c *envelopeApiController) send(ctx *fiber.Ctx) error {
	var payload envelopeapimodels.EnvelopeArgs
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	args := envelopeapimodels.SendEnvelopeArgs{
		BasePath:     config.Conf.ESign.BasePath,
		AccessToken:  config.Conf.ESign.AccessToken,
		AccountID:    config.Conf.ESign.AccountID,
		EnvelopeArgs: payload.WithDefaults(defaultEnvelopeArgs()),
	}
	result, err := envelopehandler.Instance.SendEnvelope(ctx.UserContext(), args, authutils.GetSubject(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список отправленных конвертов
// @Tags Конверты
// @Description Список отправленных конвертов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	page				query		int	false	"страница"
// @Param	limit				query		int	false	"записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]envelopeapimodels.EnvelopeAuditView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/envelopes [get]
func (c *envelopeApiController) list(ctx *fiber.Ctx) error {
	pagination, err := c.QueryPagination(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := envelopehandler.Instance.ListSent(pagination)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

func defaultEnvelopeArgs() envelopeapimodels.EnvelopeArgs {
	def := config.Conf.Envelope
	if def.Status == "" {
		def.Status = esignapimodels.EnvelopeStatusSent
	}
	return envelopeapimodels.EnvelopeArgs{
		SignerEmail: def.SignerEmail,
		SignerName:  def.SignerName,
		CcEmail:     def.CcEmail,
		CcName:      def.CcName,
		Doc2File:    def.Doc2File,
		Doc3File:    def.Doc3File,
		Status:      def.Status,
	}
}
