package controllers

import (
	apimodels "esign-sender/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) QueryPagination(ctx *fiber.Ctx) (apimodels.Pagination, error) {
	var pagination apimodels.Pagination
	if err := ctx.QueryParser(&pagination); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return apimodels.Pagination{}, errors.New("некорректные параметры пагинации")
	}
	return pagination, nil
}
