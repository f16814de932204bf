package middleware

import (
	"strconv"

	apimodels "esign-sender/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// WithBodyLimit отклоняет запросы с Content-Length больше limit.
// Документы читаются на стороне сервиса, в теле приходят только параметры конверта.
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > limit {
				msg := errors.Errorf("размер запроса превышает допустимый: %d байт", limit).Error()
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(msg))
			}
		}
		return c.Next()
	}
}
