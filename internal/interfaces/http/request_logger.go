package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ctcsistemas/compras-api/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestLogger marca cada requisição com um request id e registra método,
// rota, status e duração. Reaproveita o X-Request-Id do cliente quando vem
// um; senão gera.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDHeader, reqID)

		inicio := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evento := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			evento = log.Error()
		}
		evento.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(inicio)).
			Err(err).
			Msg("requisição atendida")

		return err
	}
}
