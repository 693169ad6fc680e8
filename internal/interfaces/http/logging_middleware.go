package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ventapos-api/pkg/logger"
)

// LocalRequestID key en c.Locals con el id de correlación de la petición.
const LocalRequestID = "request_id"

// RequestLogger middleware de logging estructurado. Asigna un request id,
// lo propaga en la cabecera X-Request-ID y registra método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		reqLog := log.WithRequest(requestID)
		evt := reqLog.Info()
		status := c.Response().StatusCode()
		if err != nil || status >= fiber.StatusInternalServerError {
			evt = reqLog.Error()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")

		return err
	}
}
