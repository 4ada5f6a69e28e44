// Package rayid tags every request with a correlation id.
package rayid

import (
	"stock-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that reuses the client's X-Ray-ID header when present
// and generates a UUID otherwise.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
