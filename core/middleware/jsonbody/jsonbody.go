// Package jsonbody parses JSON request bodies ahead of route handlers.
package jsonbody

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

const localsKey = "json_body"

// Config configures the body parser.
type Config struct {
	// Strict accepts only objects and arrays at the top level.
	Strict bool
}

// ConfigDefault mirrors the behaviour most JSON APIs expect.
var ConfigDefault = Config{Strict: true}

// New returns the body parsing middleware.
//
// Requests whose Content-Type is application/json are decoded with the app's
// JSONDecoder and the result is exposed through Body. An empty body decodes to an
// empty object. Malformed payloads end the request with 400 Bad Request; every
// other request passes through untouched.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		if !c.Is("json") {
			return c.Next()
		}

		raw := bytes.TrimSpace(c.Body())
		if len(raw) == 0 {
			c.Locals(localsKey, map[string]any{})
			return c.Next()
		}

		if cfg.Strict && raw[0] != '{' && raw[0] != '[' {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body: top-level value must be an object or array")
		}

		var body any
		if err := c.App().Config().JSONDecoder(raw, &body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body: "+err.Error())
		}

		c.Locals(localsKey, body)
		return c.Next()
	}
}

// Body returns the parsed JSON body, or nil when the request carried none.
func Body(c *fiber.Ctx) any {
	return c.Locals(localsKey)
}
