package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersionKey is the Locals key under which APIVersion stores the
// negotiated version.
const APIVersionKey = "apiVersion"

// CurrentAPIVersion is the version served when the client asks for nothing
// specific.
const CurrentAPIVersion = "1.0.0"

// APIVersion reads the X-Api-Version request header, normalizes shorthand
// forms ("1" and "1.0" mean "1.0.0"), stores the result in Locals and echoes
// it back on the response so clients can confirm what they were served.
func APIVersion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", CurrentAPIVersion)
		switch version {
		case "1", "1.0":
			version = CurrentAPIVersion
		}

		c.Locals(APIVersionKey, version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}

// RequestedAPIVersion returns the version stored by APIVersion, or the
// current version if the middleware did not run.
func RequestedAPIVersion(c *fiber.Ctx) string {
	if v, ok := c.Locals(APIVersionKey).(string); ok {
		return v
	}
	return CurrentAPIVersion
}
