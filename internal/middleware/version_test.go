package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// TestAPIVersionNegotiation tests the default, shorthand normalization, and
// the echoed response header
func TestAPIVersionNegotiation(t *testing.T) {
	app := fiber.New()
	app.Use(APIVersion())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RequestedAPIVersion(c))
	})

	cases := []struct {
		header string
		want   string
	}{
		{"", CurrentAPIVersion},
		{"1", CurrentAPIVersion},
		{"1.0", CurrentAPIVersion},
		{"2.0.0", "2.0.0"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			req.Header.Set("X-Api-Version", tc.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if got := resp.Header.Get("X-Api-Version"); got != tc.want {
			t.Errorf("Header %q: expected echoed version %s, got %s", tc.header, tc.want, got)
		}
	}
}
