package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/constants"
	"github.com/naruhodo/newsapp/internal/pkg/security"
)

// SignatureHeader carries the request signature computed by the client.
const SignatureHeader = "X-Signature"

// SignatureGate rejects any request whose X-Signature header does not match
// the HMAC of method, path and body under the shared secret. Routes on the
// public allow-list pass through unsigned. An empty secret disables the gate
// entirely (local development).
func SignatureGate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" || isPublicRoute(c.Method(), c.Path()) {
			return c.Next()
		}

		signature := strings.TrimSpace(c.Get(SignatureHeader))
		if signature == "" {
			return apperror.NewUnauthorizedError("missing request signature")
		}
		if !security.VerifySignature(secret, c.Method(), c.Path(), c.Body(), signature) {
			return apperror.NewUnauthorizedError("invalid request signature")
		}

		return c.Next()
	}
}

func isPublicRoute(method, path string) bool {
	for _, route := range constants.PublicRoutes {
		if method == route.Method && strings.HasPrefix(path, route.Prefix) {
			return true
		}
	}
	return false
}
