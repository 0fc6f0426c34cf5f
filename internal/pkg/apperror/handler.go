package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/naruhodo/newsapp/internal/pkg/env"
)

// failedStatus is the envelope used for generic failures.
type failedStatus struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorHandler classifies every error escaping a handler and writes the
// response exactly once. The mapping:
//
//	ValidationError       -> 422 {message, errors:[{field,message}]}
//	UnsupportedMediaError -> 415 (empty body)
//	UnauthorizedError     -> 401 {error, message}
//	BusinessError         -> 200 {message}
//	NotFoundError / rest  -> 404 {status:{type:"FAILED", message}}
//
// Production logs every mapped error; outside production the generic envelope
// carries the raw error text so failures are easier to chase in development.
func ErrorHandler(c *fiber.Ctx, err error) error {
	logError(c, err)

	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation Failed",
			"errors":  ve.Errors,
		})
	}

	var me *UnsupportedMediaError
	if errors.As(err, &me) {
		return c.SendStatus(fiber.StatusUnsupportedMediaType)
	}

	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": ue.Message,
		})
	}

	var be *BusinessError
	if errors.As(err, &be) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": be.Message,
		})
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": failedStatus{Type: "FAILED", Message: nf.Message},
		})
	}

	// Fiber's own errors (bad route params, body limit, ...) and everything
	// else share the generic 404 envelope of the original API contract.
	message := "something went wrong"
	if !env.IsProduction() {
		message = err.Error()
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status": failedStatus{Type: "FAILED", Message: message},
	})
}

func logError(c *fiber.Ctx, err error) {
	if env.IsProduction() {
		fiberlog.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return
	}
	fiberlog.Debugf("%s %s: %v", c.Method(), c.Path(), err)
}
