package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorHandlerMiddleware converts errors returned by handlers into the JSON
// error envelope. *fiber.Error keeps its status code; anything else is a 500
// with a generic message so internals do not leak.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(code).JSON(errorBody{
			Status:  "error",
			Message: message,
		})
	}
}
