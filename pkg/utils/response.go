package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/apperr"
)

// Every route answers with the same envelope:
//
//	success: { success: true, data?, message?, timestamp }
//	error:   { success: false, error: { code, message, details? }, timestamp }

type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     *errorBody  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func Success(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(envelope{Success: true, Data: data, Timestamp: stamp()})
}

func SuccessMessage(ctx *fiber.Ctx, status int, data interface{}, message string) error {
	return ctx.Status(status).JSON(envelope{Success: true, Data: data, Message: message, Timestamp: stamp()})
}

// Fail formats err into the error envelope. Internal error detail is only
// exposed when dev is true.
func Fail(ctx *fiber.Ctx, err error, dev bool) error {
	ae := apperr.From(err)

	msg := ae.Message
	if ae.Kind == apperr.KindInternal && dev && ae.Err != nil {
		msg = ae.Err.Error()
	}

	return ctx.Status(ae.Status()).JSON(envelope{
		Success:   false,
		Error:     &errorBody{Code: ae.Code, Message: msg, Details: ae.Details},
		Timestamp: stamp(),
	})
}
