package middleware

import (
	"errors"
	"strings"

	"github.com/J-Castrillon/InventoryManagement/internal/response"
	"github.com/J-Castrillon/InventoryManagement/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MessageInvalidBody is returned when the request body is not a JSON object.
const MessageInvalidBody = "Entrada no valida"

const inputKey = "validation.input"

var errNotObject = errors.New("request body is not a JSON object")

// Validate is a Fiber middleware that checks the request against fields.
// When any rule fails it responds 400 with the ordered violations and the rest
// of the chain does not run. Otherwise the decoded input is stored for
// RequestInput and the next handler is called.
func Validate(fields ...validation.Field) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := decodeInput(c)
		if err != nil {
			return response.Error(c, fiber.StatusBadRequest, MessageInvalidBody)
		}

		if violations := validation.Run(in, fields...); len(violations) > 0 {
			return response.Invalid(c, violations)
		}

		c.Locals(inputKey, in)
		return c.Next()
	}
}

// RequestInput returns the input decoded by Validate, or an empty input when
// the route has no gate.
func RequestInput(c *fiber.Ctx) validation.Input {
	if in, ok := c.Locals(inputKey).(validation.Input); ok {
		return in
	}
	return validation.Input{Params: map[string]string{}, Body: map[string]any{}}
}

// decodeInput copies the route parameters and parses a JSON object body.
// A missing body, or one that is not declared as JSON, decodes as empty.
func decodeInput(c *fiber.Ctx) (validation.Input, error) {
	in := validation.Input{
		Params: make(map[string]string),
		Body:   make(map[string]any),
	}
	// Fiber reuses parameter buffers once the handler returns.
	for name, value := range c.AllParams() {
		in.Params[name] = strings.Clone(value)
	}

	body := c.Body()
	if len(body) == 0 || !c.Is("json") {
		return in, nil
	}

	var decoded any
	if err := c.App().Config().JSONDecoder(body, &decoded); err != nil {
		return in, err
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		return in, errNotObject
	}
	in.Body = object
	return in, nil
}
