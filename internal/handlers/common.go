package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate checks request body structs before any domain call.
var validate = validator.New()

// getUserID extracts the user id from context (set by auth middleware)
func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user not found in context")
	}
	return userID, nil
}

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return validate.Struct(out)
}
