package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/types"
)

// statusForKind maps a domain error kind to an HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case types.KindValidation:
		return fiber.StatusBadRequest
	case types.KindAuthRequired:
		return fiber.StatusUnauthorized
	case types.KindNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// ErrorResponse sends a standard error response matching the SPA's expected format
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// DomainErrorResponse sends an error response for a failed domain operation,
// deriving the HTTP status from the error kind.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	kind := types.KindOf(err)
	message := err.Error()
	if kind == types.KindFetch {
		// Do not leak driver errors to the client
		message = "store operation failed"
	}
	return ErrorResponse(c, message, statusForKind(kind), kind)
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// CreatedResponse sends a 201 response carrying the created entity
func CreatedResponse(c *fiber.Ctx, entity interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":        true,
		"data":      entity,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// MutationSuccessResponse sends a success response for mutations without a body
func MutationSuccessResponse(c *fiber.Ctx, affectedRows int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Success",
		"ok":           true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"affectedRows": affectedRows,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Timestamp    string `json:"timestamp"`
	AffectedRows int64  `json:"affectedRows"`
}
