// Package httpx is the JSON envelope every API response uses.
package httpx

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ErrorCode string

const (
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeInternal   ErrorCode = "INTERNAL_SERVER_ERROR"
)

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
}

type ErrorBody struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func OK(c *fiber.Ctx, message string, data interface{}) error {
	return success(c, fiber.StatusOK, message, data)
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return success(c, fiber.StatusCreated, message, data)
}

func BadRequest(c *fiber.Ctx, message string, details map[string]interface{}) error {
	return failure(c, fiber.StatusBadRequest, CodeBadRequest, message, details)
}

func NotFound(c *fiber.Ctx, message string) error {
	return failure(c, fiber.StatusNotFound, CodeNotFound, message, nil)
}

func Internal(c *fiber.Ctx, message string, details map[string]interface{}) error {
	return failure(c, fiber.StatusInternalServerError, CodeInternal, message, details)
}

func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

func failure(c *fiber.Ctx, status int, code ErrorCode, message string, details map[string]interface{}) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

func requestID(c *fiber.Ctx) string {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
		c.Set("X-Request-ID", id)
	}
	return id
}
