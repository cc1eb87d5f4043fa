package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/services"
)

// statusForError maps pipeline failures to an HTTP status and a user-facing message.
func statusForError(err error) (int, string) {
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, services.ErrMissingInput):
		return fiber.StatusBadRequest, services.InfoMissingInput
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType, services.WarnUnsupportedFormat
	case errors.Is(err, services.ErrInvalidEncoding):
		return fiber.StatusUnprocessableEntity, "Resume text file is not valid UTF-8."
	case errors.Is(err, services.ErrGeneration):
		return fiber.StatusBadGateway, "Gemini API Error: " + err.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusUnprocessableEntity, err.Error()
	}
}
