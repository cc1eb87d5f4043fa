package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	req, err := readAnalysisRequest(c, h.maxFileSize)
	if err != nil {
		status, message := statusForError(err)
		return c.Status(status).JSON(models.ErrorResponse{Error: message})
	}

	result, err := h.analyzer.Analyze(c.UserContext(), *req)
	if err != nil {
		status, message := statusForError(err)
		resp := models.ErrorResponse{Error: message}
		if errors.Is(err, services.ErrUnsupportedFormat) {
			resp.Warnings = []string{services.WarnUnsupportedFormat}
		}
		return c.Status(status).JSON(resp)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewAnalyzeResponse(result))
}

// readAnalysisRequest pulls the resume upload and the pasted job description
// out of a multipart form. Missing or blank input yields ErrMissingInput.
func readAnalysisRequest(c *fiber.Ctx, maxFileSize int64) (*models.AnalysisRequest, error) {
	jobDescription := c.FormValue("job_description")

	file, err := c.FormFile("resume")
	if err != nil || file == nil || strings.TrimSpace(jobDescription) == "" {
		return nil, services.ErrMissingInput
	}

	if file.Size > maxFileSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, "Resume file too large")
	}

	doc, err := models.NewUploadedDocument(file)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded resume")
	}

	if doc.IsEmpty() {
		return nil, services.ErrMissingInput
	}

	return &models.AnalysisRequest{
		Resume:         doc,
		JobDescription: jobDescription,
	}, nil
}
