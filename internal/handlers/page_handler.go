package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in model output is dropped by the default renderer.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// NewViewsEngine loads the embedded page templates for fiber.Config.Views.
func NewViewsEngine() *html.Engine {
	templates, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(templates), ".html")
}

type PageHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

type pageData struct {
	Info           string
	Error          string
	Warnings       []string
	JobDescription string
	Result         *pageResult
}

type pageResult struct {
	ID                     string
	ResumeFilename         string
	ResumeInsights         string
	JobDescriptionInsights string
	Report                 template.HTML
}

func NewPageHandler(analyzer services.AnalyzerService, maxFileSize int64) *PageHandler {
	return &PageHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, pageData{Info: services.InfoMissingInput})
}

// HandleAnalyzeForm handles POST /analyze from the browser form.
func (h *PageHandler) HandleAnalyzeForm(c *fiber.Ctx) error {
	data := pageData{JobDescription: c.FormValue("job_description")}

	req, err := readAnalysisRequest(c, h.maxFileSize)
	if errors.Is(err, services.ErrMissingInput) {
		data.Info = services.InfoMissingInput
		return h.render(c, fiber.StatusOK, data)
	}
	if err != nil {
		status, message := statusForError(err)
		data.Error = message
		return h.render(c, status, data)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), *req)
	if err != nil {
		status, message := statusForError(err)
		if errors.Is(err, services.ErrUnsupportedFormat) {
			data.Warnings = []string{message}
		} else {
			data.Error = message
		}
		return h.render(c, status, data)
	}

	report, err := renderMarkdown(result.Report)
	if err != nil {
		log.Printf("❌ Failed to render match report: %v\n", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render match report")
	}

	data.Warnings = result.Warnings
	data.Result = &pageResult{
		ID:                     result.ID.String(),
		ResumeFilename:         result.ResumeFilename,
		ResumeInsights:         prettyJSON(models.RenderExtraction(result.Resume)),
		JobDescriptionInsights: prettyJSON(models.RenderExtraction(result.JobDescription)),
		Report:                 report,
	}

	return h.render(c, fiber.StatusOK, data)
}

func (h *PageHandler) render(c *fiber.Ctx, status int, data pageData) error {
	return c.Status(status).Render("index", data)
}

func renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(b)
}
