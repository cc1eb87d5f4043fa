package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-matcher/internal/models"
)

const (
	WarnUnsupportedFormat = "Unsupported resume file format."
	WarnResumeParse       = "Could not parse resume JSON. Showing raw output."
	WarnJobDescription    = "Could not parse JD JSON. Showing raw output."
	InfoMissingInput      = "Please upload your resume and paste a job description to continue."
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
	ExtractResume(ctx context.Context, resumeText string) (models.Extraction, []string, error)
	ExtractJobDescription(ctx context.Context, jdText string) (models.Extraction, []string, error)
	Compare(ctx context.Context, resume, jobDescription models.Extraction) (string, error)
}

type analyzerService struct {
	geminiService GeminiService
	extractor     DocumentExtractor
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(geminiService GeminiService, extractor DocumentExtractor) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze runs the whole pipeline for one submission. Any failed stage aborts
// the run; undecodable extraction output does not.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if req.Resume.IsEmpty() || strings.TrimSpace(req.JobDescription) == "" {
		return nil, ErrMissingInput
	}

	analysisID := uuid.New()
	log.Printf("🔄 Starting analysis %s for %q\n", analysisID, req.Resume.Filename)

	// Step 1: Extract resume text
	log.Println("📄 Extracting resume text...")
	resumeText, err := a.extractor.ExtractText(req.Resume)
	if err != nil {
		log.Printf("⚠️  Resume extraction failed: %v\n", err)
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	// Step 2: Structure resume and job description
	log.Println("🤖 Extracting resume and job description insights...")
	var (
		resumeData, jdData         models.Extraction
		resumeWarnings, jdWarnings []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumeData, resumeWarnings, err = a.ExtractResume(gctx, resumeText)
		return err
	})
	g.Go(func() error {
		var err error
		jdData, jdWarnings, err = a.ExtractJobDescription(gctx, req.JobDescription)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 3: Compare
	log.Println("🤖 Generating match report...")
	report, err := a.Compare(ctx, resumeData, jdData)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Analysis %s completed\n", analysisID)

	return &models.AnalysisResult{
		ID:             analysisID,
		ResumeFilename: req.Resume.Filename,
		Resume:         resumeData,
		JobDescription: jdData,
		Report:         report,
		Warnings:       append(resumeWarnings, jdWarnings...),
	}, nil
}

func (a *analyzerService) ExtractResume(ctx context.Context, resumeText string) (models.Extraction, []string, error) {
	response, err := a.geminiService.GenerateText(ctx, a.promptBuilder.BuildResumeExtractionPrompt(), resumeText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract resume insights: %w", err)
	}

	extraction, ok := decodeExtraction(response)
	if !ok {
		log.Println("⚠️  Resume response is not a JSON object, keeping raw output")
		return extraction, []string{WarnResumeParse}, nil
	}
	return extraction, nil, nil
}

func (a *analyzerService) ExtractJobDescription(ctx context.Context, jdText string) (models.Extraction, []string, error) {
	response, err := a.geminiService.GenerateText(ctx, a.promptBuilder.BuildJobDescriptionExtractionPrompt(), jdText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract job description insights: %w", err)
	}

	extraction, ok := decodeExtraction(response)
	if !ok {
		log.Println("⚠️  Job description response is not a JSON object, keeping raw output")
		return extraction, []string{WarnJobDescription}, nil
	}
	return extraction, nil, nil
}

func (a *analyzerService) Compare(ctx context.Context, resume, jobDescription models.Extraction) (string, error) {
	resumeJSON, err := models.PromptJSON(resume)
	if err != nil {
		return "", err
	}
	jdJSON, err := models.PromptJSON(jobDescription)
	if err != nil {
		return "", err
	}

	prompt := a.promptBuilder.BuildComparisonPrompt(resumeJSON, jdJSON)
	log.Printf("📝 Comparison prompt length: %d characters", len(prompt))

	report, err := a.geminiService.GenerateText(ctx, prompt, "")
	if err != nil {
		return "", fmt.Errorf("failed to generate match report: %w", err)
	}

	return report, nil
}

// decodeExtraction decodes response as a JSON object. On failure the raw
// response is kept unchanged and ok is false.
func decodeExtraction(response string) (extraction models.Extraction, ok bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(response), &fields); err != nil || fields == nil {
		return models.RawExtraction{Text: response}, false
	}
	return models.DecodedExtraction{Fields: fields}, true
}
