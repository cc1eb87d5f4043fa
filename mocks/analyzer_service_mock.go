package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-matcher/internal/models"
)

type MockAnalyzerService struct {
	mock.Mock
}

func (m *MockAnalyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}

func (m *MockAnalyzerService) ExtractResume(ctx context.Context, resumeText string) (models.Extraction, []string, error) {
	args := m.Called(ctx, resumeText)
	return extractionArgs(args)
}

func (m *MockAnalyzerService) ExtractJobDescription(ctx context.Context, jdText string) (models.Extraction, []string, error) {
	args := m.Called(ctx, jdText)
	return extractionArgs(args)
}

func (m *MockAnalyzerService) Compare(ctx context.Context, resume, jobDescription models.Extraction) (string, error) {
	args := m.Called(ctx, resume, jobDescription)
	return args.String(0), args.Error(1)
}

func extractionArgs(args mock.Arguments) (models.Extraction, []string, error) {
	var (
		extraction models.Extraction
		warnings   []string
	)
	if v := args.Get(0); v != nil {
		extraction = v.(models.Extraction)
	}
	if v := args.Get(1); v != nil {
		warnings = v.([]string)
	}
	return extraction, warnings, args.Error(2)
}
