package models

import "github.com/google/uuid"

type AnalysisRequest struct {
	Resume         *UploadedDocument
	JobDescription string
}

type AnalysisResult struct {
	ID             uuid.UUID
	ResumeFilename string
	Resume         Extraction
	JobDescription Extraction
	Report         string
	Warnings       []string
}

type AnalyzeResponse struct {
	ID                     string         `json:"id"`
	ResumeFilename         string         `json:"resume_filename"`
	ResumeInsights         map[string]any `json:"resume_insights"`
	JobDescriptionInsights map[string]any `json:"job_description_insights"`
	Report                 string         `json:"report"`
	Warnings               []string       `json:"warnings"`
}

type ErrorResponse struct {
	Error    string   `json:"error"`
	Warnings []string `json:"warnings,omitempty"`
}

func NewAnalyzeResponse(result *AnalysisResult) AnalyzeResponse {
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return AnalyzeResponse{
		ID:                     result.ID.String(),
		ResumeFilename:         result.ResumeFilename,
		ResumeInsights:         RenderExtraction(result.Resume),
		JobDescriptionInsights: RenderExtraction(result.JobDescription),
		Report:                 result.Report,
		Warnings:               warnings,
	}
}
