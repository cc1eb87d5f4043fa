package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeExtractionPrompt creates the instructions for the resume extraction stage.
// The resume text itself travels as the gateway's text data.
func (pb *PromptBuilder) BuildResumeExtractionPrompt() string {
	return `Analyze the following resume text. Extract key information including:
- Contact Information (Name, Email, Phone, Location - if available)
- Summary
- Skills (Technical, Soft, Tools, Languages)
- Work Experience (Title, Company, Dates, Location, Responsibilities)
- Education
- Certifications

Return as JSON.`
}

// BuildJobDescriptionExtractionPrompt creates the instructions for the job description extraction stage.
func (pb *PromptBuilder) BuildJobDescriptionExtractionPrompt() string {
	return `Analyze the following job description text. Extract key requirements including:
- Job Title
- Required Skills (Technical, Soft, Tools)
- Required Experience & Education
- Key Responsibilities
- ATS Keywords

Return as JSON.`
}

// BuildComparisonPrompt embeds both serialized extractions in the gap analysis instructions.
func (pb *PromptBuilder) BuildComparisonPrompt(resumeJSON, jobDescriptionJSON string) string {
	return fmt.Sprintf(`Compare the resume data and job description below.

Resume:
`+"```json"+`
%s
`+"```"+`

Job Description:
`+"```json"+`
%s
`+"```"+`

Provide a markdown-formatted report with:
- Skill Matches and Gaps
- Experience Fit
- Education & Certification Match
- ATS Keyword Coverage
- Make all the suggested changes, following the same format as the uploaded resume.`,
		resumeJSON, jobDescriptionJSON)
}
