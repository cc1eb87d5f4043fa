package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"alfredoptarigan/resume-matcher/internal/config"
)

const geminiModel = "gemini-2.5-flash"

type GeminiService interface {
	// GenerateText sends prompt to the model. A non-empty textData is appended
	// after the instructions inside a "Text Data" block.
	GenerateText(ctx context.Context, prompt, textData string) (string, error)
}

// ContentGenerator is the subset of the genai Models API the gateway uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiService struct {
	generator ContentGenerator
	modelName string
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return NewGeminiServiceWithGenerator(client.Models), nil
}

func NewGeminiServiceWithGenerator(generator ContentGenerator) GeminiService {
	return &geminiService{
		generator: generator,
		modelName: geminiModel,
	}
}

// BuildFullPrompt appends textData to prompt under a delimited "Text Data" section.
func BuildFullPrompt(prompt, textData string) string {
	if textData == "" {
		return prompt
	}
	return prompt + "\n\n---\nText Data:\n" + textData + "\n---"
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt, textData string) (string, error) {
	fullPrompt := BuildFullPrompt(prompt, textData)

	resp, err := g.generator.GenerateContent(ctx, g.modelName, genai.Text(fullPrompt), nil)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", fmt.Errorf("%w: nil response", ErrEmptyResponse)
	}

	text := resp.Text()
	if text == "" {
		log.Println("❌ No text content in response")
		return "", ErrEmptyResponse
	}

	log.Printf("📊 Gemini response received: %d characters\n", len(text))
	return text, nil
}
