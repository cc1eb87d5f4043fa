package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) GenerateText(ctx context.Context, prompt, textData string) (string, error) {
	args := m.Called(ctx, prompt, textData)
	return args.String(0), args.Error(1)
}
