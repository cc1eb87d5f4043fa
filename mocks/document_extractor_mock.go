package mocks

import (
	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-matcher/internal/models"
)

type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) ExtractText(doc *models.UploadedDocument) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}
