package services

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput      = errors.New("resume file and job description are both required")
	ErrUnsupportedFormat = errors.New("unsupported resume file format")
	ErrInvalidEncoding   = errors.New("text file is not valid UTF-8")
	ErrGeneration        = errors.New("text generation failed")
	ErrEmptyResponse     = fmt.Errorf("%w: no text content in response", ErrGeneration)
)
