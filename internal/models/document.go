package models

import (
	"io"
	"mime/multipart"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatTXT  DocumentFormat = "txt"
)

// UploadedDocument is a resume upload held in memory for the lifetime of one analysis.
type UploadedDocument struct {
	Filename string
	Data     []byte
}

func (d *UploadedDocument) IsEmpty() bool {
	return d == nil || len(d.Data) == 0
}

// NewUploadedDocument reads a multipart file header fully into memory.
func NewUploadedDocument(file *multipart.FileHeader) (*UploadedDocument, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &UploadedDocument{
		Filename: file.Filename,
		Data:     data,
	}, nil
}
