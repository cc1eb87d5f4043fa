package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-matcher/internal/models"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type DocumentExtractor interface {
	ExtractText(doc *models.UploadedDocument) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// DetectFormat maps a filename to a supported format by its extension, ignoring case.
func DetectFormat(filename string) (models.DocumentFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return models.FormatPDF, nil
	case ".docx":
		return models.FormatDOCX, nil
	case ".txt":
		return models.FormatTXT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (e *documentExtractor) ExtractText(doc *models.UploadedDocument) (string, error) {
	format, err := DetectFormat(doc.Filename)
	if err != nil {
		return "", err
	}

	switch format {
	case models.FormatPDF:
		return extractPDFText(doc.Data)
	case models.FormatDOCX:
		return extractDocxText(doc.Data)
	default:
		return extractPlainText(doc.Data)
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			// Scanned or otherwise unreadable pages contribute nothing
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := bodyParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read docx body: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// bodyParagraphs walks word/document.xml and returns the text of every
// top-level paragraph outside of tables, in document order.
func bodyParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		pDepth     int
		tblDepth   int
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "p":
				pDepth++
				if pDepth == 1 {
					current.Reset()
				}
			case "t":
				inText = pDepth == 1 && tblDepth == 0
			case "tab":
				if pDepth == 1 && tblDepth == 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if pDepth == 1 && tblDepth == 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tblDepth--
			case "t":
				inText = false
			case "p":
				if pDepth == 1 && tblDepth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
				pDepth--
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
