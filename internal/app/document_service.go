package app

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"docqa/internal/model"
	"docqa/internal/pkg/pdfextract"
	"docqa/internal/store"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailure   = errors.New("failed to extract text")
	ErrEmptyDocument       = errors.New("document contains no extractable text")
)

// DocumentService extracts text from uploaded files and maintains the shared
// in-memory document table.
type DocumentService struct {
	store *store.DocumentStore
}

func NewDocumentService(docStore *store.DocumentStore) *DocumentService {
	return &DocumentService{store: docStore}
}

type UploadInput struct {
	Filename string
	Data     []byte
}

type UploadResult struct {
	DocumentID string             `json:"document_id"`
	Size       int                `json:"size"`
	Type       model.DocumentType `json:"file_type"`
}

// Upload extracts text according to the file extension and writes the table
// entry, overwriting any previous upload under the same filename.
func (s *DocumentService) Upload(input UploadInput) (*UploadResult, error) {
	filename := strings.TrimSpace(input.Filename)
	if filename == "" {
		return nil, ErrInvalidInput
	}

	content, docType, err := extractText(filename, input.Data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDocument
	}

	doc := model.NewDocument(filename, content, docType)
	s.store.Put(doc)

	return &UploadResult{
		DocumentID: doc.ID,
		Size:       doc.Size,
		Type:       doc.Type,
	}, nil
}

// List returns all table entries, ID-sorted.
func (s *DocumentService) List() []model.Document {
	return s.store.List()
}

func extractText(filename string, data []byte) (string, model.DocumentType, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		text, err := pdfextract.ExtractText(bytes.NewReader(data))
		if err != nil {
			return "", "", fmt.Errorf("%w: %s", ErrExtractionFailure, err)
		}
		return strings.TrimSpace(text), model.TypePDF, nil
	case ".md", ".markdown":
		text, err := decodeText(data)
		if err != nil {
			return "", "", err
		}
		return text, model.TypeMarkdown, nil
	case ".txt":
		text, err := decodeText(data)
		if err != nil {
			return "", "", err
		}
		return text, model.TypeText, nil
	default:
		// Unknown extension: accept anything that sniffs as plain text,
		// reject the rest.
		if !isPlainText(data) {
			return "", "", fmt.Errorf("%w: %s (upload .txt, .md or .pdf files)", ErrUnsupportedFileType, ext)
		}
		text, err := decodeText(data)
		if err != nil {
			return "", "", err
		}
		return text, model.TypeText, nil
	}
}

func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid UTF-8 text", ErrExtractionFailure)
	}
	return string(data), nil
}

// isPlainText reports whether the payload's detected MIME type descends from
// text/plain (covers csv, html, log files and the like).
func isPlainText(data []byte) bool {
	for mtype := mimetype.Detect(data); mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return true
		}
	}
	return false
}
