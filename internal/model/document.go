package model

import "time"

type DocumentType string

const (
	TypeText     DocumentType = "TEXT"
	TypePDF      DocumentType = "PDF"
	TypeMarkdown DocumentType = "MARKDOWN"
)

// Document holds the extracted text of one uploaded file. The uploaded
// filename is the identifier; re-uploading the same name overwrites.
type Document struct {
	ID         string       `json:"id"`
	Content    string       `json:"-"`
	Size       int          `json:"size"` // byte length of Content at insert time
	Type       DocumentType `json:"type"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// NewDocument builds a record whose Size matches the stored content.
func NewDocument(id, content string, docType DocumentType) Document {
	return Document{
		ID:         id,
		Content:    content,
		Size:       len(content),
		Type:       docType,
		UploadedAt: time.Now(),
	}
}
