package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/app"
	"docqa/internal/transport/http/response"
)

type DocumentHandler struct {
	documentService *app.DocumentService
	maxUploadBytes  int64
}

func NewDocumentHandler(documentService *app.DocumentService, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

type UploadResponse struct {
	Status     string `json:"status"`
	DocumentID string `json:"document_id"`
	Size       int    `json:"size"`
	FileType   string `json:"file_type"`
	Message    string `json:"message"`
}

type documentSummary struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

type ListDocumentsResponse struct {
	Count     int               `json:"count"`
	Documents []documentSummary `json:"documents"`
}

// Upload accepts a multipart form with "file", extracts its text and stores
// it under the original filename.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file")
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest,
			fmt.Sprintf("file too large (max %dMB)", h.maxUploadBytes>>20))
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to read file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to read file")
		return
	}

	result, err := h.documentService.Upload(app.UploadInput{
		Filename: file.Filename,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUnsupportedFileType):
			response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFileType, err.Error())
		case errors.Is(err, app.ErrExtractionFailure):
			response.Error(c, http.StatusBadRequest, response.CodeExtractionFailure, err.Error())
		case errors.Is(err, app.ErrEmptyDocument):
			response.Error(c, http.StatusBadRequest, response.CodeExtractionFailure, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Status:     "success",
		DocumentID: result.DocumentID,
		Size:       result.Size,
		FileType:   string(result.Type),
		Message:    fmt.Sprintf("%s document '%s' uploaded successfully", result.Type, result.DocumentID),
	})
}

// List enumerates every stored document with its identifier and size.
func (h *DocumentHandler) List(c *gin.Context) {
	docs := h.documentService.List()

	summaries := make([]documentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, documentSummary{ID: doc.ID, Size: doc.Size})
	}

	c.JSON(http.StatusOK, ListDocumentsResponse{
		Count:     len(summaries),
		Documents: summaries,
	})
}
