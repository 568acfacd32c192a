package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/app"
	"docqa/internal/transport/http/response"
)

type AskHandler struct {
	askService *app.AskService
}

type AskRequest struct {
	Question   string `json:"question"`
	DocumentID string `json:"document_id" binding:"required"`
}

type AskResponse struct {
	Status     string `json:"status"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	DocumentID string `json:"document_id"`
}

func NewAskHandler(askService *app.AskService) *AskHandler {
	return &AskHandler{askService: askService}
}

// Ask answers a question about one stored document.
func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.askService.Ask(c.Request.Context(), app.AskInput{
		Question:   req.Question,
		DocumentID: req.DocumentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrQuestionEmpty):
			response.Error(c, http.StatusBadRequest, response.CodeEmptyQuestion, err.Error())
		case errors.Is(err, app.ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, response.CodeDocumentNotFound,
				fmt.Sprintf("document '%s' not found, upload it first", req.DocumentID))
		case errors.Is(err, app.ErrProviderFailure):
			response.Error(c, http.StatusInternalServerError, response.CodeProviderFailure, "llm provider call failed")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "ask failed")
		}
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Status:     "success",
		Question:   result.Question,
		Answer:     result.Answer,
		DocumentID: result.DocumentID,
	})
}
