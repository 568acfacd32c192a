package response

import "github.com/gin-gonic/gin"

const (
	CodeBadRequest          = 40000
	CodeUnsupportedFileType = 40001
	CodeExtractionFailure   = 40002
	CodeEmptyQuestion       = 40003
	CodeDocumentNotFound    = 40401
	CodeInternalServer      = 50000
	CodeProviderFailure     = 50001
)

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Error(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, APIError{
		Code:    code,
		Message: message,
	})
}
