package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docqa/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":        h.app.Config.App.Name,
		"env":        h.app.Config.App.Env,
		"uptime_sec": int(time.Since(h.app.StartedAt).Seconds()),
		"documents":  h.app.Store.Len(),
		"llm_model":  h.app.Config.LLM.Model,
	})
}

// Root describes the service and its endpoints.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Document Q&A API",
		"status":  "running",
		"endpoints": gin.H{
			"upload":    "/upload",
			"ask":       "/ask",
			"documents": "/documents",
			"healthz":   "/healthz",
		},
	})
}
