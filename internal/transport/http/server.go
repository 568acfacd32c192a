package http

import (
	"github.com/gin-gonic/gin"

	appsvc "docqa/internal/app"
	"docqa/internal/bootstrap"
	"docqa/internal/transport/http/handler"
	"docqa/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS())

	documentService := appsvc.NewDocumentService(app.Store)
	askService := appsvc.NewAskService(app.Store, app.LLMClient, app.ChatConfig())

	documentHandler := handler.NewDocumentHandler(documentService, app.Config.MaxUploadBytes())
	askHandler := handler.NewAskHandler(askService)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/", healthHandler.Root)
	router.GET("/healthz", healthHandler.Check)
	router.POST("/upload", documentHandler.Upload)
	router.POST("/ask", askHandler.Ask)
	router.GET("/documents", documentHandler.List)

	return router
}
