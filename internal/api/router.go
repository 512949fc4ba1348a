package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-etl-designer/docs"
	"go-etl-designer/internal/api/handler"
	"go-etl-designer/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/healthz", h.Health)
	r.POST("/api/v1/sessions", h.CreateSession)
	// More specific routes first
	r.POST("/api/v1/sessions/*/upload", h.UploadSource)
	r.GET("/api/v1/sessions/*/preview", h.GetPreview)
	r.GET("/api/v1/sessions/*/steps", h.ListSteps)
	r.POST("/api/v1/sessions/*/steps", h.AddStep)
	r.PUT("/api/v1/sessions/*/steps/order", h.ReorderSteps)
	r.GET("/api/v1/sessions/*/scripts", h.ListScripts)
	r.GET("/api/v1/sessions/*/script", h.GetScript)
	// Generic session routes last
	r.GET("/api/v1/sessions/*", h.GetSession)
	r.DELETE("/api/v1/sessions/*", h.DeleteSession)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
