package httpapi

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// NewRouter maps the API routes onto h.
func NewRouter(h *Handler) *router.Router {
	r := router.New()

	r.GET("/health", h.Health)
	r.GET("/metrics", h.Metrics)

	r.GET("/api/messages", h.ListMessages)
	r.POST("/api/messages", h.PostMessage)
	r.DELETE("/api/messages", h.ClearMessages)
	r.DELETE("/api/messages/{id}", h.DeleteMessage)
	r.POST("/api/chat", h.PostMessage)

	r.GET("/api/stats", h.Stats)

	r.GET("/api/activities", h.ListActivities)
	r.POST("/api/activities", h.CreateActivity)
	r.PUT("/api/activities/{name}", h.UpdateActivity)
	r.DELETE("/api/activities/{name}", h.DeleteActivity)

	r.GET("/api/logs", h.ListLogs)
	r.DELETE("/api/logs/{id}", h.DeleteLog)
	r.POST("/api/streaks/rebuild", h.RebuildStreaks)

	r.GET("/api/settings", h.GetSettings)
	r.PUT("/api/settings", h.UpdateSettings)
	r.POST("/api/settings/reset", h.ResetSettings)

	r.GET("/api/memory", h.GetMemory)
	r.POST("/api/memory/clear", h.ClearMemory)
	r.POST("/api/memory/remove-item", h.RemoveMemoryItem)

	r.GET("/api/export", h.Export)
	r.POST("/api/import", h.Import)

	return r
}

// Routes returns the complete request handler with request logging.
func Routes(h *Handler) fasthttp.RequestHandler {
	return h.logged(NewRouter(h).Handler)
}
