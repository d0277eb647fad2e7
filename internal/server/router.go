// Package server exposes the task envelope over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine with logging and panic recovery.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		ZapLogger(log),
		ZapRecovery(log),
	)

	r.GET("/health", h.Health)
	r.POST("/api/v1/tasks", h.ExecuteTask)

	return r
}
