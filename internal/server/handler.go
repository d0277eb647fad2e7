package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
	"github.com/GitRealm/dagu-check-tickets/internal/worker"
)

// Handler serves the task envelope over HTTP for callers that cannot spawn
// a child process.
type Handler struct {
	run worker.PipelineFunc
	log *zap.Logger
}

// NewHandler creates the HTTP handler around the given pipeline.
func NewHandler(run worker.PipelineFunc, log *zap.Logger) *Handler {
	return &Handler{run: run, log: log}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ExecuteTask accepts one inbound task message and responds with its
// terminal message. Unlike the stream transport, a non-execute action is
// rejected rather than silently ignored: an HTTP request always gets an
// answer.
func (h *Handler) ExecuteTask(c *gin.Context) {
	var msg worker.Inbound
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"action": "error",
			"error":  "malformed task message: " + err.Error(),
		})
		return
	}

	if msg.Action != worker.ActionExecute {
		c.JSON(http.StatusBadRequest, gin.H{
			"action": "error",
			"error":  "unsupported action: " + msg.Action,
		})
		return
	}

	records, err := h.run(c.Request.Context(), msg.Inputs.Task())
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, worker.NewErrorMessage(err))
		return
	}

	c.JSON(http.StatusOK, worker.NewResultMessage(records))
}
