package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/shared/utils"
)

const pingMessage = "chamados API alive"

// BackendStatus reports whether the store came up at startup.
type BackendStatus interface {
	Available() bool
}

type HealthHandler struct {
	backend BackendStatus
	now     func() time.Time
}

func NewHealthHandler(backend BackendStatus) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		now:     time.Now,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type PingResponse struct {
	Time string `json:"time"`
	Msg  string `json:"msg"`
}

// Health handles GET /health. The process is alive even when the backend
// is degraded, so the status code stays 200.
func (h *HealthHandler) Health(c *gin.Context) {
	backend := "unavailable"
	if h.backend != nil && h.backend.Available() {
		backend = "ok"
	}
	utils.SuccessResponse(c, http.StatusOK, "", HealthResponse{Status: "ok", Backend: backend})
}

// Ping handles GET /api/ping
func (h *HealthHandler) Ping(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", PingResponse{
		Time: h.now().UTC().Format(time.RFC3339),
		Msg:  pingMessage,
	})
}
