package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handler handles health check related endpoints
type Handler struct {
	responseHandler ResponseHandler
	db              *gorm.DB
	redis           *redis.Client
}

// NewHandler creates a new health check handler
func NewHandler(responseHandler ResponseHandler, db *gorm.DB, redis *redis.Client) *Handler {
	return &Handler{
		responseHandler: responseHandler,
		db:              db,
		redis:           redis,
	}
}

// HandleHealthCheck reports liveness plus the state of the database and
// Redis connections.
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	checks := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		checks["database"] = err.Error()
		healthy = false
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}
	} else {
		checks["redis"] = "disabled"
	}

	if !healthy {
		h.responseHandler.ErrorResponse(c, http.StatusServiceUnavailable, "UNHEALTHY", "One or more dependencies are unavailable", nil)
		return
	}

	h.responseHandler.SuccessResponse(c, checks, "Health check successful")
}
