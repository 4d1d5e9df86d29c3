package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler handles GET /health/ready. The service is ready
// when the credential store answers; the account cache is reported but a
// cache outage only degrades the status.
type HealthDependenciesHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{mongo: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, 2)
	status, httpStatus := "ok", http.StatusOK

	if err := h.mongo.Client().Ping(ctx, readpref.Primary()); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		status, httpStatus = "unavailable", http.StatusServiceUnavailable
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	if h.redis == nil {
		deps["redis"] = dependencyStatus{Status: "disabled"}
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		if httpStatus == http.StatusOK {
			status = "degraded"
		}
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(httpStatus, readinessResponse{Status: status, Dependencies: deps})
}
