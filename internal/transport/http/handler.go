package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/metrics"
	"github.com/xiaot623/gogo/agent/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the agent routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/agentfacts.json", h.AgentFacts)
	e.POST("/task", h.ProcessTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// Health godoc
// @Summary Health check
// @Description Agent identity and full configuration
// @Tags agent
// @Produce json
// @Success 200 {object} domain.HealthStatus
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Health())
}

// AgentFacts godoc
// @Summary Agent facts
// @Description Capability descriptor used for discovery
// @Tags agent
// @Produce json
// @Success 200 {object} domain.AgentFacts
// @Router /agentfacts.json [get]
func (h *Handler) AgentFacts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AgentFacts())
}

// ProcessTask godoc
// @Summary Execute a task
// @Description Run the prompt through the agent. Provider failures come back as a completed result prefixed with [Error executing task].
// @Tags task
// @Accept json
// @Produce json
// @Param task body domain.TaskRequest true "Task"
// @Success 200 {object} domain.TaskResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /task [post]
func (h *Handler) ProcessTask(c echo.Context) error {
	ctx := c.Request().Context()

	// The body is always JSON, whatever Content-Type the client sent.
	var req domain.TaskRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: decodeDetail(err)})
	}

	resp, err := h.service.ProcessTask(ctx, &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// ListTasks godoc
// @Summary List journal records
// @Description Most recent executed tasks, newest first
// @Tags task
// @Produce json
// @Param task_id query string false "Filter by task id"
// @Param limit query int false "Maximum records (default 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /tasks [get]
func (h *Handler) ListTasks(c echo.Context) error {
	if !h.service.JournalEnabled() {
		return c.JSON(http.StatusNotFound, domain.ErrorResponse{Detail: "task journal is disabled"})
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Detail: "limit must be a non-negative integer"})
		}
		limit = n
	}

	records, err := h.service.ListTasks(c.Request().Context(), c.QueryParam("task_id"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tasks": records,
	})
}

// decodeDetail treats an empty body as a missing prompt.
func decodeDetail(err error) string {
	if errors.Is(err, io.EOF) {
		return domain.ErrPromptRequired.Error()
	}
	return err.Error()
}
