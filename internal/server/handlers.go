package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"profiletool/internal/core"
	"profiletool/internal/evaluator"
	"profiletool/internal/responsecache"
	"profiletool/internal/submission"
)

// Handler holds the HTTP handlers and their collaborators.
type Handler struct {
	eval        *evaluator.Service
	cache       *responsecache.Cache
	submissions submission.Store
}

// NewHandler creates a handler around the evaluation service, the response
// cache, and the submission store.
func NewHandler(eval *evaluator.Service, cache *responsecache.Cache, submissions submission.Store) *Handler {
	return &Handler{
		eval:        eval,
		cache:       cache,
		submissions: submissions,
	}
}

// Evaluate handles POST /api/evaluate.
func (h *Handler) Evaluate(c echo.Context) error {
	var req core.EvaluationRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, core.NewValidationError("", "invalid request body: "+err.Error()))
	}

	eval, err := h.eval.Evaluate(c.Request().Context(), &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, eval)
}

// Health handles GET and HEAD /api/health.
func (h *Handler) Health(c echo.Context) error {
	cacheUp := false
	if h.cache != nil {
		cacheUp = h.cache.HealthCheck(c.Request().Context())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"cache":  cacheUp,
	})
}

// StoreSubmission handles POST /api/submissions.
func (h *Handler) StoreSubmission(c echo.Context) error {
	if h.submissions == nil {
		return handleError(c, core.NewStorageError("submission store is not configured", nil))
	}

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return handleError(c, core.NewValidationError("", "invalid request body: "+err.Error()))
	}
	if len(payload) == 0 {
		return handleError(c, core.NewValidationError("", "submission payload is required"))
	}

	hashKey, err := h.submissions.Put(c.Request().Context(), payload)
	if err != nil {
		return handleError(c, core.NewStorageError("failed to store submission", err))
	}
	return c.JSON(http.StatusOK, map[string]string{"hash_key": hashKey})
}

// GetSubmission handles GET /api/admin/submissions/:hash.
func (h *Handler) GetSubmission(c echo.Context) error {
	if h.submissions == nil {
		return handleError(c, core.NewStorageError("submission store is not configured", nil))
	}

	rec, err := h.submissions.Get(c.Request().Context(), c.Param("hash"))
	if err != nil {
		if errors.Is(err, submission.ErrNotFound) {
			return handleError(c, core.NewNotFoundError("submission not found"))
		}
		return handleError(c, core.NewStorageError("failed to read submission", err))
	}
	return c.JSON(http.StatusOK, rec)
}

// handleError converts service errors to their HTTP wire shape.
func handleError(c echo.Context, err error) error {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPStatusCode(), appErr.ToJSON())
	}

	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": map[string]interface{}{
			"type":    "internal_error",
			"message": "an unexpected error occurred",
		},
	})
}
