package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	"profiletool/internal/core"
	"profiletool/internal/responsecache"
)

// cacheEntryView is the admin inspection shape: the raw stored row plus a
// few headline fields lifted out of the response payload so an operator can
// see what an entry holds without parsing it.
type cacheEntryView struct {
	*responsecache.Entry
	Summary entrySummary `json:"summary"`
}

type entrySummary struct {
	OverallScore  int64  `json:"overall_score,omitempty"`
	MaturityLevel string `json:"maturity_level,omitempty"`
	PersonaID     string `json:"persona_id,omitempty"`
	HasNarrative  bool   `json:"has_narrative"`
}

// InspectCacheEntry handles GET /api/admin/cache/:key. The model defaults to
// the one the evaluation service writes under.
func (h *Handler) InspectCacheEntry(c echo.Context) error {
	key := c.Param("key")
	model := c.QueryParam("model")
	if model == "" {
		model = h.eval.Model()
	}

	entry, ok := h.cache.GetEntry(c.Request().Context(), key, model)
	if !ok {
		return handleError(c, core.NewNotFoundError("cache entry not found"))
	}

	resp := string(entry.Response)
	return c.JSON(http.StatusOK, cacheEntryView{
		Entry: entry,
		Summary: entrySummary{
			OverallScore:  gjson.Get(resp, "readiness.overall_score").Int(),
			MaturityLevel: gjson.Get(resp, "readiness.maturity_level").String(),
			PersonaID:     gjson.Get(resp, "persona.persona_id").String(),
			HasNarrative:  gjson.Get(resp, "narrative").Exists(),
		},
	})
}

// CacheStats handles GET /api/admin/cache-stats.
func (h *Handler) CacheStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cache.Stats(c.Request().Context()))
}

// DeleteCacheEntry handles DELETE /api/admin/cache/:key.
func (h *Handler) DeleteCacheEntry(c echo.Context) error {
	key := c.Param("key")
	model := c.QueryParam("model")
	if model == "" {
		model = h.eval.Model()
	}

	if !h.cache.Delete(c.Request().Context(), key, model) {
		return handleError(c, core.NewNotFoundError("cache entry not found"))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"deleted": true,
		"key":     key,
		"model":   model,
	})
}

// ClearCache handles POST /api/admin/cache/clear. An empty model query
// parameter clears every entry.
func (h *Handler) ClearCache(c echo.Context) error {
	model := c.QueryParam("model")
	n := h.cache.Clear(c.Request().Context(), model)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"cleared": n,
		"model":   model,
	})
}
