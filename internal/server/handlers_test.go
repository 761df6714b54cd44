package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"profiletool/internal/cachekey"
	"profiletool/internal/core"
	"profiletool/internal/evaluator"
	"profiletool/internal/generate"
	"profiletool/internal/responsecache"
	"profiletool/internal/submission"
)

const testAdminToken = "test-admin-token"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cache := responsecache.NewMemory()
	eval := evaluator.New(cache, generate.NewStatic(), "static-v1")
	handler := NewHandler(eval, cache, submission.NewMemoryStore())
	return New(handler, &Config{AdminToken: testAdminToken})
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func evaluationBody() map[string]interface{} {
	return map[string]interface{}{
		"role":       "product-manager",
		"experience": "5-8",
		"careerGoal": "ai-leadership",
		"answers": map[string]string{
			"pm-data-conflict": "revalidate-hypothesis",
			"pm-ai-usage":      "predictive-insights",
		},
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/evaluate", evaluationBody(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	score := gjson.Get(body, "readiness.overall_score").Int()
	assert.GreaterOrEqual(t, score, int64(40))
	assert.LessOrEqual(t, score, int64(80))
	assert.Equal(t, "persona_product_manager", gjson.Get(body, "persona.persona_id").String())
	assert.True(t, gjson.Get(body, "narrative.transformation_stories").IsArray())
}

func TestEvaluateValidation(t *testing.T) {
	srv := newTestServer(t)

	body := evaluationBody()
	delete(body, "role")

	rec := doJSON(t, srv, http.MethodPost, "/api/evaluate", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", gjson.Get(rec.Body.String(), "error.type").String())
	assert.Equal(t, "role", gjson.Get(rec.Body.String(), "error.field").String())
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
	assert.True(t, gjson.Get(rec.Body.String(), "cache").Bool())
}

func TestSubmissionRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/submissions", evaluationBody(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hashKey := gjson.Get(rec.Body.String(), "hash_key").String()
	require.NotEmpty(t, hashKey)

	rec = doJSON(t, srv, http.MethodGet, "/api/admin/submissions/"+hashKey, nil,
		map[string]string{"X-Admin-Token": testAdminToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hashKey, gjson.Get(rec.Body.String(), "hash_key").String())
	assert.Equal(t, "product-manager", gjson.Get(rec.Body.String(), "payload.role").String())
}

func TestSubmissionRejectsEmptyPayload(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/submissions", map[string]interface{}{}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminSubmissionNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/admin/submissions/nope", nil,
		map[string]string{"X-Admin-Token": testAdminToken})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found_error", gjson.Get(rec.Body.String(), "error.type").String())
}

// derivedKey computes the cache key the evaluation service stores under.
func derivedKey(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	req := &core.EvaluationRequest{
		Role:       body["role"].(string),
		Experience: body["experience"].(string),
		CareerGoal: body["careerGoal"].(string),
		Answers:    body["answers"].(map[string]string),
	}
	key, err := cachekey.Derive(req.Normalized(), "static-v1")
	require.NoError(t, err)
	return key
}

func TestAdminCacheInspection(t *testing.T) {
	srv := newTestServer(t)

	body := evaluationBody()
	rec := doJSON(t, srv, http.MethodPost, "/api/evaluate", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	key := derivedKey(t, body)
	rec = doJSON(t, srv, http.MethodGet, "/api/admin/cache/"+key, nil,
		map[string]string{"X-Admin-Token": testAdminToken})
	require.Equal(t, http.StatusOK, rec.Code)

	out := rec.Body.String()
	assert.Equal(t, key, gjson.Get(out, "cache_key").String())
	assert.Greater(t, gjson.Get(out, "summary.overall_score").Int(), int64(0))
	assert.NotEmpty(t, gjson.Get(out, "summary.maturity_level").String())
	assert.Equal(t, "persona_product_manager", gjson.Get(out, "summary.persona_id").String())
	assert.True(t, gjson.Get(out, "summary.has_narrative").Bool())
	assert.Equal(t, "product-manager", gjson.Get(out, "user_input.role").String())
}

func TestAdminCacheDeleteAndClear(t *testing.T) {
	srv := newTestServer(t)
	auth := map[string]string{"X-Admin-Token": testAdminToken}

	body := evaluationBody()
	require.Equal(t, http.StatusOK, doJSON(t, srv, http.MethodPost, "/api/evaluate", body, nil).Code)
	key := derivedKey(t, body)

	rec := doJSON(t, srv, http.MethodDelete, "/api/admin/cache/"+key, nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "deleted").Bool())

	// A second delete finds nothing.
	rec = doJSON(t, srv, http.MethodDelete, "/api/admin/cache/"+key, nil, auth)
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusOK, doJSON(t, srv, http.MethodPost, "/api/evaluate", body, nil).Code)
	rec = doJSON(t, srv, http.MethodPost, "/api/admin/cache/clear", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), gjson.Get(rec.Body.String(), "cleared").Int())
}

func TestAdminCacheStats(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/admin/cache-stats", nil,
		map[string]string{"X-Admin-Token": testAdminToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "enabled").Bool())
}
