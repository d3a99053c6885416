package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/config"
	"github.com/terra-clan/internship-engine/internal/matching"
	"github.com/terra-clan/internship-engine/internal/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func newTestServer(t *testing.T, registry *services.Registry) *Server {
	t.Helper()
	c, err := catalog.Load(context.Background(), catalog.FileSource{})
	require.NoError(t, err)

	engine := matching.NewEngine(c, matching.Options{})
	return NewServer(config.ServerConfig{}, engine, nil, registry, "test")
}

func do(t *testing.T, s *Server, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestInfoAndHealth(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := do(t, s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"message":"Internship Recommendation API","version":"test","status":"active"}`, string(env.Data))

	rec, env = do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"status":"healthy"`)
}

func TestReady(t *testing.T) {
	registry := services.NewRegistry()
	registry.Register("catalog", services.CatalogCheck(func() int { return 20 }))
	s := newTestServer(t, registry)

	rec, env := do(t, s, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","checks":{"catalog":"ok"}}`, string(env.Data))

	registry.Register("redis", services.CheckerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	rec, env = do(t, s, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, env.Success)
	assert.JSONEq(t, `{"status":"not_ready","checks":{"catalog":"ok","redis":"connection refused"}}`, string(env.Data))
}

type recommendData struct {
	RecommendationID string          `json:"recommendation_id"`
	Recommendations  []matchResponse `json:"recommendations"`
	Total            int             `json:"total"`
}

func TestRecommend(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"education":"undergraduate","skills":["computer","programming"],"interests":["technology"],"location":"mumbai"}`
	rec, env := do(t, s, http.MethodPost, "/api/recommend", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var data recommendData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	_, err := uuid.Parse(data.RecommendationID)
	assert.NoError(t, err)

	require.NotEmpty(t, data.Recommendations)
	assert.Equal(t, len(data.Recommendations), data.Total)
	assert.LessOrEqual(t, data.Total, matching.DefaultTopN)

	first := data.Recommendations[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, 12, first.MatchScore)
	assert.Contains(t, first.MatchReason, "matches your interest in technology")
	assert.Contains(t, first.MatchReason, "available in your preferred location")
	assert.Equal(t, "11", data.Recommendations[1].ID, "ties keep catalog order")

	for i := 1; i < len(data.Recommendations); i++ {
		assert.GreaterOrEqual(t, data.Recommendations[i-1].MatchScore, data.Recommendations[i].MatchScore)
	}
}

func TestRecommend_NormalisesTags(t *testing.T) {
	s := newTestServer(t, nil)

	_, lower := do(t, s, http.MethodPost, "/api/recommend",
		`{"education":"diploma","skills":["computer"],"interests":["healthcare"],"location":"chennai"}`)
	_, mixed := do(t, s, http.MethodPost, "/api/recommend",
		`{"education":" Diploma ","skills":["COMPUTER"],"interests":["HealthCare"],"location":"Chennai"}`)

	var a, b recommendData
	require.NoError(t, json.Unmarshal(lower.Data, &a))
	require.NoError(t, json.Unmarshal(mixed.Data, &b))
	assert.Equal(t, a.Recommendations, b.Recommendations)
}

func TestRecommend_EmptyArraysAreAccepted(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := do(t, s, http.MethodPost, "/api/recommend",
		`{"education":"","skills":[],"interests":[],"location":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data recommendData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Recommendations, 1)
	assert.Equal(t, "2", data.Recommendations[0].ID)
	assert.Equal(t, "meets basic eligibility criteria", data.Recommendations[0].MatchReason)
}

func TestRecommend_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    string
		message string
	}{
		{"malformed json", `{"education":`, "invalid_request", "invalid JSON body"},
		{"missing education", `{"skills":[],"interests":[],"location":"delhi"}`, "validation_error", "missing required field: education"},
		{"missing skills", `{"education":"12th","interests":[],"location":"delhi"}`, "validation_error", "missing required field: skills"},
		{"null interests", `{"education":"12th","skills":[],"interests":null,"location":"delhi"}`, "validation_error", "missing required field: interests"},
		{"missing location", `{"education":"12th","skills":[],"interests":[]}`, "validation_error", "missing required field: location"},
	}

	s := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, s, http.MethodPost, "/api/recommend", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, tt.message, env.Error.Message)
		})
	}
}

func TestListInternshipsAndSectors(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := do(t, s, http.MethodGet, "/api/internships", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Internships []internshipResponse `json:"internships"`
		Total       int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 20, list.Total)
	require.Len(t, list.Internships, 20)
	assert.Equal(t, "1", list.Internships[0].ID)
	assert.Equal(t, []string{"computer", "programming"}, list.Internships[0].RequiredSkills)

	_, env = do(t, s, http.MethodGet, "/api/sectors", "")
	var sectors struct {
		Sectors []string `json:"sectors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sectors))
	assert.Equal(t, []string{
		"technology", "healthcare", "marketing", "finance",
		"education", "agriculture", "manufacturing", "government",
	}, sectors.Sectors)
}

func TestSearchInternships(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := do(t, s, http.MethodGet, "/api/internships/search?sector=Technology&remote=TRUE", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Internships []internshipResponse `json:"internships"`
		Total       int                  `json:"total"`
		Filters     json.RawMessage      `json:"filters"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	var got []string
	for _, in := range data.Internships {
		got = append(got, in.ID)
	}
	assert.Equal(t, []string{"4", "11"}, got)
	assert.Equal(t, 2, data.Total)
	assert.JSONEq(t, `{"sector":"Technology","location":null,"remote":true}`, string(data.Filters))

	_, env = do(t, s, http.MethodGet, "/api/internships/search?location=delhi&remote=yes", "")
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Total)
	assert.JSONEq(t, `{"sector":null,"location":"delhi","remote":false}`, string(data.Filters))

	_, env = do(t, s, http.MethodGet, "/api/internships/search?sector=astronomy", "")
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 0, data.Total)
	assert.NotNil(t, data.Internships)
}

func TestGetInternship(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := do(t, s, http.MethodGet, "/api/internships/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Internship internshipResponse `json:"internship"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "2", data.Internship.ID)
	assert.Equal(t, "remote", data.Internship.Location)
	assert.True(t, data.Internship.IsRemote)
	assert.Equal(t, []string{}, data.Internship.RequiredSkills)

	rec, env = do(t, s, http.MethodGet, "/api/internships/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)
}

func TestUnknownRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := do(t, s, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)

	rec, env = do(t, s, http.MethodDelete, "/api/internships/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}
