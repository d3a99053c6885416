package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/terra-clan/internship-engine/internal/models"
)

// internshipResponse is the flat wire form of a catalog record
type internshipResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Sector            string   `json:"sector"`
	Location          string   `json:"location"`
	IsRemote          bool     `json:"is_remote"`
	RequiredEducation string   `json:"required_education"`
	RequiredSkills    []string `json:"required_skills"`
	Duration          string   `json:"duration"`
	Stipend           string   `json:"stipend"`
	Description       string   `json:"description"`
}

type matchResponse struct {
	internshipResponse
	MatchScore  int    `json:"match_score"`
	MatchReason string `json:"match_reason"`
}

func toInternshipResponse(in models.Internship) internshipResponse {
	skills := make([]string, len(in.RequiredSkills))
	for i, s := range in.RequiredSkills {
		skills[i] = string(s)
	}

	return internshipResponse{
		ID:                in.ID,
		Title:             in.Title,
		Company:           in.Company,
		Sector:            string(in.Sector),
		Location:          string(in.Location),
		IsRemote:          in.IsRemote,
		RequiredEducation: string(in.RequiredEducation),
		RequiredSkills:    skills,
		Duration:          in.Duration,
		Stipend:           in.Stipend,
		Description:       in.Description,
	}
}

func toInternshipResponses(ins []models.Internship) []internshipResponse {
	out := make([]internshipResponse, len(ins))
	for i, in := range ins {
		out[i] = toInternshipResponse(in)
	}
	return out
}

func toMatchResponses(results []models.MatchResult) []matchResponse {
	out := make([]matchResponse, len(results))
	for i, m := range results {
		out[i] = matchResponse{
			internshipResponse: toInternshipResponse(m.Internship),
			MatchScore:         m.Score,
			MatchReason:        m.Reason,
		}
	}
	return out
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		if field := missingField(err); field != "" {
			respondError(w, http.StatusBadRequest, "validation_error", "missing required field: "+field)
			return
		}
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	candidate := req.Candidate()
	fingerprint := s.engine.Fingerprint()

	results, cached := s.cache.Get(r.Context(), fingerprint, candidate)
	if !cached {
		results = s.engine.Recommend(candidate)
		if err := s.cache.Set(r.Context(), fingerprint, candidate, results); err != nil {
			slog.Debug("recommendation not cached", "error", err)
		}
	}

	recommendationID := uuid.New().String()
	slog.Info("recommendations computed",
		"recommendation_id", recommendationID,
		"results", len(results),
		"cached", cached,
	)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"recommendation_id": recommendationID,
		"recommendations":   toMatchResponses(results),
		"total":             len(results),
	})
}

func (s *Server) handleListInternships(w http.ResponseWriter, r *http.Request) {
	internships := s.engine.AllInternships()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"internships": toInternshipResponses(internships),
		"total":       len(internships),
	})
}

func (s *Server) handleSearchInternships(w http.ResponseWriter, r *http.Request) {
	query, filters := parseSearchQuery(r.URL.Query())
	results := s.engine.Search(query)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"internships": toInternshipResponses(results),
		"total":       len(results),
		"filters":     filters,
	})
}

func (s *Server) handleGetInternship(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	internship, ok := s.engine.Internship(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "internship not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"internship": toInternshipResponse(internship),
	})
}

func (s *Server) handleListSectors(w http.ResponseWriter, r *http.Request) {
	sectors := s.engine.AvailableSectors()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sectors": sectors,
	})
}
