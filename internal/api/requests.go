package api

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/terra-clan/internship-engine/internal/matching"
	"github.com/terra-clan/internship-engine/internal/models"
)

// RecommendRequest is the body of POST /api/recommend.
// Every key must be present; the arrays may be empty.
type RecommendRequest struct {
	Education *string  `json:"education" validate:"required"`
	Skills    []string `json:"skills" validate:"required"`
	Interests []string `json:"interests" validate:"required"`
	Location  *string  `json:"location" validate:"required"`
}

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingField returns the JSON name of the first absent field, or "" when err is not a validation failure
func missingField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}

// Candidate converts the request into the engine's candidate profile, normalising every tag
func (r RecommendRequest) Candidate() models.Candidate {
	c := models.Candidate{
		Skills:    make([]models.Skill, 0, len(r.Skills)),
		Interests: make([]models.Sector, 0, len(r.Interests)),
	}
	if r.Education != nil {
		c.Education = models.EducationLevel(models.NormalizeTag(*r.Education))
	}
	if r.Location != nil {
		c.Location = models.Location(models.NormalizeTag(*r.Location))
	}
	for _, s := range r.Skills {
		c.Skills = append(c.Skills, models.Skill(models.NormalizeTag(s)))
	}
	for _, s := range r.Interests {
		c.Interests = append(c.Interests, models.Sector(models.NormalizeTag(s)))
	}
	return c
}

// searchFilters echoes the applied search parameters; absent ones are null
type searchFilters struct {
	Sector   *string `json:"sector"`
	Location *string `json:"location"`
	Remote   bool    `json:"remote"`
}

// parseSearchQuery reads sector, location and remote from the query string.
// Only remote=true (any case) enables the remote filter.
func parseSearchQuery(values url.Values) (matching.Query, searchFilters) {
	var (
		q       matching.Query
		filters searchFilters
	)

	if values.Has("sector") {
		raw := values.Get("sector")
		filters.Sector = &raw
		q.Sector = models.Sector(models.NormalizeTag(raw))
	}
	if values.Has("location") {
		raw := values.Get("location")
		filters.Location = &raw
		q.Location = models.Location(models.NormalizeTag(raw))
	}

	q.RemoteOnly = strings.EqualFold(strings.TrimSpace(values.Get("remote")), "true")
	filters.Remote = q.RemoteOnly

	return q, filters
}
