package models

import "slices"

// Internship is a single catalog posting. Records are owned by the catalog and never mutated.
type Internship struct {
	ID                string         `json:"id" yaml:"id" validate:"required"`
	Title             string         `json:"title" yaml:"title" validate:"required"`
	Company           string         `json:"company" yaml:"company" validate:"required"`
	Description       string         `json:"description" yaml:"description"`
	Sector            Sector         `json:"sector" yaml:"sector" validate:"required,sector"`
	Location          Location       `json:"location" yaml:"location" validate:"required,location"`
	IsRemote          bool           `json:"is_remote" yaml:"is_remote"`
	RequiredEducation EducationLevel `json:"required_education" yaml:"required_education" validate:"required,education_requirement"`
	RequiredSkills    []Skill        `json:"required_skills" yaml:"required_skills" validate:"dive,skill"`
	Duration          string         `json:"duration" yaml:"duration"`
	Stipend           string         `json:"stipend" yaml:"stipend"`
}

// Clone returns a copy that shares no slices with the receiver
func (i Internship) Clone() Internship {
	i.RequiredSkills = slices.Clone(i.RequiredSkills)
	return i
}

// Candidate is one request's applicant profile
type Candidate struct {
	Education EducationLevel `json:"education"`
	Skills    []Skill        `json:"skills"`
	Interests []Sector       `json:"interests"`
	Location  Location       `json:"location"`
}

// MatchResult is an internship scored against a candidate
type MatchResult struct {
	Internship Internship `json:"internship"`
	Score      int        `json:"score"`
	Reason     string     `json:"match_reason"`
}
