// Package matching scores, ranks and filters internships for a candidate.
package matching

import (
	"strings"

	"github.com/terra-clan/internship-engine/internal/models"
)

// Score is the outcome of matching one candidate against one internship
type Score struct {
	Points   int
	Reason   string
	Eligible bool
	Matched  []string // names of the rules that fired, in table order
}

// Scorer applies the rule table. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	rules []rule
}

// NewScorer builds a scorer from the given weights
func NewScorer(w Weights) *Scorer {
	return &Scorer{rules: buildRules(w)}
}

// Score matches a single candidate against a single internship
func (s *Scorer) Score(c models.Candidate, in models.Internship) Score {
	return s.score(newProfile(c), &in)
}

func (s *Scorer) score(p *profile, in *models.Internship) Score {
	// The education gate disqualifies before any other rule is summed
	if !p.education.Satisfies(in.RequiredEducation) {
		return Score{}
	}

	result := Score{Eligible: true}
	var reasons []string
	onlyGate := true

	for _, r := range s.rules {
		units, reason := r.match(p, in)
		if units == 0 {
			continue
		}
		result.Points += r.weight * units
		result.Matched = append(result.Matched, r.name)
		reasons = append(reasons, reason)
		if !r.gate {
			onlyGate = false
		}
	}

	if onlyGate {
		result.Reason = basicEligibilityReason
	} else {
		result.Reason = strings.Join(reasons, ", ")
	}
	return result
}
