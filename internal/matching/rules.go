package matching

import (
	"fmt"

	"github.com/terra-clan/internship-engine/internal/models"
)

// Rule names, in evaluation order
const (
	RuleSectorInterest = "sector_interest"
	RuleSkillOverlap   = "skill_overlap"
	RuleEducationFit   = "education_fit"
	RuleEducationExact = "education_exact"
	RuleLocation       = "location"
)

const basicEligibilityReason = "meets basic eligibility criteria"

// profile is a candidate prepared for repeated scoring
type profile struct {
	education      models.EducationLevel
	educationKnown bool
	skills         map[models.Skill]struct{}
	interests      map[models.Sector]struct{}
	location       models.Location
	locationKnown  bool
}

func newProfile(c models.Candidate) *profile {
	p := &profile{
		education:      c.Education,
		educationKnown: c.Education.IsValid(),
		skills:         make(map[models.Skill]struct{}, len(c.Skills)),
		interests:      make(map[models.Sector]struct{}, len(c.Interests)),
		location:       c.Location,
		locationKnown:  c.Location.IsValid(),
	}
	for _, s := range c.Skills {
		p.skills[s] = struct{}{}
	}
	for _, s := range c.Interests {
		p.interests[s] = struct{}{}
	}
	return p
}

// rule is one row of the scoring table. match returns how many units apply
// (zero when the rule does not fire) and the reason text for the match.
type rule struct {
	name   string
	weight int
	gate   bool
	match  func(p *profile, in *models.Internship) (int, string)
}

func buildRules(w Weights) []rule {
	return []rule{
		{name: RuleSectorInterest, weight: w.SectorInterest, match: matchSectorInterest},
		{name: RuleSkillOverlap, weight: w.SkillOverlap, match: matchSkillOverlap},
		{name: RuleEducationFit, weight: w.EducationFit, gate: true, match: matchEducationFit},
		{name: RuleEducationExact, weight: w.EducationExact, match: matchEducationExact},
		{name: RuleLocation, weight: w.Location, match: matchLocation},
	}
}

func matchSectorInterest(p *profile, in *models.Internship) (int, string) {
	if _, ok := p.interests[in.Sector]; !ok {
		return 0, ""
	}
	return 1, fmt.Sprintf("matches your interest in %s", in.Sector)
}

func matchSkillOverlap(p *profile, in *models.Internship) (int, string) {
	n := 0
	counted := make(map[models.Skill]bool, len(in.RequiredSkills))
	for _, s := range in.RequiredSkills {
		if counted[s] {
			continue
		}
		counted[s] = true
		if _, ok := p.skills[s]; ok {
			n++
		}
	}
	if n == 0 {
		return 0, ""
	}
	return n, fmt.Sprintf("you have %d matching skill(s)", n)
}

func matchEducationFit(p *profile, in *models.Internship) (int, string) {
	if !p.education.Satisfies(in.RequiredEducation) {
		return 0, ""
	}
	return 1, "meets education requirement"
}

func matchEducationExact(p *profile, in *models.Internship) (int, string) {
	if !p.educationKnown || p.education != in.RequiredEducation {
		return 0, ""
	}
	return 1, "exact education level match"
}

// matchLocation never fires for an unknown candidate location, remote postings included
func matchLocation(p *profile, in *models.Internship) (int, string) {
	if !p.locationKnown {
		return 0, ""
	}
	switch {
	case p.location.IsRemote() && in.IsRemote:
		return 1, "remote-friendly"
	case p.location == in.Location:
		return 1, "available in your preferred location"
	case in.IsRemote:
		return 1, "remote-friendly"
	}
	return 0, ""
}
