package models

import "strings"

// Sector is an internship industry tag
type Sector string

const (
	SectorTechnology    Sector = "technology"
	SectorHealthcare    Sector = "healthcare"
	SectorEducation     Sector = "education"
	SectorFinance       Sector = "finance"
	SectorMarketing     Sector = "marketing"
	SectorAgriculture   Sector = "agriculture"
	SectorManufacturing Sector = "manufacturing"
	SectorGovernment    Sector = "government"
)

// Sectors lists every known sector tag
var Sectors = []Sector{
	SectorTechnology,
	SectorHealthcare,
	SectorEducation,
	SectorFinance,
	SectorMarketing,
	SectorAgriculture,
	SectorManufacturing,
	SectorGovernment,
}

// IsValid reports whether s is a known sector tag
func (s Sector) IsValid() bool {
	for _, known := range Sectors {
		if s == known {
			return true
		}
	}
	return false
}

// Location is a city tag or the remote sentinel
type Location string

const (
	LocationRemote    Location = "remote"
	LocationMumbai    Location = "mumbai"
	LocationDelhi     Location = "delhi"
	LocationBangalore Location = "bangalore"
	LocationChennai   Location = "chennai"
	LocationHyderabad Location = "hyderabad"
	LocationPune      Location = "pune"
	LocationKolkata   Location = "kolkata"
	LocationAhmedabad Location = "ahmedabad"
	LocationJaipur    Location = "jaipur"
	LocationLucknow   Location = "lucknow"
)

// Locations lists every known location tag, remote first
var Locations = []Location{
	LocationRemote,
	LocationMumbai,
	LocationDelhi,
	LocationBangalore,
	LocationChennai,
	LocationHyderabad,
	LocationPune,
	LocationKolkata,
	LocationAhmedabad,
	LocationJaipur,
	LocationLucknow,
}

// IsValid reports whether l is a known location tag
func (l Location) IsValid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// IsRemote returns true for the remote sentinel
func (l Location) IsRemote() bool {
	return l == LocationRemote
}

// EducationLevel is a position on the ordered education scale, or "any"
type EducationLevel string

const (
	EducationAny           EducationLevel = "any"
	EducationTenth         EducationLevel = "10th"
	EducationTwelfth       EducationLevel = "12th"
	EducationDiploma       EducationLevel = "diploma"
	EducationUndergraduate EducationLevel = "undergraduate"
	EducationPostgraduate  EducationLevel = "postgraduate"
)

// educationRank orders the concrete levels; "any" has no rank
var educationRank = map[EducationLevel]int{
	EducationTenth:         1,
	EducationTwelfth:       2,
	EducationDiploma:       3,
	EducationUndergraduate: 4,
	EducationPostgraduate:  5,
}

// EducationLevels lists the concrete levels in ascending order
var EducationLevels = []EducationLevel{
	EducationTenth,
	EducationTwelfth,
	EducationDiploma,
	EducationUndergraduate,
	EducationPostgraduate,
}

// Rank returns the level's position on the scale and false for "any" or unknown values
func (e EducationLevel) Rank() (int, bool) {
	r, ok := educationRank[e]
	return r, ok
}

// IsValid reports whether e is a concrete level
func (e EducationLevel) IsValid() bool {
	_, ok := educationRank[e]
	return ok
}

// IsValidRequirement reports whether e may appear as an internship requirement
func (e EducationLevel) IsValidRequirement() bool {
	return e == EducationAny || e.IsValid()
}

// Satisfies reports whether a candidate at level e passes a requirement of req.
// Unknown candidate levels only satisfy "any".
func (e EducationLevel) Satisfies(req EducationLevel) bool {
	if req == EducationAny {
		return true
	}
	have, ok := e.Rank()
	if !ok {
		return false
	}
	need, ok := req.Rank()
	if !ok {
		return false
	}
	return have >= need
}

// Skill is a capability tag
type Skill string

const (
	SkillComputer      Skill = "computer"
	SkillCommunication Skill = "communication"
	SkillAccounting    Skill = "accounting"
	SkillProgramming   Skill = "programming"
	SkillDataEntry     Skill = "data_entry"
	SkillDesign        Skill = "design"
	SkillMarketing     Skill = "marketing"
	SkillSales         Skill = "sales"
	SkillTeaching      Skill = "teaching"
	SkillResearch      Skill = "research"
	SkillWriting       Skill = "writing"
	SkillHealthcare    Skill = "healthcare"
	SkillAgriculture   Skill = "agriculture"
	SkillMechanical    Skill = "mechanical"
	SkillElectrical    Skill = "electrical"
	SkillFinance       Skill = "finance"
)

// Skills lists every known skill tag
var Skills = []Skill{
	SkillComputer,
	SkillCommunication,
	SkillAccounting,
	SkillProgramming,
	SkillDataEntry,
	SkillDesign,
	SkillMarketing,
	SkillSales,
	SkillTeaching,
	SkillResearch,
	SkillWriting,
	SkillHealthcare,
	SkillAgriculture,
	SkillMechanical,
	SkillElectrical,
	SkillFinance,
}

// IsValid reports whether s is a known skill tag
func (s Skill) IsValid() bool {
	for _, known := range Skills {
		if s == known {
			return true
		}
	}
	return false
}

// NormalizeTag trims and lower-cases a tag received at a system boundary
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
