// Package match computes a weighted multi-factor score between a parsed
// resume and a parsed job, with gap and strength reporting.
package match

// Weights are the four factor weights. They are applied literally: a set
// that does not sum to 1.0 is never renormalized.
type Weights struct {
	Skills     float64 `mapstructure:"skills" json:"skills"`
	Experience float64 `mapstructure:"experience" json:"experience"`
	Education  float64 `mapstructure:"education" json:"education"`
	Other      float64 `mapstructure:"other" json:"other"`
}

// DefaultWeights returns the standard 0.4/0.3/0.2/0.1 split.
func DefaultWeights() Weights {
	return Weights{Skills: 0.4, Experience: 0.3, Education: 0.2, Other: 0.1}
}

// Policy names every tunable constant of the scoring algorithm so thresholds
// are visible and independently testable rather than inline magic numbers.
type Policy struct {
	// Skills factor: required coverage scales to RequiredPoints, preferred
	// coverage to PreferredPoints.
	RequiredPoints  float64
	PreferredPoints float64

	// Experience factor.
	ExperienceBase     float64
	MeetYearsBonus     float64
	ExceedYearsBonus   float64
	ExceedYearsFactor  float64
	ShortfallPenalty   float64
	LevelExactBonus    float64
	LevelAdjacentBonus float64

	// Education factor.
	EducationBase   float64
	DegreeBonus     float64
	FieldBonus      float64
	NoEducationBase float64

	// Other factor.
	OtherBase          float64
	ProjectBonus       float64
	CertificationBonus float64
	SummaryBonus       float64
	SummaryMinLen      int
	ContactBonus       float64

	// Category label thresholds, checked in descending order.
	ExcellentAt float64
	StrongAt    float64
	GoodAt      float64
	ModerateAt  float64
}

// DefaultPolicy returns the standard scoring constants.
func DefaultPolicy() Policy {
	return Policy{
		RequiredPoints:  70,
		PreferredPoints: 30,

		ExperienceBase:     50,
		MeetYearsBonus:     30,
		ExceedYearsBonus:   10,
		ExceedYearsFactor:  1.5,
		ShortfallPenalty:   30,
		LevelExactBonus:    20,
		LevelAdjacentBonus: 10,

		EducationBase:   50,
		DegreeBonus:     40,
		FieldBonus:      10,
		NoEducationBase: 30,

		OtherBase:          50,
		ProjectBonus:       15,
		CertificationBonus: 15,
		SummaryBonus:       10,
		SummaryMinLen:      100,
		ContactBonus:       10,

		ExcellentAt: 90,
		StrongAt:    80,
		GoodAt:      70,
		ModerateAt:  60,
	}
}

// Category labels for the aggregate score.
const (
	CategoryExcellent = "Excellent Match"
	CategoryStrong    = "Strong Match"
	CategoryGood      = "Good Match"
	CategoryModerate  = "Moderate Match"
	CategoryWeak      = "Weak Match"
)

func (p Policy) category(overall float64) string {
	switch {
	case overall >= p.ExcellentAt:
		return CategoryExcellent
	case overall >= p.StrongAt:
		return CategoryStrong
	case overall >= p.GoodAt:
		return CategoryGood
	case overall >= p.ModerateAt:
		return CategoryModerate
	default:
		return CategoryWeak
	}
}
