package types

import "github.com/go-playground/validator/v10"

// Default component weights. They sum to 1 so the overall score reads as a
// calibrated percentage; callers supplying their own weights are responsible
// for that calibration.
const (
	DefaultKeywordWeight    = 0.20
	DefaultSkillWeight      = 0.35
	DefaultSemanticWeight   = 0.20
	DefaultExperienceWeight = 0.15
	DefaultEducationWeight  = 0.10
)

var weightValidator = validator.New()

// WeightConfig assigns a non-negative weight to each scoring component. The
// engine does not normalize weights; it sums the weighted terms and clamps.
type WeightConfig struct {
	Keyword    float64 `json:"keyword" validate:"gte=0"`
	Skill      float64 `json:"skill" validate:"gte=0"`
	Semantic   float64 `json:"semantic" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Education  float64 `json:"education" validate:"gte=0"`
}

// DefaultWeights returns the standard weight configuration.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Keyword:    DefaultKeywordWeight,
		Skill:      DefaultSkillWeight,
		Semantic:   DefaultSemanticWeight,
		Experience: DefaultExperienceWeight,
		Education:  DefaultEducationWeight,
	}
}

// Validate rejects negative weights.
func (w WeightConfig) Validate() error {
	return weightValidator.Struct(w)
}

// IsZero reports whether no weight has been set at all, which the engine
// treats as "use defaults".
func (w WeightConfig) IsZero() bool {
	return w == WeightConfig{}
}
