package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared across constructors; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// BasicProfile is the immutable, user-provided academic context.
// It is set once at session start and never mutated afterwards.
type BasicProfile struct {
	CollegeTier      int      `json:"college_tier" validate:"min=1,max=3"`
	YearOfStudy      int      `json:"year_of_study" validate:"min=1,max=5"`
	TimeAvailability int      `json:"time_availability" validate:"min=0"` // hours per week
	Constraints      []string `json:"constraints,omitempty"`
}

// NewBasicProfile validates and constructs a BasicProfile.
// Out-of-range input fails fast; values are never silently clamped.
func NewBasicProfile(tier, year, hoursPerWeek int, constraints []string) (*BasicProfile, error) {
	p := &BasicProfile{
		CollegeTier:      tier,
		YearOfStudy:      year,
		TimeAvailability: hoursPerWeek,
		Constraints:      constraints,
	}
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid basic profile: %w", err)
	}
	return p, nil
}
