package xp

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidParty is returned by Evaluate for a party outside the rules' domain.
var ErrInvalidParty = errors.New("invalid party")

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Party describes the characters an encounter is measured against.
type Party struct {
	Level int `yaml:"level" validate:"min=1,max=30"`
	Size  int `yaml:"size" validate:"min=1"`
}

// Validate checks that p can be classified.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidParty.
func (p Party) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParty, err)
	}
	if err := ThresholdsFor(p.Size).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParty, err)
	}
	return nil
}

// Budget is the accumulated XP of an encounter at two normalization stages.
type Budget struct {
	// Raw is the plain sum of every contribution.
	Raw int
	// Adjusted is Raw with the party-size correction removed, i.e. the XP the
	// encounter would be worth to a party of four.
	Adjusted int
}

// NewBudget normalizes raw XP for partySize.
func NewBudget(raw, partySize int) Budget {
	return Budget{Raw: raw, Adjusted: AdjustForPartySize(raw, partySize)}
}

// Evaluation is the outcome of measuring an encounter against a party.
type Evaluation struct {
	Party      Party
	Budget     Budget
	Difficulty Difficulty
	Reward     Reward
}

// Evaluate sums contributions for party and classifies the result.
//
// Precondition: none; p is validated here.
// Postcondition: Returns an Evaluation with Difficulty == Classify(Budget.Raw, party.Size),
// or an error wrapping ErrInvalidParty.
func Evaluate(party Party, contributions []Contribution) (Evaluation, error) {
	if err := party.Validate(); err != nil {
		return Evaluation{}, err
	}
	raw := 0
	for _, c := range contributions {
		raw += c.XP(party.Level)
	}
	band := Classify(raw, party.Size)
	return Evaluation{
		Party:      party,
		Budget:     NewBudget(raw, party.Size),
		Difficulty: band,
		Reward:     RewardFor(party.Level, band),
	}, nil
}
