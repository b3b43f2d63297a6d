package encounter

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tracker/internal/game/library"
	"github.com/cory-johannsen/tracker/internal/game/xp"
)

// Result is a scored draft.
type Result struct {
	DraftID uuid.UUID
	Type    Type

	// Evaluation is zero for accomplishments.
	Evaluation xp.Evaluation
	// ExtraExperience is copied from the draft.
	ExtraExperience int
	// TotalExperience is the party-size adjusted XP plus ExtraExperience,
	// the value a finished encounter is recorded with.
	TotalExperience int
	// FinalDifficulty re-derives the band from TotalExperience once extra
	// experience is removed, measured against the four-player thresholds.
	// It can differ from Evaluation.Difficulty, which measures raw XP against
	// the party's own thresholds: a six-player party facing 220 raw XP is
	// Severe, while its adjusted 160 is Extreme for four players.
	FinalDifficulty xp.Difficulty

	// Treasure is the treasure currency plus the price of every treasure item.
	Treasure      xp.Currency
	TreasureItems int
}

// Scorer resolves drafts against a library and applies the experience rules.
//
// A Scorer holds no mutable state and is safe for concurrent use.
type Scorer struct {
	lib    *library.Registry
	logger *zap.Logger
}

// NewScorer returns a Scorer backed by lib.
//
// Precondition: lib must be non-nil. A nil logger discards all output.
func NewScorer(lib *library.Registry, logger *zap.Logger) *Scorer {
	if lib == nil {
		panic("encounter.NewScorer: precondition violated: lib must be non-nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{lib: lib, logger: logger}
}

// Contributions resolves the enemies and hazards of d into XP contributions,
// applying each enemy's elite or weak adjustment.
//
// Postcondition: Returns one contribution per enemy followed by one per hazard,
// or an error wrapping library.ErrUnknownEntry for the first unresolved ID.
func (s *Scorer) Contributions(d Draft) ([]xp.Contribution, error) {
	out := make([]xp.Contribution, 0, len(d.Enemies)+len(d.Hazards))
	for _, e := range d.Enemies {
		c, ok := s.lib.Creature(e.CreatureID)
		if !ok {
			return nil, fmt.Errorf("creature %q: %w", e.CreatureID, library.ErrUnknownEntry)
		}
		out = append(out, c.Contribution(e.Adjustment))
	}
	for _, id := range d.Hazards {
		h, ok := s.lib.Hazard(id)
		if !ok {
			return nil, fmt.Errorf("hazard %q: %w", id, library.ErrUnknownEntry)
		}
		out = append(out, h.Contribution())
	}
	return out, nil
}

// Treasure totals the treasure currency and item prices of d.
func (s *Scorer) Treasure(d Draft) (xp.Currency, error) {
	total := d.TreasureCurrency.Normalize()
	for _, id := range d.TreasureItems {
		it, ok := s.lib.Item(id)
		if !ok {
			return xp.Currency{}, fmt.Errorf("item %q: %w", id, library.ErrUnknownEntry)
		}
		total = total.Add(it.Price)
	}
	return total, nil
}

// Score validates d, resolves it against the library and computes its XP,
// difficulty, suggested reward and treasure value.
//
// Postcondition: Returns a Result, or an error wrapping ErrInvalidDraft,
// xp.ErrInvalidParty or library.ErrUnknownEntry.
func (s *Scorer) Score(d Draft) (Result, error) {
	if err := d.Validate(); err != nil {
		return Result{}, err
	}
	treasure, err := s.Treasure(d)
	if err != nil {
		return Result{}, fmt.Errorf("scoring %q: %w", d.Name, err)
	}
	res := Result{
		DraftID:         d.ID,
		Type:            d.Type,
		ExtraExperience: d.ExtraExperience,
		Treasure:        treasure,
		TreasureItems:   len(d.TreasureItems),
	}

	if d.Type != TypeAccomplishment {
		contribs, err := s.Contributions(d)
		if err != nil {
			return Result{}, fmt.Errorf("scoring %q: %w", d.Name, err)
		}
		ev, err := xp.Evaluate(d.Party, contribs)
		if err != nil {
			return Result{}, fmt.Errorf("scoring %q: %w", d.Name, err)
		}
		res.Evaluation = ev
	}

	res.TotalExperience = res.Evaluation.Budget.Adjusted + d.ExtraExperience
	res.FinalDifficulty = xp.ClassifyFinal(res.TotalExperience, d.ExtraExperience)

	s.logger.Debug("scored encounter",
		zap.String("draft_id", d.ID.String()),
		zap.String("name", d.Name),
		zap.String("type", string(d.Type)),
		zap.Int("raw_xp", res.Evaluation.Budget.Raw),
		zap.Int("adjusted_xp", res.Evaluation.Budget.Adjusted),
		zap.Int("total_xp", res.TotalExperience),
		zap.Stringer("difficulty", res.Evaluation.Difficulty),
		zap.Stringer("final_difficulty", res.FinalDifficulty),
		zap.Int("treasure_cp", res.Treasure.InCopper()),
	)
	return res, nil
}
