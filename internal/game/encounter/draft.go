// Package encounter assembles encounter drafts from library entries and scores
// them with the experience rules.
package encounter

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/tracker/internal/game/xp"
)

// ErrInvalidDraft wraps every draft validation failure.
var ErrInvalidDraft = errors.New("invalid encounter draft")

var validate = validator.New()

// Status is the lifecycle state of an encounter.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPrepared Status = "prepared"
	StatusArchived Status = "archived"
	StatusSuccess  Status = "success"
	StatusFailure  Status = "failure"
)

// Type separates combat encounters from flat-award ones.
type Type string

const (
	TypeCombat         Type = "combat"
	TypeSubsystem      Type = "subsystem"
	TypeAccomplishment Type = "accomplishment"
)

// Level adjustments applied to an enemy's nominal level.
const (
	Weak   = -1
	Normal = 0
	Elite  = 1
)

// Enemy places one library creature in a draft.
type Enemy struct {
	CreatureID string `yaml:"creature" validate:"required"`
	// Adjustment is Weak, Normal or Elite.
	Adjustment int `yaml:"adjustment" validate:"min=-1,max=1"`
}

// Draft is an encounter under construction. It is a plain value: whoever holds
// it (a request, a CLI run, a test) owns it, and nothing caches it globally.
type Draft struct {
	ID          uuid.UUID `yaml:"id"`
	Name        string    `yaml:"name" validate:"required"`
	Description string    `yaml:"description"`
	Type        Type      `yaml:"type" validate:"oneof=combat subsystem accomplishment"`
	Status      Status    `yaml:"status" validate:"oneof=draft prepared archived success failure"`

	// Party is validated separately; accomplishments do not need one.
	Party xp.Party `yaml:"party" validate:"-"`

	Enemies          []Enemy     `yaml:"enemies" validate:"dive"`
	Hazards          []string    `yaml:"hazards" validate:"dive,required"`
	TreasureItems    []string    `yaml:"treasure_items" validate:"dive,required"`
	TreasureCurrency xp.Currency `yaml:"treasure_currency"`
	// ExtraExperience is awarded on top of the encounter but never counts
	// toward its difficulty.
	ExtraExperience int `yaml:"extra_experience" validate:"min=0"`
}

// NewDraft returns an empty combat draft with a fresh ID.
//
// Postcondition: ID is non-nil; Status is StatusDraft.
func NewDraft(name string, party xp.Party) Draft {
	return Draft{
		ID:     uuid.New(),
		Name:   name,
		Type:   TypeCombat,
		Status: StatusDraft,
		Party:  party,
	}
}

// NewAccomplishment returns a prepared accomplishment worth the flat XP of grade.
//
// Postcondition: ExtraExperience == xp.ExperienceForAccomplishment(grade).
func NewAccomplishment(name string, grade xp.Accomplishment) Draft {
	return Draft{
		ID:              uuid.New(),
		Name:            name,
		Type:            TypeAccomplishment,
		Status:          StatusPrepared,
		ExtraExperience: xp.ExperienceForAccomplishment(grade),
	}
}

// AddEnemy appends a creature with the given level adjustment.
func (d *Draft) AddEnemy(creatureID string, adjustment int) {
	d.Enemies = append(d.Enemies, Enemy{CreatureID: creatureID, Adjustment: adjustment})
}

// AddHazard appends a hazard.
func (d *Draft) AddHazard(hazardID string) {
	d.Hazards = append(d.Hazards, hazardID)
}

// AddTreasure appends a treasure item.
func (d *Draft) AddTreasure(itemID string) {
	d.TreasureItems = append(d.TreasureItems, itemID)
}

// Validate checks the draft's own fields and, for anything but an
// accomplishment, its party.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidDraft.
func (d Draft) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	if d.Type == TypeAccomplishment {
		if len(d.Enemies) > 0 || len(d.Hazards) > 0 {
			return fmt.Errorf("%w: accomplishment %q must not have enemies or hazards", ErrInvalidDraft, d.Name)
		}
		return nil
	}
	if err := d.Party.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	return nil
}

// draftFile is the on-disk shape of a draft; accomplishment grades are
// accepted by name and converted to extra experience.
type draftFile struct {
	Draft          `yaml:",inline"`
	Accomplishment xp.Accomplishment `yaml:"accomplishment"`
}

// DecodeDraft parses a YAML draft. A missing ID becomes a fresh UUID, a
// missing type TypeCombat, a missing status StatusPrepared, and a missing
// party is replaced by fallback.
//
// Postcondition: Returns a Draft that passed Validate, or a non-nil error.
func DecodeDraft(data []byte, fallback xp.Party) (Draft, error) {
	var f draftFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Draft{}, fmt.Errorf("parsing draft: %w", err)
	}
	d := f.Draft
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Type == "" {
		d.Type = TypeCombat
	}
	if d.Status == "" {
		d.Status = StatusPrepared
	}
	if d.Party == (xp.Party{}) {
		d.Party = fallback
	}
	if f.Accomplishment != xp.NoAccomplishment {
		d.Type = TypeAccomplishment
		d.ExtraExperience += xp.ExperienceForAccomplishment(f.Accomplishment)
	}
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// LoadDraft reads and decodes a draft file, falling back to the given party
// when the file names none.
//
// Precondition: path must name a readable file.
func LoadDraft(path string, fallback xp.Party) (Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := DecodeDraft(data, fallback)
	if err != nil {
		return Draft{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
