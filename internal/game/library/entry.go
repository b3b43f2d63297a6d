// Package library holds the reference entities an encounter is assembled from:
// creatures, hazards, items, classes and spells.
package library

import (
	"github.com/cory-johannsen/tracker/internal/game/xp"
)

// Kind discriminates the entry variants.
type Kind string

const (
	KindCreature Kind = "creature"
	KindHazard   Kind = "hazard"
	KindItem     Kind = "item"
	KindClass    Kind = "class"
	KindSpell    Kind = "spell"
)

// Kinds lists every entry kind.
var Kinds = []Kind{KindCreature, KindHazard, KindItem, KindClass, KindSpell}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCreature, KindHazard, KindItem, KindClass, KindSpell:
		return true
	}
	return false
}

// Header holds the fields shared by every entry kind.
type Header struct {
	ID          string   `yaml:"id" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	Rarity      string   `yaml:"rarity" validate:"omitempty,oneof=common uncommon rare unique"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url" validate:"omitempty,url"`
	Description string   `yaml:"description"`
}

// Meta returns the shared fields.
func (h Header) Meta() Header { return h }

// Entry is one library entity. The set of implementations is closed:
// *Creature, *Hazard, *Item, *Class and *Spell.
type Entry interface {
	Kind() Kind
	Meta() Header
	isEntry()
}

// Creature is a monster or NPC that can be placed in an encounter.
type Creature struct {
	Header    `yaml:",inline"`
	Level     int    `yaml:"level" validate:"min=-1,max=30"`
	Size      string `yaml:"size" validate:"omitempty,oneof=tiny small medium large huge gargantuan"`
	Alignment string `yaml:"alignment" validate:"omitempty,oneof=lg ng cg ln n cn le ne ce"`
}

// Hazard is a trap, haunt or environmental danger.
type Hazard struct {
	Header  `yaml:",inline"`
	Level   int    `yaml:"level" validate:"min=-1,max=30"`
	Complex bool   `yaml:"complex"`
	Type    string `yaml:"type" validate:"omitempty,oneof=trap haunt environmental"`
}

// Item is a piece of treasure.
type Item struct {
	Header     `yaml:",inline"`
	Level      int         `yaml:"level" validate:"min=0,max=30"`
	Price      xp.Currency `yaml:"price"`
	Consumable bool        `yaml:"consumable"`
}

// Class is a playable character class.
type Class struct {
	Header     `yaml:",inline"`
	HitPoints  int      `yaml:"hp" validate:"min=1"`
	Traditions []string `yaml:"traditions"`
}

// Spell is a castable spell.
type Spell struct {
	Header     `yaml:",inline"`
	Rank       int      `yaml:"rank" validate:"min=0,max=10"`
	Traditions []string `yaml:"traditions" validate:"dive,oneof=arcane divine occult primal"`
}

func (*Creature) Kind() Kind { return KindCreature }
func (*Hazard) Kind() Kind   { return KindHazard }
func (*Item) Kind() Kind     { return KindItem }
func (*Class) Kind() Kind    { return KindClass }
func (*Spell) Kind() Kind    { return KindSpell }

func (*Creature) isEntry() {}
func (*Hazard) isEntry()   {}
func (*Item) isEntry()     {}
func (*Class) isEntry()    {}
func (*Spell) isEntry()    {}

// Contribution returns the creature's XP contribution after adjusting its
// level by adjustment (+1 elite, -1 weak, 0 normal).
func (c *Creature) Contribution(adjustment int) xp.Contribution {
	return xp.Contribution{Level: c.Level + adjustment}
}

// Contribution returns the hazard's XP contribution.
func (h *Hazard) Contribution() xp.Contribution {
	return xp.Contribution{Level: h.Level, Hazard: true, Complex: h.Complex}
}
