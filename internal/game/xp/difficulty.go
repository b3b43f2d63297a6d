// Package xp implements the encounter experience rules: per-creature XP awards,
// party-size adjusted difficulty classification, and suggested rewards.
//
// Every function in this package is pure and safe for concurrent use.
package xp

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty is the qualitative hardness rating of an encounter.
//
// Values are totally ordered: Trivial < Low < Moderate < Severe < Extreme.
type Difficulty int

const (
	Trivial Difficulty = iota
	Low
	Moderate
	Severe
	Extreme
)

// Difficulties lists every band in ascending order of severity.
var Difficulties = []Difficulty{Trivial, Low, Moderate, Severe, Extreme}

var difficultyNames = [...]string{
	Trivial:  "Trivial",
	Low:      "Low",
	Moderate: "Moderate",
	Severe:   "Severe",
	Extreme:  "Extreme",
}

// Valid reports whether d is one of the five defined bands.
func (d Difficulty) Valid() bool {
	return d >= Trivial && d <= Extreme
}

// String returns the band name, e.g. "Moderate".
func (d Difficulty) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty returns the band named s, case-insensitively.
//
// Postcondition: Returns a valid Difficulty or a non-nil error.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, difficultyNames[d]) {
			return d, nil
		}
	}
	return Trivial, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalYAML encodes d as its band name.
func (d Difficulty) MarshalYAML() (interface{}, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", d)
	}
	return d.String(), nil
}

// UnmarshalYAML decodes a band name.
func (d *Difficulty) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// baseThreshold is the XP at which a four-player party reaches the band.
//
// Precondition: d.Valid().
func baseThreshold(d Difficulty) int {
	switch d {
	case Trivial:
		return 40
	case Low:
		return 60
	case Moderate:
		return 80
	case Severe:
		return 120
	case Extreme:
		return 160
	}
	panic(fmt.Sprintf("xp: baseThreshold precondition violated: %s", d))
}

// perPlayerIncrement is how far the band's threshold moves for each player
// above (or below) four.
//
// Precondition: d.Valid().
func perPlayerIncrement(d Difficulty) int {
	switch d {
	case Trivial:
		return 10
	case Low:
		return 20
	case Moderate:
		return 20
	case Severe:
		return 30
	case Extreme:
		return 40
	}
	panic(fmt.Sprintf("xp: perPlayerIncrement precondition violated: %s", d))
}

// BaseParty is the party size the base thresholds are written for.
const BaseParty = 4

// maxExactOffset bounds the party-size offset for which every threshold fits
// in an int on any platform. Larger offsets are handled with big.Int.
const maxExactOffset = 1 << 24

// sizeOffset returns partySize-BaseParty when it is small enough for plain
// int threshold arithmetic.
func sizeOffset(partySize int) (off int, ok bool) {
	if partySize < BaseParty-maxExactOffset || partySize > BaseParty+maxExactOffset {
		return 0, false
	}
	return partySize - BaseParty, true
}
