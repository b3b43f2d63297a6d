package xp

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Accomplishment grades a non-combat achievement worth a flat XP award.
type Accomplishment int

const (
	NoAccomplishment Accomplishment = iota
	MinorAccomplishment
	ModerateAccomplishment
	MajorAccomplishment
)

// String returns the lower-case grade name; NoAccomplishment is "".
func (a Accomplishment) String() string {
	switch a {
	case NoAccomplishment:
		return ""
	case MinorAccomplishment:
		return "minor"
	case ModerateAccomplishment:
		return "moderate"
	case MajorAccomplishment:
		return "major"
	}
	return fmt.Sprintf("Accomplishment(%d)", int(a))
}

// ParseAccomplishment parses "minor", "moderate" or "major". The empty string
// parses as NoAccomplishment.
func ParseAccomplishment(s string) (Accomplishment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoAccomplishment, nil
	case "minor":
		return MinorAccomplishment, nil
	case "moderate":
		return ModerateAccomplishment, nil
	case "major":
		return MajorAccomplishment, nil
	}
	return NoAccomplishment, fmt.Errorf("unknown accomplishment %q", s)
}

// UnmarshalYAML decodes a grade name.
func (a *Accomplishment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAccomplishment(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ExperienceForAccomplishment returns the flat XP for a.
//
// Postcondition: Returns 0, 10, 30 or 80; an undefined grade is worth 0.
func ExperienceForAccomplishment(a Accomplishment) int {
	switch a {
	case MinorAccomplishment:
		return 10
	case ModerateAccomplishment:
		return 30
	case MajorAccomplishment:
		return 80
	}
	return 0
}
