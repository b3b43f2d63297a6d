package xp

import "math"

// MaxLevelDifference bounds the level difference used for XP lookups.
// Differences beyond it saturate.
const MaxLevelDifference = 4

// Contribution is one monster or hazard entry of an encounter.
//
// Level already includes any elite (+1) or weak (-1) adjustment.
type Contribution struct {
	Level   int
	Hazard  bool
	Complex bool
}

// XP returns the award for c against a party of the given level.
func (c Contribution) XP(partyLevel int) int {
	if c.Hazard {
		return HazardXP(partyLevel, c.Level, c.Complex)
	}
	return CreatureXP(partyLevel, c.Level)
}

// CreatureXP returns the XP awarded for defeating a creature of creatureLevel
// by a party of partyLevel.
//
// Postcondition: Returns one of 10, 15, 20, 30, 40, 60, 80, 120, 160.
func CreatureXP(partyLevel, creatureLevel int) int {
	if award, ok := xpForDifference(levelDifference(partyLevel, creatureLevel)); ok {
		return award
	}
	return 40
}

// HazardXP returns the XP awarded for overcoming a hazard. Simple hazards are
// worth one fifth of a creature of the same level.
func HazardXP(partyLevel, hazardLevel int, complex bool) int {
	base := CreatureXP(partyLevel, hazardLevel)
	if complex {
		return base
	}
	return base / 5
}

// levelDifference returns creatureLevel-partyLevel saturated to
// [-MaxLevelDifference, MaxLevelDifference]. The subtraction is only taken once
// the two levels are known to be within MaxLevelDifference of each other, so
// it cannot overflow for any pair of ints.
func levelDifference(partyLevel, creatureLevel int) int {
	if partyLevel > math.MinInt+MaxLevelDifference && creatureLevel <= partyLevel-MaxLevelDifference {
		return -MaxLevelDifference
	}
	if partyLevel < math.MaxInt-MaxLevelDifference && creatureLevel >= partyLevel+MaxLevelDifference {
		return MaxLevelDifference
	}
	return creatureLevel - partyLevel
}

// xpForDifference maps a clamped level difference to its award.
//
// Postcondition: ok is false only when diff lies outside [-4, 4], which
// levelDifference rules out.
func xpForDifference(diff int) (award int, ok bool) {
	switch diff {
	case -4:
		return 10, true
	case -3:
		return 15, true
	case -2:
		return 20, true
	case -1:
		return 30, true
	case 0:
		return 40, true
	case 1:
		return 60, true
	case 2:
		return 80, true
	case 3:
		return 120, true
	case 4:
		return 160, true
	}
	return 0, false
}
