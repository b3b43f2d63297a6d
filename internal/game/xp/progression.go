package xp

// ExperiencePerLevel is the XP a character needs to advance one level.
const ExperiencePerLevel = 1000

// Progression describes how far accumulated XP carries a party.
type Progression struct {
	// LevelsGained is the number of full levels the XP pays for.
	LevelsGained int
	// ExperienceThisLevel is the XP banked toward the next level.
	ExperienceThisLevel int
	// Fraction is ExperienceThisLevel / ExperiencePerLevel.
	Fraction float64
}

// Progress splits totalXP into whole levels and progress toward the next.
//
// Precondition: totalXP >= 0.
// Postcondition: LevelsGained*ExperiencePerLevel + ExperienceThisLevel == totalXP.
func Progress(totalXP int) Progression {
	this := totalXP % ExperiencePerLevel
	return Progression{
		LevelsGained:        totalXP / ExperiencePerLevel,
		ExperienceThisLevel: this,
		Fraction:            float64(this) / ExperiencePerLevel,
	}
}
