package xp

import (
	"fmt"
	"math"
)

// Reward is the suggested award for an encounter of a given band.
type Reward struct {
	XP       int
	Currency Currency
}

// currencyMultiplier scales the per-level base currency by band.
//
// Precondition: d.Valid().
func currencyMultiplier(d Difficulty) float64 {
	switch d {
	case Trivial:
		return 0.5
	case Low:
		return 1
	case Moderate:
		return 2
	case Severe:
		return 4
	case Extreme:
		return 8
	}
	panic(fmt.Sprintf("xp: currencyMultiplier precondition violated: %s", d))
}

// RewardFor suggests the XP and currency for an encounter of band at level.
//
// The currency base doubles with every level: 2^(level-1) gold, scaled by
// 0.5/1/2/4/8 for Trivial through Extreme. The gold value is split into
// denominations by truncation, never rounding, so the result can be slightly
// below the exact amount when the scalar has more than two decimal places.
//
// Precondition: band.Valid(); level < 60 so the gold amount fits in an int.
// Postcondition: Currency is normalized.
func RewardFor(level int, band Difficulty) Reward {
	if !band.Valid() {
		panic(fmt.Sprintf("xp: RewardFor precondition violated: %s", band))
	}
	total := math.Pow(2, float64(level-1)) * currencyMultiplier(band)
	return Reward{
		XP:       baseThreshold(band),
		Currency: truncateGold(total),
	}
}

// truncateGold decomposes a gold amount into gold, silver and copper,
// discarding anything below one copper.
func truncateGold(total float64) Currency {
	gold, frac := math.Modf(total)
	silver := math.Floor(frac * 10)
	_, tenthFrac := math.Modf(total * 10)
	copper := math.Floor(tenthFrac * 10)
	return Currency{
		Gold:   int(gold),
		Silver: int(silver),
		Copper: int(copper),
	}
}
