package xp

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrNonMonotonicThresholds reports a party size whose thresholds do not rise
// with band severity. Such a party cannot be classified meaningfully.
var ErrNonMonotonicThresholds = errors.New("difficulty thresholds are not monotonic")

// Thresholds holds the XP needed to reach each band for one party size.
type Thresholds struct {
	partySize int
	values    [len(difficultyNames)]int
}

// ThresholdsFor returns the party-size adjusted XP threshold of every band.
//
// Postcondition: For(d) == base(d) + increment(d)*(partySize-4) for every band d,
// saturated to [math.MinInt, math.MaxInt].
func ThresholdsFor(partySize int) Thresholds {
	t := Thresholds{partySize: partySize}
	for _, d := range Difficulties {
		t.values[d] = threshold(d, partySize)
	}
	return t
}

// threshold returns band d's threshold for partySize, saturated to the int range.
func threshold(d Difficulty, partySize int) int {
	if off, ok := sizeOffset(partySize); ok {
		return baseThreshold(d) + perPlayerIncrement(d)*off
	}
	return saturate(wideThreshold(d, partySize))
}

// wideThreshold computes band d's threshold without overflow.
func wideThreshold(d Difficulty, partySize int) *big.Int {
	w := big.NewInt(int64(partySize))
	w.Sub(w, big.NewInt(BaseParty))
	w.Mul(w, big.NewInt(int64(perPlayerIncrement(d))))
	return w.Add(w, big.NewInt(int64(baseThreshold(d))))
}

var (
	maxIntBig = big.NewInt(math.MaxInt)
	minIntBig = big.NewInt(math.MinInt)
)

func saturate(w *big.Int) int {
	switch {
	case w.Cmp(maxIntBig) > 0:
		return math.MaxInt
	case w.Cmp(minIntBig) < 0:
		return math.MinInt
	}
	return int(w.Int64())
}

// meets reports whether rawXP reaches band d's threshold for partySize. The
// threshold is compared as a whole; rawXP is never shifted, so the test cannot
// wrap around for any rawXP or partySize.
func meets(rawXP, partySize int, d Difficulty) bool {
	if off, ok := sizeOffset(partySize); ok {
		return rawXP >= baseThreshold(d)+perPlayerIncrement(d)*off
	}
	return big.NewInt(int64(rawXP)).Cmp(wideThreshold(d, partySize)) >= 0
}

// PartySize returns the party size the thresholds were computed for.
func (t Thresholds) PartySize() int { return t.partySize }

// For returns the threshold of band d.
//
// Precondition: d.Valid().
func (t Thresholds) For(d Difficulty) int {
	if !d.Valid() {
		panic(fmt.Sprintf("xp: Thresholds.For precondition violated: %s", d))
	}
	return t.values[d]
}

// Values returns the thresholds keyed by band.
func (t Thresholds) Values() map[Difficulty]int {
	out := make(map[Difficulty]int, len(Difficulties))
	for _, d := range Difficulties {
		out[d] = t.values[d]
	}
	return out
}

// Validate checks that thresholds never decrease from one band to the next.
//
// Postcondition: Returns nil, or an error wrapping ErrNonMonotonicThresholds
// that names the first offending pair of bands.
func (t Thresholds) Validate() error {
	for i := 1; i < len(Difficulties); i++ {
		lower, upper := Difficulties[i-1], Difficulties[i]
		if t.values[upper] < t.values[lower] {
			return fmt.Errorf("party size %d: %s threshold %d is below %s threshold %d: %w",
				t.partySize, upper, t.values[upper], lower, t.values[lower], ErrNonMonotonicThresholds)
		}
	}
	return nil
}

// Classify returns the highest band whose party-size adjusted threshold
// rawXP meets, or Trivial when none of Low through Extreme is met.
//
// Bands are tested from Extreme downward so that the most severe band wins when
// several lowered thresholds are cleared at once.
func Classify(rawXP, partySize int) Difficulty {
	for d := Extreme; d > Trivial; d-- {
		if meets(rawXP, partySize, d) {
			return d
		}
	}
	return Trivial
}

// AdjustForPartySize removes the party-size correction of the band rawXP falls
// into, giving the XP the encounter would be worth to a party of four.
//
// The band is chosen from the raw value, not the adjusted one. An empty
// encounter (rawXP == 0) is returned unchanged. Results beyond the int range
// saturate at math.MinInt or math.MaxInt.
func AdjustForPartySize(rawXP, partySize int) int {
	if rawXP == 0 {
		return 0
	}
	inc := perPlayerIncrement(Classify(rawXP, partySize))
	if off, ok := sizeOffset(partySize); ok {
		return subSaturating(rawXP, inc*off)
	}
	w := big.NewInt(int64(partySize))
	w.Sub(w, big.NewInt(BaseParty))
	w.Mul(w, big.NewInt(int64(inc)))
	return saturate(w.Sub(big.NewInt(int64(rawXP)), w))
}

func subSaturating(a, b int) int {
	d := a - b
	switch {
	case b > 0 && d > a:
		return math.MinInt
	case b < 0 && d < a:
		return math.MaxInt
	}
	return d
}

// ClassifyFinal classifies an already finalized encounter total.
//
// totalXP is assumed to be normalized to a party of four and to include
// extraExperience, which never counts toward difficulty, so extraExperience is
// subtracted before comparing against the base thresholds.
func ClassifyFinal(totalXP, extraExperience int) Difficulty {
	return Classify(subSaturating(totalXP, extraExperience), BaseParty)
}

// Range is a half-open XP interval [Min, Max).
type Range struct {
	Min int
	Max int
}

// Contains reports whether xp lies in r.
func (r Range) Contains(xp int) bool {
	return xp >= r.Min && xp < r.Max
}

// Boundaries splits the XP axis for partySize into one range per band, with
// each cut placed halfway between neighbouring thresholds. The first range
// starts at 0 and the last is unbounded (Max == math.MaxInt).
//
// These ranges are meant for display, e.g. drawing a difficulty gauge; Classify
// is the authority on which band an encounter is in.
func Boundaries(partySize int) [len(difficultyNames)]Range {
	t := ThresholdsFor(partySize)
	var out [len(difficultyNames)]Range
	lo := 0
	for i, d := range Difficulties {
		hi := math.MaxInt
		if i+1 < len(Difficulties) {
			a, b := t.For(d), t.For(Difficulties[i+1])
			hi = a + (b-a)/2
		}
		out[d] = Range{Min: lo, Max: hi}
		lo = hi
	}
	return out
}
