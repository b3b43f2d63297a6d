package xp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tracker/internal/game/xp"
)

func TestEvaluate_SingleCreature(t *testing.T) {
	ev, err := xp.Evaluate(xp.Party{Level: 1, Size: 4}, []xp.Contribution{{Level: 1}})
	require.NoError(t, err)
	assert.Equal(t, xp.Budget{Raw: 40, Adjusted: 40}, ev.Budget)
	assert.Equal(t, xp.Trivial, ev.Difficulty)
	assert.Equal(t, xp.RewardFor(1, xp.Trivial), ev.Reward)
}

func TestEvaluate_MixedEncounterLargeParty(t *testing.T) {
	party := xp.Party{Level: 3, Size: 6}
	ev, err := xp.Evaluate(party, []xp.Contribution{
		{Level: 5},                              // +2: 80
		{Level: 4},                              // +1: 60
		{Level: 3, Hazard: true},                // simple: 8
		{Level: 4, Hazard: true, Complex: true}, // complex: 60
	})
	require.NoError(t, err)
	assert.Equal(t, 208, ev.Budget.Raw)
	assert.Equal(t, xp.Severe, ev.Difficulty)
	assert.Equal(t, 148, ev.Budget.Adjusted)
	assert.Equal(t, party, ev.Party)
}

func TestEvaluate_EmptyEncounter(t *testing.T) {
	ev, err := xp.Evaluate(xp.Party{Level: 2, Size: 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, xp.Budget{}, ev.Budget)
	assert.Equal(t, xp.Trivial, ev.Difficulty)
}

func TestEvaluate_RejectsInvalidParty(t *testing.T) {
	for _, p := range []xp.Party{
		{Level: 0, Size: 4},
		{Level: 1, Size: 0},
		{Level: 1, Size: -3},
		{Level: 1, Size: 1},
		{Level: 31, Size: 4},
	} {
		_, err := xp.Evaluate(p, []xp.Contribution{{Level: 1}})
		assert.ErrorIs(t, err, xp.ErrInvalidParty, "party %+v", p)
	}
}

func TestParty_Validate_SoloWrapsThresholdError(t *testing.T) {
	err := xp.Party{Level: 5, Size: 1}.Validate()
	assert.ErrorIs(t, err, xp.ErrInvalidParty)
	assert.ErrorIs(t, err, xp.ErrNonMonotonicThresholds)
}

func TestParty_YAML(t *testing.T) {
	var p xp.Party
	require.NoError(t, yaml.Unmarshal([]byte("level: 7\nsize: 5\n"), &p))
	assert.Equal(t, xp.Party{Level: 7, Size: 5}, p)
	assert.NoError(t, p.Validate())
}

func TestNewBudget(t *testing.T) {
	assert.Equal(t, xp.Budget{Raw: 200, Adjusted: 140}, xp.NewBudget(200, 6))
	assert.Equal(t, xp.Budget{}, xp.NewBudget(0, 8))
}

func TestProperty_Evaluate_ConsistentWithClassify(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		party := xp.Party{
			Level: rapid.IntRange(1, 20).Draw(rt, "level"),
			Size:  rapid.IntRange(2, 8).Draw(rt, "size"),
		}
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		contribs := make([]xp.Contribution, n)
		for i := range contribs {
			contribs[i] = xp.Contribution{
				Level:   rapid.IntRange(-1, 25).Draw(rt, "clevel"),
				Hazard:  rapid.Bool().Draw(rt, "hazard"),
				Complex: rapid.Bool().Draw(rt, "complex"),
			}
		}
		ev, err := xp.Evaluate(party, contribs)
		require.NoError(rt, err)
		assert.Equal(rt, xp.Classify(ev.Budget.Raw, party.Size), ev.Difficulty)
		assert.Equal(rt, xp.AdjustForPartySize(ev.Budget.Raw, party.Size), ev.Budget.Adjusted)
	})
}

func TestExperienceForAccomplishment(t *testing.T) {
	assert.Equal(t, 0, xp.ExperienceForAccomplishment(xp.NoAccomplishment))
	assert.Equal(t, 10, xp.ExperienceForAccomplishment(xp.MinorAccomplishment))
	assert.Equal(t, 30, xp.ExperienceForAccomplishment(xp.ModerateAccomplishment))
	assert.Equal(t, 80, xp.ExperienceForAccomplishment(xp.MajorAccomplishment))
	assert.Equal(t, 0, xp.ExperienceForAccomplishment(xp.Accomplishment(42)))
}

func TestParseAccomplishment(t *testing.T) {
	for s, want := range map[string]xp.Accomplishment{
		"":         xp.NoAccomplishment,
		"minor":    xp.MinorAccomplishment,
		"Moderate": xp.ModerateAccomplishment,
		" MAJOR ":  xp.MajorAccomplishment,
	} {
		got, err := xp.ParseAccomplishment(s)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, want, got)
	}
	_, err := xp.ParseAccomplishment("epic")
	assert.Error(t, err)
}

func TestAccomplishment_StringRoundTrip(t *testing.T) {
	for _, a := range []xp.Accomplishment{xp.NoAccomplishment, xp.MinorAccomplishment, xp.ModerateAccomplishment, xp.MajorAccomplishment} {
		got, err := xp.ParseAccomplishment(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "Accomplishment(9)", xp.Accomplishment(9).String())
}

func TestProgress(t *testing.T) {
	assert.Equal(t, xp.Progression{}, xp.Progress(0))
	assert.Equal(t, xp.Progression{LevelsGained: 0, ExperienceThisLevel: 250, Fraction: 0.25}, xp.Progress(250))
	assert.Equal(t, xp.Progression{LevelsGained: 3, ExperienceThisLevel: 40, Fraction: 0.04}, xp.Progress(3040))
}

func TestProperty_Progress_Partitions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(0, 1_000_000).Draw(rt, "total")
		p := xp.Progress(total)
		assert.Equal(rt, total, p.LevelsGained*xp.ExperiencePerLevel+p.ExperienceThisLevel)
		assert.GreaterOrEqual(rt, p.Fraction, 0.0)
		assert.Less(rt, p.Fraction, 1.0)
	})
}

func TestDifficulty_String(t *testing.T) {
	assert.Equal(t, "Trivial", xp.Trivial.String())
	assert.Equal(t, "Extreme", xp.Extreme.String())
	assert.Equal(t, "Difficulty(8)", xp.Difficulty(8).String())
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range xp.Difficulties {
		got, err := xp.ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := xp.ParseDifficulty("severe")
	require.NoError(t, err)
	assert.Equal(t, xp.Severe, got)
	_, err = xp.ParseDifficulty("Unknown")
	assert.Error(t, err)
}

func TestDifficulty_YAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]xp.Difficulty{"band": xp.Moderate})
	require.NoError(t, err)
	assert.Equal(t, "band: Moderate\n", string(out))

	var in struct {
		Band xp.Difficulty `yaml:"band"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("band: low\n"), &in))
	assert.Equal(t, xp.Low, in.Band)
	assert.Error(t, yaml.Unmarshal([]byte("band: deadly\n"), &in))

	_, err = yaml.Marshal(map[string]xp.Difficulty{"band": xp.Difficulty(-2)})
	assert.Error(t, err)
}
