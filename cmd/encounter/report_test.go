package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/tracker/internal/game/encounter"
	"github.com/cory-johannsen/tracker/internal/game/library"
	"github.com/cory-johannsen/tracker/internal/game/xp"
)

func testPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func TestWriteReport_Combat(t *testing.T) {
	lib := library.NewRegistryFrom([]library.Entry{
		&library.Creature{Header: library.Header{ID: "dragon", Name: "Young Red Dragon"}, Level: 14},
		&library.Item{Header: library.Header{ID: "hoard", Name: "Hoard"}, Price: xp.Currency{Gold: 2500}},
	})
	d := encounter.NewDraft("Lair", xp.Party{Level: 12, Size: 4})
	d.AddEnemy("dragon", encounter.Elite)
	d.AddTreasure("hoard")
	d.ExtraExperience = 900

	res, err := encounter.NewScorer(lib, nil).Score(d)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeReport(testPrinter(), &buf, d, res)
	out := buf.String()
	assert.Contains(t, out, "Encounter:        Lair (combat)")
	assert.Contains(t, out, "Raw XP:           120")
	assert.Contains(t, out, "Difficulty:       Severe")
	assert.Contains(t, out, "Total XP:         1,020")
	assert.Contains(t, out, "Final difficulty: Severe")
	assert.Contains(t, out, "Treasure:         2,500 gp 0 sp 0 cp (1 items)")
	assert.Contains(t, out, "Progress:         1 levels, 20/1,000 XP")
	assert.Contains(t, out, "  * Severe     120  gauge 100-139\n")
	assert.Contains(t, out, "    Extreme    160  gauge 140+\n")
}

func TestWriteReport_AccomplishmentSkipsCombatLines(t *testing.T) {
	d := encounter.NewAccomplishment("Forged an alliance", xp.MajorAccomplishment)
	res, err := encounter.NewScorer(library.NewRegistry(), nil).Score(d)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeReport(testPrinter(), &buf, d, res)
	out := buf.String()
	assert.Contains(t, out, "(accomplishment)")
	assert.Contains(t, out, "Extra XP:         80")
	assert.NotContains(t, out, "Raw XP")
	assert.NotContains(t, out, "Treasure")
}

func TestWriteAccomplishment(t *testing.T) {
	var buf bytes.Buffer
	writeAccomplishment(testPrinter(), &buf, xp.ModerateAccomplishment)
	assert.Equal(t, "moderate accomplishment: 30 XP\n", buf.String())
}

func TestWriteSearch(t *testing.T) {
	lib := library.NewRegistryFrom([]library.Entry{
		&library.Creature{Header: library.Header{ID: "ogre", Name: "Ogre"}, Level: 3},
	})
	var buf bytes.Buffer
	writeSearch(testPrinter(), &buf, "ogr", lib.Search("ogr"))
	assert.Contains(t, buf.String(), "ogre")

	buf.Reset()
	writeSearch(testPrinter(), &buf, "wyvern", nil)
	assert.Equal(t, "no entries match \"wyvern\"\n", buf.String())
}

func TestBundledContent_ScoresExampleDraft(t *testing.T) {
	entries, err := library.LoadDir("../../content/library")
	require.NoError(t, err)
	lib := library.NewRegistryFrom(entries)
	assert.Equal(t, 14, lib.Len())

	d, err := encounter.LoadDraft("../../content/drafts/goblin_ambush.yaml", xp.Party{})
	require.NoError(t, err)
	res, err := encounter.NewScorer(lib, nil).Score(d)
	require.NoError(t, err)
	assert.Equal(t, xp.Budget{Raw: 102, Adjusted: 102}, res.Evaluation.Budget)
	assert.Equal(t, xp.Moderate, res.Evaluation.Difficulty)
	assert.Equal(t, 112, res.TotalExperience)
	assert.Equal(t, xp.Currency{Gold: 5, Silver: 5, Copper: 1}, res.Treasure)
}

func TestLoadConfig_LibraryOverride(t *testing.T) {
	t.Setenv("TRACKER_CONTENT_LIBRARY_DIR", "")
	dir := t.TempDir()
	cfg, err := loadConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Content.LibraryDir)
	assert.Equal(t, xp.Party{Level: 1, Size: 4}, cfg.Party.Party())
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("TRACKER_CONTENT_LIBRARY_DIR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("party:\n  level: 3\n  size: 5\ncontent:\n  library_dir: "+dir+"\n"), 0644))

	cfg, err := loadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, xp.Party{Level: 3, Size: 5}, cfg.Party.Party())

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)
}
