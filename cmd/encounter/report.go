package main

import (
	"io"
	"math"

	"golang.org/x/text/message"

	"github.com/cory-johannsen/tracker/internal/game/encounter"
	"github.com/cory-johannsen/tracker/internal/game/library"
	"github.com/cory-johannsen/tracker/internal/game/xp"
)

func writeReport(p *message.Printer, w io.Writer, d encounter.Draft, res encounter.Result) {
	p.Fprintf(w, "Encounter:        %s (%s)\n", d.Name, res.Type)
	if res.Type != encounter.TypeAccomplishment {
		ev := res.Evaluation
		p.Fprintf(w, "Party:            level %d, %d players\n", ev.Party.Level, ev.Party.Size)
		p.Fprintf(w, "Raw XP:           %d\n", ev.Budget.Raw)
		p.Fprintf(w, "Adjusted XP:      %d\n", ev.Budget.Adjusted)
		p.Fprintf(w, "Difficulty:       %s\n", ev.Difficulty)
		p.Fprintf(w, "Suggested reward: %d XP, %s\n", ev.Reward.XP, currency(p, ev.Reward.Currency))
		writeThresholds(p, w, ev.Party.Size, ev.Difficulty)
	}
	if res.ExtraExperience > 0 {
		p.Fprintf(w, "Extra XP:         %d\n", res.ExtraExperience)
	}
	p.Fprintf(w, "Total XP:         %d\n", res.TotalExperience)
	p.Fprintf(w, "Final difficulty: %s\n", res.FinalDifficulty)
	if !res.Treasure.IsZero() || res.TreasureItems > 0 {
		p.Fprintf(w, "Treasure:         %s (%d items)\n", currency(p, res.Treasure), res.TreasureItems)
	}
	if res.TotalExperience > 0 {
		prog := xp.Progress(res.TotalExperience)
		p.Fprintf(w, "Progress:         %d levels, %d/%d XP\n", prog.LevelsGained, prog.ExperienceThisLevel, xp.ExperiencePerLevel)
	}
}

func writeThresholds(p *message.Printer, w io.Writer, partySize int, current xp.Difficulty) {
	th := xp.ThresholdsFor(partySize)
	gauge := xp.Boundaries(partySize)
	for _, band := range xp.Difficulties {
		marker := " "
		if band == current {
			marker = "*"
		}
		r := gauge[band]
		if r.Max == math.MaxInt {
			p.Fprintf(w, "  %s %-8s %5d  gauge %d+\n", marker, band, th.For(band), r.Min)
			continue
		}
		p.Fprintf(w, "  %s %-8s %5d  gauge %d-%d\n", marker, band, th.For(band), r.Min, r.Max-1)
	}
}

func writeAccomplishment(p *message.Printer, w io.Writer, a xp.Accomplishment) {
	p.Fprintf(w, "%s accomplishment: %d XP\n", a, xp.ExperienceForAccomplishment(a))
}

func writeSearch(p *message.Printer, w io.Writer, query string, matches []library.Entry) {
	if len(matches) == 0 {
		p.Fprintf(w, "no entries match %q\n", query)
		return
	}
	for _, e := range matches {
		m := e.Meta()
		p.Fprintf(w, "%-9s %-24s %s\n", e.Kind(), m.ID, m.Name)
	}
}

func currency(p *message.Printer, c xp.Currency) string {
	return p.Sprintf("%d gp %d sp %d cp", c.Gold, c.Silver, c.Copper)
}
