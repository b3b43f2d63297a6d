// Package main provides the encounter command, which scores an encounter draft
// against a content library and prints its experience report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/tracker/internal/config"
	"github.com/cory-johannsen/tracker/internal/game/encounter"
	"github.com/cory-johannsen/tracker/internal/game/library"
	"github.com/cory-johannsen/tracker/internal/game/xp"
	"github.com/cory-johannsen/tracker/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and TRACKER_ environment")
	libraryDir := flag.String("library", "", "path to library entry YAML directory; overrides content.library_dir")
	draftPath := flag.String("draft", "", "path to encounter draft YAML file")
	grade := flag.String("accomplishment", "", "print the award for an accomplishment: minor, moderate or major")
	search := flag.String("search", "", "fuzzy-search the library by name")
	flag.Parse()

	p := message.NewPrinter(language.English)

	if *grade != "" {
		a, err := xp.ParseAccomplishment(*grade)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		writeAccomplishment(p, os.Stdout, a)
		return
	}

	if *draftPath == "" && *search == "" {
		fmt.Fprintln(os.Stderr, "usage: encounter [-config <file>] [-library <dir>] (-draft <file> | -search <query> | -accomplishment <grade>)")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath, *libraryDir)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	libStart := time.Now()
	entries, err := library.LoadDir(cfg.Content.LibraryDir)
	if err != nil {
		logger.Fatal("loading library", zap.Error(err))
	}
	lib := library.NewRegistryFrom(entries)
	logger.Info("library loaded",
		zap.String("dir", cfg.Content.LibraryDir),
		zap.Int("entries", lib.Len()),
		zap.Duration("elapsed", time.Since(libStart)),
	)

	if *search != "" {
		writeSearch(p, os.Stdout, *search, lib.Search(*search))
		return
	}

	d, err := encounter.LoadDraft(*draftPath, cfg.Party.Party())
	if err != nil {
		logger.Fatal("loading draft", zap.Error(err))
	}
	res, err := encounter.NewScorer(lib, logger).Score(d)
	if err != nil {
		logger.Fatal("scoring draft", zap.String("draft", *draftPath), zap.Error(err))
	}
	writeReport(p, os.Stdout, d, res)
}

// loadConfig reads path, or the defaults when path is empty, and applies the
// -library override before validating.
func loadConfig(path, libraryDir string) (config.Config, error) {
	if libraryDir != "" {
		// Set before loading so validation sees the override.
		if err := os.Setenv("TRACKER_CONTENT_LIBRARY_DIR", libraryDir); err != nil {
			return config.Config{}, err
		}
	}
	if path == "" {
		return config.LoadFromViper(config.Defaults())
	}
	return config.Load(path)
}
