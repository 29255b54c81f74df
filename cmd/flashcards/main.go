package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Makepad-fr/flashcards/internal/cli"
	"github.com/Makepad-fr/flashcards/internal/config"
	"github.com/Makepad-fr/flashcards/internal/logger"
	"github.com/Makepad-fr/flashcards/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to a flashcards.yaml config file")
	reveal := flag.Bool("reveal", false, "ls: show answers too")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colored output")
	flag.Parse()

	ui.SetColorForcing(false, *noColor)

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		ui.Fail("logger: " + err.Error())
		os.Exit(1)
	}
	log.Debug("config loaded", zap.String("theme", cfg.Theme), zap.Duration("flip_duration", cfg.EffectiveFlipDuration()))

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Reveal: *reveal,
		Config: cfg,
		Logger: log,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	_ = log.Sync()
	os.Exit(code)
}
