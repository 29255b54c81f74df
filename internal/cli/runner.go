package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/Makepad-fr/flashcards/internal/config"
	"github.com/Makepad-fr/flashcards/internal/model"
	"github.com/Makepad-fr/flashcards/internal/tui"
	"github.com/Makepad-fr/flashcards/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Reveal bool // ls: print answers next to questions

	Config *config.Config
	Logger *zap.Logger
	Out    io.Writer
}

// study is swapped in tests so Run never needs a terminal.
var study = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no arguments it starts the interactive deck.
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Config == nil {
		opt.Config = &config.Config{Theme: "classic", Animate: true}
	}
	ui.SetTheme(opt.Config.Theme)

	cmd := "study"
	var a []string
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "study":
		if len(a) != 0 {
			ui.Fail("usage: flashcards study")
			return 2
		}
		return doStudy(opt)

	case "ls":
		if len(a) != 0 {
			ui.Fail("usage: flashcards [-reveal] ls")
			return 2
		}
		return doList(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp(ui.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `flashcards - flip-able question/answer cards in the terminal

Usage:
  flashcards [flags] [subcommand]

Subcommands:
  study        Open the interactive deck (default)
  ls           Print the starting deck
  help         Show this help

Flags:
  -config <path>   Config file (default ./flashcards.yaml, ~/.config/flashcards/flashcards.yaml)
  -reveal          ls: show answers too

In the deck:
  tab / shift+tab  Move between question, answer and cards
  enter            Add the card (in the form) or flip it (on a card)
  space            Flip the selected card
  q, esc           Quit (on the cards); ctrl+c quits anywhere
`)
}

// -------------- subcommand impls ----------------

func doStudy(opt Options) int {
	deck := model.NewDeck()
	err := study(deck, tui.Options{
		Theme:         opt.Config.Theme,
		FlipDuration:  opt.Config.EffectiveFlipDuration(),
		FrameInterval: opt.Config.FrameInterval,
		Logger:        opt.Logger,
	})
	if err != nil {
		opt.Logger.Error("study session failed", zap.Error(err))
		ui.Fail(err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	deck := model.NewDeck()
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %d",
		ui.C(t.Title, "Flashcards"),
		ui.C(t.Accent, "Total"), deck.Len(),
	)
	lines := []string{header, ""}
	lines = append(lines, cardLines(deck.Entries(), opt.Reveal)...)
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: run `flashcards` to flip cards and add your own"))
	ui.Panel(opt.Out, lines)
	return 0
}

// -------------- rendering helpers --------------

func cardLines(entries []model.Entry, reveal bool) []string {
	if len(entries) == 0 {
		return []string{ui.C(ui.Current().Muted, "no cards")}
	}
	t := ui.Current()
	out := make([]string, 0, len(entries)*2)
	for i, e := range entries {
		idx := fmt.Sprintf("%2d.", i+1)
		q := ansi.Truncate(e.Question, 80, "...")
		out = append(out, fmt.Sprintf("%s %s %s", ui.Dim(idx), ui.C(t.Question, t.SymQuestion), q))
		if reveal {
			out = append(out, fmt.Sprintf("    %s %s", ui.C(t.Answer, t.SymAnswer), e.Answer))
		}
	}
	return out
}
