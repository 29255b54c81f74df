package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	NoColor                                bool
	Title, Muted, Accent, Success, Error   string
	Question, Answer                       string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymQuestion, SymAnswer                 string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed,
		Question: fgYellow, Answer: fgGreen,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymQuestion: "?", SymAnswer: "✔",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed,
			Question: "\033[93m", Answer: "\033[92m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymQuestion: "◇", SymAnswer: "◆",
		}
	case "mono":
		current = Theme{
			Name:     "mono",
			NoColor:  true,
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymQuestion: "?", SymAnswer: "=",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
