package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/flashcards/internal/flip"
	"github.com/Makepad-fr/flashcards/internal/model"
)

const (
	minCardWidth = 12
	maxCardWidth = 64
)

// cardItem adapts a deck entry to bubbles/list.Item, together with the
// angle it is drawn at this frame.
type cardItem struct {
	model.Entry
	Angle float64
}

func (i cardItem) FilterValue() string { return i.Question }

// cardDelegate draws every card as a bordered box whose width follows the
// card's rotation. body is the number of text rows inside the border; every
// card gets the same so list rows stay aligned.
type cardDelegate struct {
	styles styles
	body   int
}

func (d cardDelegate) Height() int                               { return d.body + 2 }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cardItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.styles.renderCard(it, m.Width(), d.body, index == m.Index()))
}

func cardWidth(avail int) int {
	cw := avail - 6 // prefix + border
	if cw < minCardWidth {
		cw = minCardWidth
	}
	if cw > maxCardWidth {
		cw = maxCardWidth
	}
	return cw
}

// faceLines word-wraps text to width, breaking words that do not fit.
func faceLines(text string, width int) []string {
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

// bodyHeight is the tallest face in entries once wrapped for a slot of avail
// columns. Both faces count so a flip never changes the row height.
func bodyHeight(entries []model.Entry, avail int) int {
	full := cardWidth(avail)
	h := 1
	for _, e := range entries {
		h = max(h, len(faceLines(e.Question, full)), len(faceLines(e.Answer, full)))
	}
	return h
}

// renderCard shows the face for the card's current flag, wrapped to the full
// card width and squeezed to the apparent width of its rotation. Only a card
// that is turned away gets its lines truncated.
func (s styles) renderCard(it cardItem, avail, body int, selected bool) string {
	full := cardWidth(avail)
	inner := int(math.Round(float64(full) * flip.Scale(it.Angle)))
	if inner < 1 {
		inner = 1
	}

	lines := faceLines(it.Face(), full)
	if inner < full {
		for i, ln := range lines {
			lines[i] = ansi.Truncate(ln, inner, "…")
		}
	}

	st := s.cardQuestion
	if it.Revealed {
		st = s.cardAnswer
	}
	if selected && s.cardSelected != "" {
		st = st.BorderForeground(s.cardSelected)
	}
	box := st.Width(inner).Height(max(body, 1)).Render(strings.Join(lines, "\n"))
	box = lipgloss.PlaceHorizontal(full+2, lipgloss.Center, box)

	prefix := "  "
	if selected {
		prefix = s.selected.Render("> ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, prefix, box)
}
