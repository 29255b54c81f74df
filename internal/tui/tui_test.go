package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/flashcards/internal/flip"
	"github.com/Makepad-fr/flashcards/internal/model"
)

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func newTestModel(d time.Duration) (Model, *model.Deck) {
	deck := model.NewDeck()
	return New(deck, Options{Theme: "mono", FlipDuration: d}), deck
}

func TestStartsOnQuestionField(t *testing.T) {
	m, _ := newTestModel(0)
	assert.Equal(t, focusQuestion, m.focus)
	assert.True(t, m.question.Focused())
	assert.False(t, m.answer.Focused())
	assert.Len(t, m.list.Items(), 3)
	assert.Contains(t, m.list.Title, "Total 3")
}

func TestFocusCycles(t *testing.T) {
	m, _ := newTestModel(0)

	m, _ = send(t, m, keyTab)
	assert.Equal(t, focusAnswer, m.focus)
	m, _ = send(t, m, keyTab)
	assert.Equal(t, focusCards, m.focus)
	assert.False(t, m.question.Focused())
	assert.False(t, m.answer.Focused())
	m, _ = send(t, m, keyTab)
	assert.Equal(t, focusQuestion, m.focus)
	m, _ = send(t, m, keyShiftTab)
	assert.Equal(t, focusCards, m.focus)
}

func TestFlipFirstCardAndBack(t *testing.T) {
	m, deck := newTestModel(0)

	m, _ = send(t, m, keyEsc, keySpace)
	require.Equal(t, focusCards, m.focus)

	assert.Equal(t, "Paris", deck.Face(0))
	assert.Equal(t, "What is 2 + 2?", deck.Face(1))
	assert.Equal(t, `Who wrote "Romeo and Juliet"?`, deck.Face(2))
	assert.Contains(t, ansi.Strip(m.View()), "Paris")

	m, _ = send(t, m, keySpace)
	assert.Equal(t, "What is the capital of France?", deck.Face(0))
	assert.NotContains(t, ansi.Strip(m.View()), "Paris")
}

func TestFlipSelectedCardOnly(t *testing.T) {
	m, deck := newTestModel(0)

	_, _ = send(t, m, keyEsc, keyDown, keyEnter)

	es := deck.Entries()
	assert.False(t, es[0].Revealed)
	assert.True(t, es[1].Revealed)
	assert.False(t, es[2].Revealed)
}

func TestAddCard(t *testing.T) {
	m, deck := newTestModel(0)

	m, _ = send(t, m, runes("New Q"), keyTab, runes("New A"), keyEnter)

	require.Equal(t, 4, deck.Len())
	e, _ := deck.Entry(3)
	assert.Equal(t, model.Card{Question: "New Q", Answer: "New A"}, e.Card)
	assert.False(t, e.Revealed)
	assert.Equal(t, "New Q", deck.Face(3))
	assert.Empty(t, m.question.Value())
	assert.Empty(t, m.answer.Value())
	assert.Len(t, m.list.Items(), 4)
	assert.Equal(t, focusQuestion, m.focus)
}

func TestAddCardRejectsBlank(t *testing.T) {
	m, deck := newTestModel(0)

	m, cmd := send(t, m, runes("only a question"), keyTab, runes("   "), keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, 3, deck.Len())
	assert.Equal(t, "only a question", m.question.Value())
	assert.Equal(t, "   ", m.answer.Value())
	assert.Equal(t, focusAnswer, m.focus)
}

func TestQuitOnlyFromCards(t *testing.T) {
	m, _ := newTestModel(0)

	m, _ = send(t, m, runes("q"))
	assert.Equal(t, "q", m.question.Value())

	_, cmd := send(t, m, keyEsc, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, keyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	m, deck := newTestModel(0)
	before := deck.Entries()

	next, cmd := m.toggle(7)

	assert.Nil(t, cmd)
	assert.Equal(t, before, deck.Entries())
	assert.False(t, next.(Model).flips.Running())
}

func TestFlipAnimatesWithoutGatingState(t *testing.T) {
	m, deck := newTestModel(500 * time.Millisecond)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	m, cmd := send(t, m, keyEsc, keySpace)
	require.NotNil(t, cmd, "a running flip schedules a frame")
	assert.True(t, m.ticking)
	assert.True(t, deck.Entries()[0].Revealed, "flag flips before any frame")

	m, cmd = send(t, m, frameMsg(start.Add(250*time.Millisecond)))
	require.NotNil(t, cmd)
	it := m.list.Items()[0].(cardItem)
	assert.InDelta(t, 90, it.Angle, 1e-9)
	assert.InDelta(t, flip.QuestionAngle, m.list.Items()[1].(cardItem).Angle, 1e-9)

	// A second toggle mid-flight turns back from where the card is drawn.
	m, cmd = send(t, m, keySpace)
	assert.Nil(t, cmd, "already ticking")
	assert.False(t, deck.Entries()[0].Revealed)

	m, cmd = send(t, m, frameMsg(start.Add(time.Second)))
	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
	assert.InDelta(t, flip.QuestionAngle, m.list.Items()[0].(cardItem).Angle, 1e-9)
}

func TestRenderCardShrinksWithRotation(t *testing.T) {
	st := newStyles("mono")
	e := model.Entry{Card: model.Card{Question: "What is 2 + 2?", Answer: "4"}}

	flat := st.renderCard(cardItem{Entry: e, Angle: 0}, 40, 1, false)
	edge := st.renderCard(cardItem{Entry: e, Angle: 80}, 40, 1, false)

	widest := func(s string) int {
		n := 0
		for _, ln := range strings.Split(s, "\n") {
			if w := ansi.StringWidth(strings.TrimSpace(ln)); w > n {
				n = w
			}
		}
		return n
	}
	assert.Contains(t, flat, "What is 2 + 2?")
	assert.Contains(t, edge, "…")
	assert.Less(t, widest(edge), widest(flat))
	assert.Len(t, strings.Split(flat, "\n"), 3)
	assert.Len(t, strings.Split(edge, "\n"), 3)
}

func TestRenderCardShowsAnswerWhenRevealed(t *testing.T) {
	st := newStyles("classic")
	e := model.Entry{Card: model.Card{Question: "Q", Answer: "William Shakespeare"}, Revealed: true}

	out := ansi.Strip(st.renderCard(cardItem{Entry: e, Angle: flip.AnswerAngle}, 60, 1, true))

	assert.Contains(t, out, "William Shakespeare")
	assert.Contains(t, out, ">")
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(0)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.list.Width())
	assert.Equal(t, 40-formHeight, m.list.Height())
}

const longQuestion = "Which river flows through Budapest, Vienna, Bratislava and Belgrade " +
	"before it finally reaches the Black Sea delta far from Zanzibar?"

func TestLongCardIsWrappedNotCut(t *testing.T) {
	m, deck := newTestModel(0)
	require.Greater(t, ansi.StringWidth(longQuestion), maxCardWidth)

	m, _ = send(t, m,
		tea.WindowSizeMsg{Width: 200, Height: 60},
		runes(longQuestion), keyTab, runes("The Danube"), keyEnter,
	)
	require.Equal(t, 4, deck.Len())

	view := ansi.Strip(m.View())
	for _, word := range strings.Fields(longQuestion) {
		assert.Contains(t, view, word)
	}
	assert.NotContains(t, view, "…")
	assert.Equal(t, len(faceLines(longQuestion, maxCardWidth)), bodyHeight(deck.Entries(), 200))
}

func TestRenderCardPadsToRowHeight(t *testing.T) {
	st := newStyles("mono")
	e := model.Entry{Card: model.Card{Question: "Q", Answer: longQuestion}}

	body := bodyHeight([]model.Entry{e}, 80)
	require.Greater(t, body, 1, "the long answer wraps")

	front := st.renderCard(cardItem{Entry: e}, 80, body, false)
	e.Revealed = true
	back := st.renderCard(cardItem{Entry: e, Angle: flip.AnswerAngle}, 80, body, false)

	assert.Len(t, strings.Split(front, "\n"), body+2)
	assert.Len(t, strings.Split(back, "\n"), body+2)
	assert.Contains(t, ansi.Strip(back), "Zanzibar?")
}

func TestLongInputIsKeptWhole(t *testing.T) {
	m, deck := newTestModel(0)
	answer := strings.Repeat("abcde ", 41) + "end"
	require.Greater(t, len(answer), 200)

	m, _ = send(t, m, runes("Q"), keyTab, runes(answer), keyEnter)

	require.Equal(t, 4, deck.Len())
	e, _ := deck.Entry(3)
	assert.Equal(t, answer, e.Answer)
	assert.Empty(t, m.answer.Value())
}
