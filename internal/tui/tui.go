package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Makepad-fr/flashcards/internal/flip"
	"github.com/Makepad-fr/flashcards/internal/model"
	"github.com/Makepad-fr/flashcards/internal/ui"
)

// Options configure the interactive deck.
type Options struct {
	Theme         string
	FlipDuration  time.Duration // zero draws cards without rotation
	FrameInterval time.Duration
	Logger        *zap.Logger
}

type focus int

const (
	focusQuestion focus = iota
	focusAnswer
	focusCards
	focusCount
)

// formHeight is the number of rows the add-card form takes, border included.
const formHeight = 8

type frameMsg time.Time

// Model is the Bubble Tea model for studying and extending a deck.
type Model struct {
	deck  *model.Deck
	flips *flip.Tracker

	list     list.Model
	question textinput.Model
	answer   textinput.Model
	focus    focus

	keys   keyMap
	styles styles
	log    *zap.Logger

	frame     time.Duration
	ticking   bool
	lastFrame time.Time
	now       func() time.Time

	width, height int
}

// New builds the model around deck. The deck is mutated in place.
func New(deck *model.Deck, opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.FrameInterval <= 0 {
		opt.FrameInterval = 16 * time.Millisecond
	}
	st := newStyles(opt.Theme)
	keys := defaultKeys()

	l := list.New(nil, cardDelegate{styles: st, body: 1}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.SetStatusBarItemName("card", "cards")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Flip, keys.Next, keys.Quit} }
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Flip, keys.Add, keys.Next, keys.Prev, keys.Leave, keys.Quit}
	}

	q := textinput.New()
	q.Prompt = "> "
	q.Placeholder = "Enter question"

	a := textinput.New()
	a.Prompt = "> "
	a.Placeholder = "Enter answer"

	m := Model{
		deck:     deck,
		flips:    flip.NewTracker(opt.FlipDuration),
		list:     l,
		question: q,
		answer:   a,
		keys:     keys,
		styles:   st,
		log:      opt.Logger,
		frame:    opt.FrameInterval,
		now:      time.Now,
		width:    80,
		height:   24,
	}
	m.setFocus(focusQuestion)
	m.resize()
	m.syncItems()
	return m
}

// Run starts the program on the alternate screen and blocks until the user quits.
func Run(deck *model.Deck, opt Options) error {
	m := New(deck, opt)
	m.log.Debug("study session started", zap.Int("cards", deck.Len()))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	m.log.Debug("study session ended", zap.Int("cards", deck.Len()), zap.Int("revealed", deck.Revealed()))
	return nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case frameMsg:
		return m.onFrame(time.Time(msg))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd
		}
		if m.focus == focusCards {
			return m.updateCards(msg)
		}
		return m.updateForm(msg)
	}

	// Blink and other non-key messages: unfocused inputs ignore them.
	var cmds [3]tea.Cmd
	m.question, cmds[0] = m.question.Update(msg)
	m.answer, cmds[1] = m.answer.Update(msg)
	m.list, cmds[2] = m.list.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.submit()
	case key.Matches(msg, m.keys.Leave):
		cmd := m.setFocus(focusCards)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusQuestion {
		m.question, cmd = m.question.Update(msg)
	} else {
		m.answer, cmd = m.answer.Update(msg)
	}
	return m, cmd
}

func (m Model) updateCards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Flip):
		return m.toggle(m.list.Index())
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// submit appends the draft. A blank draft is ignored and stays as typed.
func (m Model) submit() (tea.Model, tea.Cmd) {
	dr := model.Draft{Question: m.question.Value(), Answer: m.answer.Value()}
	if err := dr.Submit(m.deck); err != nil {
		return m, nil
	}
	m.question.SetValue(dr.Question)
	m.answer.SetValue(dr.Answer)
	m.log.Debug("card appended", zap.Int("cards", m.deck.Len()))
	m.syncItems()
	cmd := m.setFocus(focusQuestion)
	return m, cmd
}

// toggle flips card i. Indexes outside the deck are ignored.
func (m Model) toggle(i int) (tea.Model, tea.Cmd) {
	revealed, err := m.deck.Toggle(i)
	if err != nil {
		return m, nil
	}
	m.flips.Flip(i, revealed)
	m.log.Debug("card flipped", zap.Int("index", i), zap.Bool("revealed", revealed))
	m.syncItems()
	cmd := m.startTicking()
	return m, cmd
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.flips.Running() {
		return nil
	}
	m.ticking = true
	m.lastFrame = m.now()
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) onFrame(t time.Time) (tea.Model, tea.Cmd) {
	dt := t.Sub(m.lastFrame)
	if dt < 0 {
		dt = 0
	}
	m.lastFrame = t
	running := m.flips.Advance(dt)
	m.syncItems()
	if !running {
		m.ticking = false
		return m, nil
	}
	return m, m.tick()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.question.Blur()
	m.answer.Blur()
	switch f {
	case focusQuestion:
		return m.question.Focus()
	case focusAnswer:
		return m.answer.Focus()
	}
	return nil
}

// syncItems redraws the list from the deck; the deck is the only state.
func (m *Model) syncItems() {
	entries := m.deck.Entries()
	items := make([]list.Item, 0, len(entries))
	for i, e := range entries {
		items = append(items, cardItem{Entry: e, Angle: m.flips.Angle(i, e.Revealed)})
	}
	m.list.SetItems(items)
	m.syncDelegate()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s",
		m.styles.title.Render("Flashcards"),
		m.styles.success.Render("✔"), m.deck.Revealed(),
		m.styles.accent.Render("Total"), m.deck.Len(),
		m.styles.muted.Render(ui.ProgressBar(m.deck.Revealed(), m.deck.Len(), 12)),
	)
}

func (m *Model) resize() {
	h := m.height - formHeight
	if h < 4 {
		h = 4
	}
	m.list.SetSize(m.width, h)
	m.syncDelegate()
}

// syncDelegate sizes card rows to the tallest wrapped face at the current width.
func (m *Model) syncDelegate() {
	m.list.SetDelegate(cardDelegate{styles: m.styles, body: bodyHeight(m.deck.Entries(), m.width)})
}

func (m Model) View() string {
	label := func(s string, f focus) string {
		if m.focus == f {
			return m.styles.label.Render(s)
		}
		return m.styles.muted.Render(s)
	}
	hint := m.styles.help.Render("enter add card • tab switch • esc cards")
	form := m.styles.form.Render(lipgloss.JoinVertical(lipgloss.Left,
		label("Question", focusQuestion),
		m.question.View(),
		label("Answer", focusAnswer),
		m.answer.View(),
		hint,
	))
	return lipgloss.JoinVertical(lipgloss.Left, form, m.list.View())
}
