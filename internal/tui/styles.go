package tui

import "github.com/charmbracelet/lipgloss"

// ------- styling (Lip Gloss) -------
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	label    lipgloss.Style
	help     lipgloss.Style
	selected lipgloss.Style
	form     lipgloss.Style

	cardQuestion lipgloss.Style
	cardAnswer   lipgloss.Style
	cardSelected lipgloss.Color
}

func newStyles(theme string) styles {
	if theme == "mono" {
		plain := lipgloss.NewStyle()
		card := plain.Border(lipgloss.NormalBorder()).Align(lipgloss.Center)
		return styles{
			title:        plain.Bold(true),
			success:      plain,
			accent:       plain,
			muted:        plain,
			label:        plain.Bold(true),
			help:         plain,
			selected:     plain.Bold(true),
			form:         plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			cardQuestion: card,
			cardAnswer:   card.Border(lipgloss.DoubleBorder()),
		}
	}

	accent, success, border := lipgloss.Color("12"), lipgloss.Color("42"), lipgloss.Color("8")
	title := lipgloss.NewStyle().Bold(true)
	if theme == "neon" {
		accent, success, border = lipgloss.Color("51"), lipgloss.Color("118"), lipgloss.Color("201")
		title = title.Foreground(lipgloss.Color("213"))
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Align(lipgloss.Center)

	return styles{
		title:    title,
		success:  lipgloss.NewStyle().Foreground(success),
		accent:   lipgloss.NewStyle().Foreground(accent),
		muted:    lipgloss.NewStyle().Faint(true),
		label:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		help:     lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		cardQuestion: card,
		cardAnswer:   card.BorderForeground(success).Bold(true),
		cardSelected: accent,
	}
}
