package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/cli/formatter"
	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type reviewKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dismiss, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Dismiss, k.Help, k.Quit},
	}
}

func defaultReviewKeys() reviewKeyMap {
	return reviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d", " "),
			key.WithHelp("d", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// warningsReview is a small read/dismiss browser over one generation pass.
// Dismissals are per-session: warnings are ephemeral and regenerate on the
// next pass.
type warningsReview struct {
	warnings  []domain.ScheduleWarning
	dismissed map[string]bool
	cursor    int
	keys      reviewKeyMap
	help      help.Model
	quitting  bool
}

func newWarningsReview(warnings []domain.ScheduleWarning) warningsReview {
	return warningsReview{
		warnings:  warnings,
		dismissed: make(map[string]bool),
		keys:      defaultReviewKeys(),
		help:      help.New(),
	}
}

func (m warningsReview) Init() tea.Cmd {
	return nil
}

func (m warningsReview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.warnings)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Dismiss):
			if len(m.warnings) > 0 {
				w := m.warnings[m.cursor]
				if w.CanDismiss {
					m.dismissed[w.ID] = !m.dismissed[w.ID]
				}
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m warningsReview) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Review warnings (%d)", len(m.warnings))))
	b.WriteString("\n\n")

	if len(m.warnings) == 0 {
		b.WriteString(formatter.Dim("Nothing to review") + "\n")
	}

	for i, w := range m.warnings {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		line := fmt.Sprintf("%s  %s", formatter.SeverityPill(w.Severity), w.Message)
		if m.dismissed[w.ID] {
			line = formatter.Dim("✔ dismissed  " + w.Message)
		} else if !w.CanDismiss {
			line += formatter.Dim("  (blocking)")
		}
		b.WriteString(cursor + line + "\n")
		if i == m.cursor && w.Suggestion != "" && !m.dismissed[w.ID] {
			b.WriteString("     " + formatter.Dim("↳ "+w.Suggestion) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}
