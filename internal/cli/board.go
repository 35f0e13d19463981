package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dayekim/tripmate/internal/cli/formatter"
)

// boardKeyMap defines the board's key bindings.
type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	Raise    key.Binding
	Lower    key.Binding
	SendPrev key.Binding
	SendNext key.Binding
	Delete   key.Binding
	Quit     key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
		PrevDay:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		NextDay:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Raise:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		Lower:    key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		SendPrev: key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "send to previous day")),
		SendNext: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "send to next day")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is the interactive day-by-day board: one column per trip day,
// places reorderable within a day and movable across days.
type boardModel struct {
	app    *App
	keys   boardKeyMap
	dates  []string
	day    int
	cursor int
	status string
	width  int
}

func newBoardModel(app *App) *boardModel {
	m := &boardModel{
		app:  app,
		keys: newBoardKeyMap(),
	}
	m.reload()
	return m
}

// reload re-derives the date columns and clamps the cursor; called after
// every mutation since a merge elsewhere could have grown the trip.
func (m *boardModel) reload() {
	m.dates = m.app.Store.Schedule().Dates()
	if m.day >= len(m.dates) {
		m.day = len(m.dates) - 1
	}
	if m.day < 0 {
		m.day = 0
	}
	m.clampCursor()
	if len(m.dates) > 0 {
		m.app.Store.SetActiveDate(m.dates[m.day])
	}
}

func (m *boardModel) clampCursor() {
	n := len(m.currentDay())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *boardModel) currentDate() string {
	if len(m.dates) == 0 {
		return ""
	}
	return m.dates[m.day]
}

func (m *boardModel) currentDay() []string {
	date := m.currentDate()
	if date == "" {
		return nil
	}
	places := m.app.Store.Schedule().DailyPlan[date]
	names := make([]string, len(places))
	for i, p := range places {
		names[i] = p.Name
	}
	return names
}

func (m *boardModel) Init() tea.Cmd { return nil }

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	date := m.currentDate()
	n := len(m.app.Store.Schedule().DailyPlan[date])
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevDay):
		if m.day > 0 {
			m.day--
			m.reload()
		}

	case key.Matches(msg, m.keys.NextDay):
		if m.day < len(m.dates)-1 {
			m.day++
			m.reload()
		}

	case key.Matches(msg, m.keys.Raise):
		if m.cursor > 0 {
			m.mutate(m.app.Store.Reorder(ctx, date, m.cursor, m.cursor-1))
			m.cursor--
		}

	case key.Matches(msg, m.keys.Lower):
		if m.cursor < n-1 {
			m.mutate(m.app.Store.Reorder(ctx, date, m.cursor, m.cursor+1))
			m.cursor++
		}

	case key.Matches(msg, m.keys.SendPrev):
		if m.day > 0 && n > 0 {
			dst := m.dates[m.day-1]
			dstLen := len(m.app.Store.Schedule().DailyPlan[dst])
			m.mutate(m.app.Store.MovePlace(ctx, date, m.cursor, dst, dstLen))
			m.day--
			m.cursor = dstLen
			m.reload()
		}

	case key.Matches(msg, m.keys.SendNext):
		if m.day < len(m.dates)-1 && n > 0 {
			dst := m.dates[m.day+1]
			dstLen := len(m.app.Store.Schedule().DailyPlan[dst])
			m.mutate(m.app.Store.MovePlace(ctx, date, m.cursor, dst, dstLen))
			m.day++
			m.cursor = dstLen
			m.reload()
		}

	case key.Matches(msg, m.keys.Delete):
		if n > 0 {
			m.mutate(m.app.Store.DeletePlace(ctx, date, m.cursor))
			m.clampCursor()
		}
	}

	return m, nil
}

// mutate records a persistence failure in the status line; the in-memory
// change already happened either way.
func (m *boardModel) mutate(err error) {
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

func (m *boardModel) View() string {
	s := m.app.Store.Schedule()
	if s == nil || len(m.dates) == 0 {
		return formatter.Dim("Nothing to show.")
	}

	cols := make([]string, 0, len(m.dates))
	for di, date := range m.dates {
		cols = append(cols, m.renderColumn(di, date))
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("%s → %s", s.Departure, s.Arrival)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n\n")
	b.WriteString(m.helpLine())
	if m.status != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(m.status))
	}
	return b.String()
}

func (m *boardModel) renderColumn(di int, date string) string {
	s := m.app.Store.Schedule()
	active := di == m.day

	var b strings.Builder
	header := date
	if active {
		b.WriteString(formatter.StyleHeader.Render(header) + "\n")
	} else {
		b.WriteString(formatter.Dim(header) + "\n")
	}

	places := s.DailyPlan[date]
	if len(places) == 0 {
		b.WriteString(formatter.Dim("  (empty)") + "\n")
	}
	for i, p := range places {
		marker := "  "
		line := p.Name
		if tag := formatter.CategoryTag(p.Category); tag != "" {
			line += " " + tag
		}
		if active && i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
			line = formatter.Bold(p.Name)
			if tag := formatter.CategoryTag(p.Category); tag != "" {
				line += " " + tag
			}
		}
		b.WriteString(marker + line + "\n")
	}

	style := lipgloss.NewStyle().PaddingRight(3)
	return style.Render(b.String())
}

func (m *boardModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.PrevDay, m.keys.Raise, m.keys.SendNext, m.keys.Delete, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", formatter.Bold(h.Key), formatter.Dim(h.Desc)))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}
