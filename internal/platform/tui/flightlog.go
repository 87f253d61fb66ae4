package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

// maxLogEntries is the most flights loaded into the table at once.
const maxLogEntries = 100

// FlightLogKeyMap defines the key bindings for the flight log screen.
type FlightLogKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k FlightLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k FlightLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultFlightLogKeyMap returns default key bindings.
func DefaultFlightLogKeyMap() FlightLogKeyMap {
	return FlightLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FlightLogModel is the Bubble Tea model for browsing the flight log.
type FlightLogModel struct {
	store      *storage.Store
	table      table.Model
	keys       FlightLogKeyMap
	help       help.Model
	showRecent bool
	loadErr    error
	quitting   bool
}

// NewFlightLogModel creates the flight log screen backed by the given store.
func NewFlightLogModel(store *storage.Store) FlightLogModel {
	columns := []table.Column{
		{Title: "Result", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Speed m/s", Width: 10},
		{Title: "Pad m", Width: 7},
		{Title: "Fuel kg", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m := FlightLogModel{
		store: store,
		table: t,
		keys:  DefaultFlightLogKeyMap(),
		help:  help.New(),
	}
	m.reload()
	return m
}

// reload fetches the selected view from the store into the table.
func (m *FlightLogModel) reload() {
	var (
		entries []storage.FlightEntry
		err     error
	)
	if m.showRecent {
		entries, err = m.store.RecentFlights(maxLogEntries)
	} else {
		entries, err = m.store.TopFlights(maxLogEntries)
	}
	if err != nil {
		m.loadErr = err
		return
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		result := "crashed"
		if e.Landed {
			result = "landed"
		}
		rows = append(rows, table.Row{
			result,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%.1f", e.TouchdownSpeed),
			fmt.Sprintf("%.0f", e.PadDistance),
			fmt.Sprintf("%.0f", e.FuelRemaining),
			fmt.Sprintf("%.0fs", e.Duration),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the flight log model.
func (m FlightLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the flight log screen.
func (m FlightLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.showRecent = !m.showRecent
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the flight log screen.
func (m FlightLogModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Error loading flight log: %v\n", m.loadErr)
	}

	title := "Flight Log - Best"
	if m.showRecent {
		title = "Flight Log - Recent"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(title),
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunFlightLog starts the interactive flight log browser.
func RunFlightLog(store *storage.Store) error {
	p := tea.NewProgram(NewFlightLogModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
