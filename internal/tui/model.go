// Package tui is the interactive device checklist.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/locale"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaComment    = "#6272A4"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true)
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground))
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPurple)).
			Bold(true)
	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true)
	appStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaCyan))
)

// ScanFunc produces the current list of removable devices.
type ScanFunc func() ([]device.Record, error)

type scanMsg struct {
	records []device.Record
	err     error
}

// Model is a checklist of removable devices. Every refresh replaces the
// list and clears the selection.
type Model struct {
	scan    ScanFunc
	records []device.Record
	checked map[int]bool
	cursor  int

	loc     locale.Locale
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	loading   bool
	err       error
	notice    locale.Key
	confirmed bool
}

// New returns a model that loads its list with scan once started.
func New(scan ScanFunc, loc locale.Locale) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))

	return &Model{
		scan:    scan,
		checked: make(map[int]bool),
		loc:     loc,
		keys:    newKeyMap(loc),
		help:    help.New(),
		spinner: s,
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *Model) load() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		records, err := scan()
		return scanMsg{records: records, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanMsg:
		m.loading = false
		m.err = msg.err
		m.records = msg.records
		m.checked = make(map[int]bool)
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Language) {
		m.loc = m.loc.Next()
		m.keys = newKeyMap(m.loc)
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(m.records) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.toggleAll()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.load())
	case key.Matches(msg, m.keys.Confirm):
		if len(m.Selection()) == 0 {
			m.notice = locale.MsgSelectAtLeastOne
			return m, nil
		}
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) toggleAll() {
	all := len(m.records) > 0 && len(m.Selection()) == len(m.records)
	m.checked = make(map[int]bool)
	if all {
		return
	}
	for i := range m.records {
		m.checked[i] = true
	}
}

// Selection returns the checked records in list order.
func (m *Model) Selection() []device.Record {
	var out []device.Record
	for i, r := range m.records {
		if m.checked[i] {
			out = append(out, r)
		}
	}
	return out
}

// Confirmed reports whether the user accepted the selection.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Locale is the language shown when the model stopped; the user may have
// switched it.
func (m *Model) Locale() locale.Locale {
	return m.loc
}

// Records is the list as of the last scan.
func (m *Model) Records() []device.Record {
	return m.records
}

// Err is the failure of the last scan, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) text(k locale.Key) string {
	return locale.Localize(k, m.loc)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.text(locale.MsgAppTitle)) + "\n")
	b.WriteString(subtitleStyle.Render(m.text(locale.MsgSelectDevices)) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + m.text(locale.MsgLoadingDevices) + "\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.errorText()) + "\n")
	case len(m.records) == 0:
		b.WriteString(mutedStyle.Render(m.text(locale.MsgNoDevices)) + "\n")
	default:
		for i, r := range m.records {
			b.WriteString(m.row(i, r) + "\n")
		}
		b.WriteString("\n" + mutedStyle.Render(
			locale.Localizef(m.loc, locale.MsgSelectedCount, len(m.Selection()), len(m.records))) + "\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.text(m.notice)) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return appStyle.Render(b.String())
}

func (m *Model) row(i int, r device.Record) string {
	pointer := "  "
	if i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}

	box := "[ ]"
	if m.checked[i] {
		box = checkedStyle.Render("[x]")
	}

	label := r.Description
	if i == m.cursor {
		label = cursorStyle.Render(label)
	}

	return fmt.Sprintf("%s%s %s %s", pointer, box, label,
		mutedStyle.Render(r.VendorKey+`\`+r.InstanceKey))
}

func (m *Model) errorText() string {
	var accessErr *device.AccessError
	if errors.As(m.err, &accessErr) {
		return locale.Localizef(m.loc, locale.MsgRegistryAccess, accessErr.Err)
	}
	return fmt.Sprintf("%s: %v", m.text(locale.MsgErrorLoading), m.err)
}

// Run shows the checklist on the terminal until the user confirms or quits.
func Run(scan ScanFunc, loc locale.Locale) (*Model, error) {
	p := tea.NewProgram(New(scan, loc), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*Model), nil
}
