package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/locale"
	"github.com/junglivre/nomoject/internal/regstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecords = []device.Record{
	device.NewRecord(device.DefaultRoot, "VEN_8086&DEV_A282", "3&11583659&0&B8", "Intel SATA Controller"),
	device.NewRecord(device.DefaultRoot, "VEN_10EC&DEV_8168", "4&1A2B3C&0&00E0", "Realtek Ethernet"),
	device.NewRecord(device.DefaultRoot, "VEN_1B21&DEV_2142", "4&2C3D4E&0&00E4", "ASMedia USB 3.1"),
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

// loaded returns a model that has finished its first scan.
func loaded(t *testing.T, scans ...[]device.Record) (*Model, *int) {
	t.Helper()
	calls := 0
	scan := func() ([]device.Record, error) {
		i := calls
		calls++
		if i < len(scans) {
			return scans[i], nil
		}
		return scans[len(scans)-1], nil
	}

	m := New(scan, locale.English)
	send(t, m, m.load()())
	require.False(t, m.loading)
	return m, &calls
}

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_InitialLoad(t *testing.T) {
	m, calls := loaded(t, testRecords)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, testRecords, m.Records())
	assert.Empty(t, m.Selection())
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Intel SATA Controller")
	assert.Contains(t, m.View(), "0 of 3 selected")
}

func TestModel_ToggleAndSelectionOrder(t *testing.T) {
	m, _ := loaded(t, testRecords)

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	send(t, m, space())
	send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	send(t, m, runes("x"))

	sel := m.Selection()
	require.Len(t, sel, 2)
	assert.Equal(t, "Intel SATA Controller", sel[0].Description)
	assert.Equal(t, "ASMedia USB 3.1", sel[1].Description)

	send(t, m, runes("x"))
	assert.Len(t, m.Selection(), 1)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, _ := loaded(t, testRecords)

	send(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		send(t, m, runes("j"))
	}
	assert.Equal(t, len(testRecords)-1, m.cursor)
}

func TestModel_ToggleAll(t *testing.T) {
	m, _ := loaded(t, testRecords)

	send(t, m, runes("a"))
	assert.Len(t, m.Selection(), 3)

	send(t, m, runes("a"))
	assert.Empty(t, m.Selection())

	send(t, m, space())
	send(t, m, runes("a"))
	assert.Len(t, m.Selection(), 3)
}

func TestModel_ConfirmRequiresSelection(t *testing.T) {
	m, _ := loaded(t, testRecords)

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(cmd))
	assert.False(t, m.Confirmed())
	assert.Contains(t, m.View(), "Please select at least one device.")

	send(t, m, space())
	assert.NotContains(t, m.View(), "Please select at least one device.")

	cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Confirmed())
	assert.Len(t, m.Selection(), 1)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runes("q"),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m, _ := loaded(t, testRecords)
		send(t, m, space())
		assert.True(t, isQuit(send(t, m, msg)), msg.String())
		assert.False(t, m.Confirmed())
	}
}

func TestModel_RefreshReplacesListAndClearsSelection(t *testing.T) {
	m, calls := loaded(t, testRecords, testRecords[1:])

	send(t, m, runes("a"))
	send(t, m, runes("j"))
	require.Len(t, m.Selection(), 3)

	cmd := send(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Loading devices...")

	// Input is ignored while the scan is in flight.
	send(t, m, runes("a"))

	send(t, m, m.load()())
	assert.Equal(t, 2, *calls)
	assert.Equal(t, testRecords[1:], m.Records())
	assert.Empty(t, m.Selection())
	assert.Equal(t, 0, m.cursor)
}

func TestModel_LanguageSwitch(t *testing.T) {
	m, _ := loaded(t, testRecords)

	send(t, m, runes("l"))
	assert.Equal(t, locale.PortugueseBR, m.Locale())
	assert.Contains(t, m.View(), "Selecione os dispositivos")
	assert.Contains(t, m.View(), "0 de 3 selecionado(s)")

	send(t, m, runes("l"))
	assert.Equal(t, locale.English, m.Locale())
}

func TestModel_ScanErrors(t *testing.T) {
	accessErr := &device.AccessError{Root: device.DefaultRoot, Err: regstore.ErrAccessDenied}
	m := New(func() ([]device.Record, error) { return nil, accessErr }, locale.English)
	send(t, m, m.load()())

	assert.ErrorIs(t, m.Err(), regstore.ErrAccessDenied)
	assert.Contains(t, m.View(), "Failed to access registry:")

	m = New(func() ([]device.Record, error) { return nil, errors.New("boom") }, locale.English)
	send(t, m, m.load()())
	assert.Contains(t, m.View(), "Error loading devices: boom")
}

func TestModel_EmptyList(t *testing.T) {
	m, _ := loaded(t, []device.Record{})

	assert.Contains(t, m.View(), "No removable devices found.")
	send(t, m, space())
	send(t, m, runes("a"))
	assert.Empty(t, m.Selection())
}
