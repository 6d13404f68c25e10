package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matchthree/internal/config"
	"github.com/vovakirdan/matchthree/internal/core"
)

// PresetMenuModel lets users choose a board preset before playing.
type PresetMenuModel struct {
	presets   []config.Preset
	table     table.Model
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.Preset
	choosing  bool
	quitting  bool
}

// NewPresetMenuModel creates a new preset selection model.
func NewPresetMenuModel(width, height int) PresetMenuModel {
	presets := config.Presets()

	rows := make([]table.Row, 0, len(presets))
	for _, p := range presets {
		cfg := config.DefaultMatchThreeConfig()
		config.ApplyPreset(&cfg, p)
		size := strconv.Itoa(cfg.Board.Size)
		rows = append(rows, table.Row{string(p), size + "x" + size, strconv.Itoa(cfg.Board.Variants)})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Preset", Width: 10},
			{Title: "Board", Width: 8},
			{Title: "Kinds", Width: 6},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return PresetMenuModel{
		presets:   presets,
		table:     t,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PresetMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PresetMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionSelect:
		m.selected = m.presets[m.table.Cursor()]
		m.choosing = false
		return m, tea.Quit
	case MenuActionUp:
		m.table.MoveUp(1)
		return m, nil
	case MenuActionDown:
		m.table.MoveDown(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the preset selection.
func (m PresetMenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M A T C H   T H R E E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board:", m.width))
	b.WriteString("\n\n")

	box := tableStyle.Render(m.table.View())
	pad := (m.width - lipgloss.Width(box)) / 2
	b.WriteString(lipgloss.NewStyle().PaddingLeft(max(pad, 0)).Render(box))
	b.WriteString("\n\n")

	desc := m.presets[m.table.Cursor()].Description()
	b.WriteString(centerText(desc, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Play  |  Esc/Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m PresetMenuModel) Selected() (config.Preset, bool) {
	if m.choosing {
		return "", false
	}
	return m.selected, true
}

// IsQuitting returns true if user wants to quit.
func (m PresetMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunPresetSelector runs the preset selection and returns the choice.
// ok is false when the user quit without choosing.
func RunPresetSelector(cfg core.RuntimeConfig) (preset config.Preset, ok bool, err error) {
	model := NewPresetMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := finalModel.(PresetMenuModel)
	if !isMenu || m.IsQuitting() {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
