package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tiptop/internal/calculator"
	"github.com/mmynk/tiptop/internal/form"
)

// Input order, also the focus order
const (
	inputBill = iota
	inputTip
	inputPeople
	inputCount
)

// presetKeys maps a key to the index of the preset it selects.
var presetKeys = map[string]int{
	"f1": 0, "f2": 1, "f3": 2, "f4": 3, "f5": 4,
	"alt+1": 0, "alt+2": 1, "alt+3": 2, "alt+4": 3, "alt+5": 4,
}

// Model is the tip calculator TUI model
type Model struct {
	form    *form.Form
	inputs  []textinput.Model
	focused int

	// Window size
	width  int
	height int

	styles Styles
}

// Styles contains all lipgloss styles
type Styles struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Label          lipgloss.Style
	Preset         lipgloss.Style
	PresetSelected lipgloss.Style
	Results        lipgloss.Style
	ResultLabel    lipgloss.Style
	PerPerson      lipgloss.Style
	Amount         lipgloss.Style
	Help           lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#166534")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#166534")),
		Label: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		Preset: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#166534")).
			Background(lipgloss.Color("#BBF7D0")).
			Padding(0, 1).
			MarginRight(1),
		PresetSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#16A34A")).
			Bold(true).
			Padding(0, 1).
			MarginRight(1),
		Results: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#166534")).
			Padding(1, 2).
			MarginTop(1),
		ResultLabel: lipgloss.NewStyle().
			Width(14),
		PerPerson: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#86EFAC")).
			Width(10),
		Amount: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ADE80")).
			Align(lipgloss.Right).
			Width(14),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1),
	}
}

// NewModel creates a widget showing the defaults, with the bill field focused.
func NewModel() Model {
	f := form.New()

	newInput := func(prompt, placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = prompt
		ti.Placeholder = placeholder
		ti.CharLimit = 32
		ti.Width = 20
		return ti
	}

	inputs := make([]textinput.Model, inputCount)
	inputs[inputBill] = newInput("$ ", "0")
	inputs[inputTip] = newInput("% ", "Custom")
	inputs[inputPeople] = newInput("# ", "1")

	m := Model{
		form:   f,
		inputs: inputs,
		styles: defaultStyles(),
	}
	m.syncInputs()
	m.inputs[inputBill].Focus()
	return m
}

// Form exposes the state holder backing the widget.
func (m Model) Form() *form.Form {
	return m.form
}

// Result is the calculation currently on screen.
func (m Model) Result() calculator.Result {
	return m.form.Result()
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKeyPress(msg); handled {
			return next, cmd
		}
	}

	// Update the focused input and copy its text into the form
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.storeInput(m.focused)
	return m, cmd
}

// handleKeyPress processes keys the widget owns; anything else goes to the focused input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "esc":
		return m, tea.Quit, true

	case "tab", "down", "enter":
		return m, m.focus((m.focused + 1) % inputCount), true

	case "shift+tab", "up":
		return m, m.focus((m.focused + inputCount - 1) % inputCount), true

	case "ctrl+r":
		m.form.Reset()
		m.syncInputs()
		slog.Debug("Widget reset")
		return m, nil, true
	}

	if idx, ok := presetKeys[key]; ok {
		presets := calculator.Presets()
		if idx < len(presets) {
			if err := m.form.SelectPreset(presets[idx]); err != nil {
				slog.Warn("Preset selection failed", "preset", presets[idx], "error", err)
			}
			m.syncInputs()
		}
		return m, nil, true
	}

	return m, nil, false
}

func (m *Model) focus(i int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m.inputs[i].Focus()
}

// storeInput copies the text of one input into the form.
func (m *Model) storeInput(i int) {
	value := m.inputs[i].Value()
	in := m.form.Inputs()
	switch i {
	case inputBill:
		if value != in.Bill {
			m.form.SetBill(value)
		}
	case inputTip:
		if value != in.TipPercentage {
			m.form.SetTipPercentage(value)
		}
	case inputPeople:
		if value != in.PartyCount {
			m.form.SetPartyCount(value)
		}
	}
}

// syncInputs copies the form back into the inputs after a preset or reset.
func (m *Model) syncInputs() {
	in := m.form.Inputs()
	m.inputs[inputBill].SetValue(in.Bill)
	m.inputs[inputTip].SetValue(in.TipPercentage)
	m.inputs[inputPeople].SetValue(in.PartyCount)
}

// View renders the UI
func (m Model) View() string {
	title := m.styles.Title.Render("TipTop")
	subtitle := m.styles.Subtitle.Render("Split your bill with TipTop!")

	fields := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Label.Render("Bill"),
		m.inputs[inputBill].View(),
		m.styles.Label.Render("Select Tip %"),
		m.renderPresets(),
		m.inputs[inputTip].View(),
		m.styles.Label.Render("Number of People"),
		m.inputs[inputPeople].View(),
	)

	result := m.form.Result()
	results := m.styles.Results.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderResultRow("Pre-Tip", result.PreTip),
		m.renderResultRow("Tip Amount", result.Tip),
		m.renderResultRow("Total", result.Total),
	))

	help := m.styles.Help.Render(
		"[tab] Next field  [f1-f5] Tip preset  [ctrl+r] Reset  [esc] Quit",
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, fields, "    ", results)
	if m.width > 0 && m.width < lipgloss.Width(body) {
		body = lipgloss.JoinVertical(lipgloss.Left, fields, results)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		body,
		help,
	)
}

func (m Model) renderPresets() string {
	selected, ok := m.form.SelectedPreset()

	var b strings.Builder
	for i, p := range calculator.Presets() {
		label := fmt.Sprintf("F%d %d%%", i+1, p)
		if ok && p == selected {
			b.WriteString(m.styles.PresetSelected.Render(label))
		} else {
			b.WriteString(m.styles.Preset.Render(label))
		}
	}
	return b.String()
}

func (m Model) renderResultRow(label, amount string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.ResultLabel.Render(label),
		m.styles.PerPerson.Render("/ person"),
		m.styles.Amount.Render(formatCurrency(amount)),
	)
}

func formatCurrency(amount string) string {
	return "$" + amount
}
