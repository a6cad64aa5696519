package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/AdrienGallet/unitcalc/internal/catalog"
	"github.com/AdrienGallet/unitcalc/internal/quantity"
)

const historyCapacity = 64

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// Model is the interactive converter: type a shorthand declaration, then
// cycle through the family's units to convert it.
type Model struct {
	input     string
	current   *quantity.Quantity
	family    *catalog.Family
	targetIdx int
	err       error
	history   []float64
	width     int
}

func NewModel() Model {
	return Model{width: 80}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
		case tea.KeyBackspace:
			if runes := []rune(m.input); len(runes) > 0 {
				m.input = string(runes[:len(runes)-1])
			}
		case tea.KeyTab, tea.KeyRight:
			m.cycleTarget(1)
		case tea.KeyShiftTab, tea.KeyLeft:
			m.cycleTarget(-1)
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *Model) submit() {
	if strings.TrimSpace(m.input) == "" {
		return
	}
	q, err := quantity.Parse(m.input)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.current = q
	m.input = ""
	m.family = nil
	m.targetIdx = 0
	if f, ok := catalog.Default().BySymbol(q.Unit()); ok {
		m.family = f
		for i, sym := range f.Symbols {
			if sym == q.Unit() {
				m.targetIdx = i
				break
			}
		}
	}

	m.history = append(m.history, q.BaseValue())
	if len(m.history) > historyCapacity {
		m.history = m.history[len(m.history)-historyCapacity:]
	}
}

func (m *Model) cycleTarget(dir int) {
	if m.family == nil {
		return
	}
	n := len(m.family.Symbols)
	m.targetIdx = (m.targetIdx + dir + n) % n
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("unitcalc converter"))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render("> " + m.input + "█"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.current != nil {
		b.WriteString(m.renderQuantity())
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(min(m.width-10, 70)),
			asciigraph.Caption("base magnitude history"))
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: evaluate • tab/←→: cycle unit • esc: quit"))
	return b.String()
}

func (m Model) renderQuantity() string {
	q := m.current
	rows := []string{
		labelStyle.Render("quantity") + valueStyle.Render(q.String()),
		labelStyle.Render("base") + valueStyle.Render(fmt.Sprintf("%v%s", q.BaseValue(), q.BaseUnit())),
	}

	if m.family == nil {
		rows = append(rows,
			labelStyle.Render("family")+valueStyle.Render("synthesized"),
			labelStyle.Render("dimension")+valueStyle.Render(q.Dim().String()))
		return panelStyle.Render(strings.Join(rows, "\n"))
	}

	rows = append(rows, labelStyle.Render("family")+valueStyle.Render(m.family.Name))

	target := m.family.Symbols[m.targetIdx]
	converted, err := q.ConvertValue(target)
	if err == nil {
		rows = append(rows, labelStyle.Render("converted")+activeStyle.Render(fmt.Sprintf("%v%s", converted, target)))
	}

	units := make([]string, len(m.family.Symbols))
	for i, sym := range m.family.Symbols {
		label := sym
		if label == "" {
			label = "·"
		}
		if i == m.targetIdx {
			units[i] = activeStyle.Render("[" + label + "]")
		} else {
			units[i] = valueStyle.Render(label)
		}
	}
	rows = append(rows, labelStyle.Render("units")+strings.Join(units, " "))

	return panelStyle.Render(strings.Join(rows, "\n"))
}

// Run starts the interactive converter.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
