package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/enumlayout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateList modelState = iota
	stateJump
	stateDetail
)

type dumpModel struct {
	err      error
	filename string
	size     int
	instrs   []enumlayout.Instruction
	selected int
	jump     textinput.Model
	state    modelState
}

func newDumpModel(filename string) *dumpModel {
	ti := textinput.New()
	ti.Placeholder = "offset"
	ti.Prompt = "jump to: "
	ti.Width = 20
	return &dumpModel{filename: filename, jump: ti, state: stateList}
}

type loadedMsg struct {
	err    error
	size   int
	instrs []enumlayout.Instruction
}

func (m *dumpModel) Init() tea.Cmd {
	return m.load
}

func (m *dumpModel) load() tea.Msg {
	buf, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	instrs, err := enumlayout.Disassemble(buf, bytecode.HeaderSize)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{size: len(buf), instrs: instrs}
}

func (m *dumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateList {
				m.state = stateList
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.instrs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateList:
				if len(m.instrs) > 0 {
					m.state = stateDetail
				}
			case stateJump:
				if off, err := strconv.Atoi(m.jump.Value()); err == nil {
					m.selectNearest(off)
				}
				m.state = stateList
			case stateDetail:
				m.state = stateList
			}

		case "/":
			if m.state == stateList {
				m.jump.SetValue("")
				m.jump.Focus()
				m.state = stateJump
			}

		case "esc":
			m.state = stateList
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.size = msg.size
		m.instrs = msg.instrs
	}

	if m.state == stateJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	return m, nil
}

// selectNearest moves the cursor to the last instruction whose offset is
// not past off, since an offset a user types rarely lands exactly on an
// instruction boundary.
func (m *dumpModel) selectNearest(off int) {
	for i, in := range m.instrs {
		if in.Offset > off {
			break
		}
		m.selected = i
	}
}

func (m *dumpModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.instrs == nil {
		return "Loading layout..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Dump"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%s (%d bytes)", m.filename, m.size))
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateJump:
		for i, in := range m.instrs {
			line := formatLine(in)
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + line))
			} else {
				b.WriteString(cursor + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateJump {
			b.WriteString(m.jump.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter confirm • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / jump to offset • q quit"))
		}

	case stateDetail:
		in := m.instrs[m.selected]
		b.WriteString(fmt.Sprintf("Instruction at %s\n\n", kindStyle.Render(fmt.Sprintf("%d", in.Offset))))
		b.WriteString(detailStyle.Render(fmt.Sprintf("kind:  %s\n", in.Kind)))
		b.WriteString(detailStyle.Render(fmt.Sprintf("gap:   %d\n", in.Gap)))
		b.WriteString(detailStyle.Render(fmt.Sprintf("depth: %d\n", in.Depth)))
		if in.Detail != "" {
			b.WriteString(detailStyle.Render(fmt.Sprintf("extra: %s\n", in.Detail)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc/q back"))
	}

	return b.String()
}

func formatLine(in enumlayout.Instruction) string {
	indent := strings.Repeat("  ", in.Depth)
	return fmt.Sprintf("%s%4d  %s  %s",
		indent,
		in.Offset,
		kindStyle.Render(fmt.Sprintf("%-28s", in.Kind)),
		gapStyle.Render(fmt.Sprintf("gap=%d", in.Gap)))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newDumpModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
