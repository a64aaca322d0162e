// Package monitor implements an interactive single-step debugger over a
// computer.Computer, grounded on hejops-gone's cpu.Debug bubbletea model:
// a model wrapping the machine, a key-driven Update that advances one
// tick per keypress, and a View rendering registers plus a window of RAM.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nandgate/hack16/computer"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type model struct {
	comp   *computer.Computer
	ticks  int
	window int // first RAM address shown in the memory pane
	err    error
}

// Init returns no initial command: the Computer is already constructed by
// the caller with its ROM loaded.
func (m model) Init() tea.Cmd {
	return nil
}

// Update advances the machine by one tick on space/"j", resets it on "r",
// and quits on "q" or a tick error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		if err := m.comp.Tick(false); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.ticks++
	case "r":
		if err := m.comp.Tick(true); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.ticks++
	}
	return m, nil
}

func (m model) registers() string {
	return fmt.Sprintf(
		"%s\n PC: %5d\n  A: %5d\n  D: %5d\nOutM: %5d\nAddressM: %5d\nWriteM: %v\nticks: %d",
		headerStyle.Render("registers"),
		m.comp.CPU.PC.Out().Uint16(),
		m.comp.CPU.A.Out().Uint16(),
		m.comp.CPU.D.Out().Uint16(),
		m.comp.OutM.Uint16(),
		addrInt(m.comp.AddressM),
		m.comp.WriteM,
		m.ticks,
	)
}

func addrInt(addr [15]bool) int {
	n := 0
	for _, b := range addr {
		n <<= 1
		if b {
			n |= 1
		}
	}
	return n
}

func (m model) memoryWindow() string {
	lines := []string{headerStyle.Render(fmt.Sprintf("RAM [%d..%d]", m.window, m.window+7))}
	for i := 0; i < 8; i++ {
		addr := addrOf(m.window + i)
		word, err := m.comp.Mem.Peek(addr)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%5d: <invalid>", m.window+i))
			continue
		}
		lines = append(lines, fmt.Sprintf("%5d: %5d", m.window+i, word.Uint16()))
	}
	return strings.Join(lines, "\n")
}

func addrOf(n int) [15]bool {
	var a [15]bool
	for i := 14; i >= 0; i-- {
		a[i] = n&1 == 1
		n >>= 1
	}
	return a
}

// View renders the registers pane beside a small RAM window, plus any
// error from the last tick.
func (m model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.registers(), "   ", m.memoryWindow())
	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, body, "", errorStyle.Render(m.err.Error()))
	}
	return body
}

// Run starts the interactive monitor over comp. Space/"j" steps one tick,
// "r" steps with reset asserted, "q" quits.
func Run(comp *computer.Computer) error {
	finalModel, err := tea.NewProgram(model{comp: comp}).Run()
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
