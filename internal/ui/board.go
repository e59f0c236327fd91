// Package ui provides the terminal roadmap board.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackboxhq/roadmap-go/internal/render"
	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// RunBoard starts the read-only kanban browser.
func RunBoard(source string, tasks []roadmap.Task) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("board requires a TTY")
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no tasks to display")
	}
	program := tea.NewProgram(newBoardModel(source, tasks), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// row is a flattened board line: a phase header or a task.
type row struct {
	header string
	task   roadmap.Task
}

func (r row) isHeader() bool {
	return r.header != ""
}

type boardModel struct {
	source string
	rows   []row
	cursor int
	height int
}

func newBoardModel(source string, tasks []roadmap.Task) *boardModel {
	buckets := render.Buckets(tasks)
	var rows []row
	for _, phase := range render.PhaseOrder(buckets) {
		group := buckets[phase]
		if len(group) == 0 {
			continue
		}
		rows = append(rows, row{header: fmt.Sprintf("%s (%d)", phase, len(group))})
		for _, t := range group {
			rows = append(rows, row{task: t})
		}
	}

	m := &boardModel{source: source, rows: rows}
	m.cursor = m.nextTask(-1, 1)
	return m
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if next := m.nextTask(m.cursor, -1); next >= 0 {
				m.cursor = next
			}
		case "down", "j":
			if next := m.nextTask(m.cursor, 1); next >= 0 {
				m.cursor = next
			}
		case "g", "home":
			m.cursor = m.nextTask(-1, 1)
		case "G", "end":
			m.cursor = m.nextTask(len(m.rows), -1)
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
	}
	return m, nil
}

// nextTask returns the index of the next task row from start in the
// given direction, or -1 when there is none.
func (m *boardModel) nextTask(start, dir int) int {
	for i := start + dir; i >= 0 && i < len(m.rows); i += dir {
		if !m.rows[i].isHeader() {
			return i
		}
	}
	return -1
}

func (m *boardModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Roadmap Board — %s\n\n", m.source)

	for i, r := range m.rows {
		if r.isHeader() {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s\n", r.header)
			continue
		}
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s[%s] %s\n", marker, r.task.Status, r.task.Title)
	}

	b.WriteString("\n")
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		if desc := m.rows[m.cursor].task.Description; desc != "" {
			fmt.Fprintf(&b, "%s\n\n", oneLine(desc))
		}
	}
	b.WriteString("↑/↓ move · q quit\n")
	return b.String()
}

// oneLine collapses a description for the detail line, counting runes
// so multibyte text is never split mid-character.
func oneLine(desc string) string {
	s := strings.TrimSpace(strings.ReplaceAll(desc, "\n", " "))
	if r := []rune(s); len(r) > 160 {
		s = string(r[:157]) + "..."
	}
	return s
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
