package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/afazeres/internal/report"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logKeyPress(msg)

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.save()

	case "ctrl+y":
		return m.copyReport()

	case "ctrl+l":
		m.history = nil
		m.recall = -1
		return m.setStatus("Histórico limpo")

	case "up":
		m.recallEntry(-1)
		return m, nil

	case "down":
		m.recallEntry(1)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recall = -1
		m.refreshPreview()
	}
	return m, cmd
}

// save appends the current input to the history and clears it.
func (m Model) save() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.input.Value()) == "" {
		return m, nil
	}

	m.refreshPreview()
	m.history = append(m.history, entry{result: m.preview, saved: m.nowFunc()})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	logSaved(m.preview)

	m.input.Reset()
	m.recall = -1
	m.refreshPreview()
	return m, nil
}

// copyReport copies the report of the current input, or of the last saved
// entry when the input is empty.
func (m Model) copyReport() (tea.Model, tea.Cmd) {
	r := m.preview
	if strings.TrimSpace(m.input.Value()) == "" {
		if len(m.history) == 0 {
			return m.setStatus("Nada para copiar")
		}
		r = m.history[len(m.history)-1].result
	}

	if err := copyToClipboard(report.Text(r, m.dateLayout())); err != nil {
		return m.setStatus(fmt.Sprintf("Falha ao copiar: %v", err))
	}
	return m.setStatus("Copiado para a área de transferência")
}

// recallEntry moves through the history, loading the entry text into the input.
// delta -1 goes to older entries, +1 to newer ones.
func (m *Model) recallEntry(delta int) {
	if len(m.history) == 0 {
		return
	}

	next := m.recall
	switch {
	case next == -1 && delta < 0:
		next = len(m.history) - 1
	case next == -1:
		return
	default:
		next += delta
	}

	if next >= len(m.history) {
		m.recall = -1
		m.input.Reset()
		m.refreshPreview()
		return
	}
	if next < 0 {
		next = 0
	}

	m.recall = next
	m.input.SetValue(m.history[next].result.Text)
	m.input.CursorEnd()
	m.refreshPreview()
}

// setStatus shows msg in the footer for a few seconds.
func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(statusDuration)
	return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
