package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/afazeres/internal/report"
)

func plainProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func TestView_EmptyInput(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 80, 24)

	out := m.View()
	for _, want := range []string{"afazeres", "hoje: 14/03/2024", report.Header, report.NothingFound, "esc sair"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Histórico") {
		t.Error("history header should be hidden without entries")
	}
}

func TestView_PreviewLines(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 100, 24)
	m = typeText(t, m, "amanhã às 10:30 comprar pão https://exemplo.com #mercado")

	out := m.View()
	for _, want := range []string{"Data", "15/03/2024", "Horário", "10:30", "Ação", "comprar", "URL", "https://exemplo.com", "Tags", "mercado"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, report.NothingFound) {
		t.Error("nothing-found line should not appear when fields were extracted")
	}
}

func TestView_InvalidDate(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 80, 24)
	m = typeText(t, m, "30/02/2023")

	out := m.View()
	if !strings.Contains(out, "Data inválida") || !strings.Contains(out, "30/2/2023") {
		t.Errorf("view missing invalid date:\n%s", out)
	}
}

func TestView_HistoryNewestFirst(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 80, 30)
	for _, s := range []string{"primeiro hoje", "segundo sem data"} {
		m = typeText(t, m, s)
		m, _ = press(t, m, tea.KeyEnter)
	}

	out := m.View()
	first := strings.Index(out, "primeiro hoje")
	second := strings.Index(out, "segundo sem data")
	if first < 0 || second < 0 {
		t.Fatalf("history entries missing:\n%s", out)
	}
	if second > first {
		t.Error("newest entry should be listed first")
	}
	if !strings.Contains(out, "14/03/2024 primeiro hoje") {
		t.Errorf("dated entry should show its date:\n%s", out)
	}
}

func TestView_HistoryFitsHeight(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 80, 16)
	for i := 0; i < 30; i++ {
		m = typeText(t, m, "tarefa")
		m, _ = press(t, m, tea.KeyEnter)
	}

	if got := lipgloss.Height(m.View()); got > 16 {
		t.Errorf("view height = %d, want at most 16", got)
	}
}

func TestView_LinesFitWidth(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 40, 24)
	m = typeText(t, m, "amanhã enviar relatório para fulano.de.tal@empresa-muito-comprida.com.br #trabalho")
	m, _ = press(t, m, tea.KeyEnter)

	for i, line := range strings.Split(m.View(), "\n") {
		if w := ansi.StringWidth(line); w > 40 {
			t.Errorf("line %d width = %d, want at most 40: %q", i, w, line)
		}
	}
}

func TestView_StatusReplacesHelp(t *testing.T) {
	plainProfile(t)
	m := sized(t, newTestModel(t), 80, 24)
	m.statusMsg = "Histórico limpo"

	out := m.View()
	if !strings.Contains(out, "Histórico limpo") {
		t.Errorf("status missing:\n%s", out)
	}
	if strings.Contains(out, "esc sair") {
		t.Error("help should be hidden while a status is shown")
	}
}

func TestRenderLine_UnknownLabel(t *testing.T) {
	plainProfile(t)
	m := newTestModel(t)
	got := m.styles.RenderLine(report.Line{Label: "Outro", Value: "x"}, 5)
	if got != "Outro: x" {
		t.Errorf("RenderLine = %q, want %q", got, "Outro: x")
	}
}
