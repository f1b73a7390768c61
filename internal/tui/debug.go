package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/afazeres/internal/debuglog"
	"github.com/javiermolinar/afazeres/internal/extract"
)

// logKeyPress logs a keystroke to the debug log.
func logKeyPress(msg tea.KeyMsg) {
	debuglog.L().Debug("key_press",
		zap.String("key", msg.String()),
		zap.Int("type", int(msg.Type)),
	)
}

// logSaved logs an entry saved to the history.
func logSaved(r extract.Result) {
	debuglog.LogExtract("tui", r)
}
