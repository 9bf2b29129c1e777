// Package ui is the terminal roster manager: the same add and confirm-remove
// flows as the in-game window, driven from the keyboard.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
)

type AppConfig struct {
	Version string
	Session *session.Session
	Status  *StatusLine
	// Watcher is optional; when set the list follows edits made elsewhere.
	Watcher *roster.Watcher
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

const pollInterval = 500 * time.Millisecond

type pollMsg struct{}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}
