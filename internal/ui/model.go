package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("179"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("179"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("179")).Padding(0, 2)
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirm
)

type model struct {
	cfg     AppConfig
	sess    *session.Session
	status  *StatusLine
	watcher *roster.Watcher

	names   []string
	cursor  int
	mode    mode
	input   textinput.Model
	pending string
}

func newModel(cfg AppConfig) model {
	ti := textinput.New()
	ti.Placeholder = "SimPlayer name"
	ti.CharLimit = 64
	status := cfg.Status
	if status == nil {
		status = &StatusLine{}
	}
	m := model{
		cfg:     cfg,
		sess:    cfg.Session,
		status:  status,
		watcher: cfg.Watcher,
		input:   ti,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return pollCmd()
}

func (m *model) refresh() {
	m.names = m.sess.Roster.Names()
	if m.cursor >= len(m.names) {
		m.cursor = len(m.names) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if m.watcher != nil && m.watcher.Poll() {
			m.refresh()
			m.status.LogAdd("Friend list changed on disk.", "grey")
		}
		return m, pollCmd()
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, keys.Remove):
		if len(m.names) > 0 {
			m.pending = m.names[m.cursor]
			m.mode = modeConfirm
		}
	case key.Matches(msg, keys.Reload):
		m.sess.Roster.Reload()
		m.refresh()
		m.status.LogAdd(fmt.Sprintf("Reloaded %d friends.", len(m.names)), "grey")
	}
	return m, nil
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.Submit):
		name := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		if _, added := m.sess.AddFriend(name, session.ColorInfo); !added {
			m.status.LogAdd(fmt.Sprintf("%s is already on your friend list.", name), "grey")
			return m, nil
		}
		m.refresh()
		m.cursor = indexOf(m.names, name)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateConfirm is the y/n step before a removal; nothing else is accepted
// while it is up.
func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		name := m.pending
		m.pending = ""
		m.mode = modeBrowse
		if !m.sess.RemoveFriend(name) {
			m.sess.Log.Debug("friend already gone", zap.String("name", name))
		}
		m.refresh()
	case key.Matches(msg, keys.Cancel):
		m.pending = ""
		m.mode = modeBrowse
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Friends"))
	if m.cfg.Version != "" {
		b.WriteString(dimStyle.Render("  " + m.cfg.Version))
	}
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString(dimStyle.Render("No friends added yet.\nPress a to add a SimPlayer by name."))
		b.WriteString("\n")
	}
	for i, name := range m.names {
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(name) + "\n")
			continue
		}
		b.WriteString("  " + nameStyle.Render(name) + "\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add friend: " + m.input.View() + "\n")
		b.WriteString(dimStyle.Render("enter add  esc cancel") + "\n")
	case modeConfirm:
		prompt := fmt.Sprintf("Confirm Removal\nRemove %s from your friends list?\n\n%s", m.pending, helpLine(keys.Confirm, keys.Cancel))
		b.WriteString(dialogStyle.Render(prompt) + "\n")
	default:
		b.WriteString(dimStyle.Render(helpLine(keys.Up, keys.Down, keys.Add, keys.Remove, keys.Reload, keys.Quit)) + "\n")
	}

	if line := m.status.render(); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	return b.String()
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
