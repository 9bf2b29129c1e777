package ui

import "github.com/charmbracelet/lipgloss"

// StatusLine shows the latest notification under the list. It satisfies
// session.SocialLog.
type StatusLine struct {
	Text  string
	Color string
}

func (s *StatusLine) LogAdd(message, color string) {
	s.Text = message
	s.Color = color
}

var statusColors = map[string]lipgloss.Color{
	"lightblue": lipgloss.Color("117"),
	"yellow":    lipgloss.Color("228"),
	"red":       lipgloss.Color("203"),
	"grey":      lipgloss.Color("245"),
	"gray":      lipgloss.Color("245"),
}

func (s *StatusLine) render() string {
	if s == nil || s.Text == "" {
		return ""
	}
	style := lipgloss.NewStyle()
	if c, ok := statusColors[s.Color]; ok {
		style = style.Foreground(c)
	}
	return style.Render(s.Text)
}
