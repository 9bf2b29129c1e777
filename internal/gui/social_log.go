package gui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/friendlist/internal/ui/theme"
)

const socialLogLimit = 200

type logEntry struct {
	Text  string
	Color string
}

// socialLog is the host's player-visible feed. It satisfies
// session.SocialLog.
type socialLog struct {
	entries []logEntry
	now     func() time.Time
}

func newSocialLog() *socialLog {
	return &socialLog{now: time.Now}
}

func (l *socialLog) LogAdd(message, color string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	l.entries = append(l.entries, logEntry{
		Text:  fmt.Sprintf("[%s] %s", l.now().Format("15:04:05"), line),
		Color: color,
	})
	if len(l.entries) > socialLogLimit {
		l.entries = append([]logEntry(nil), l.entries[len(l.entries)-socialLogLimit:]...)
	}
}

func (l *socialLog) Entries() []logEntry {
	return l.entries
}

// drawSocialLog fills rect bottom-up with the newest entries, wrapping long
// lines.
func drawSocialLog(rect rl.Rectangle, entries []logEntry) {
	uitheme.DrawPanel(rect, uitheme.PanelStandard)
	maxWidth := int32(rect.Width - uitheme.PaddingM*2)
	lineHeight := textLineHeight(typeScale.Log)
	y := int32(rect.Y+rect.Height) - int32(uitheme.PaddingS)
	top := int32(rect.Y + uitheme.PaddingS)
	for i := len(entries) - 1; i >= 0; i-- {
		lines := wrapText(entries[i].Text, typeScale.Log, maxWidth)
		clr := uitheme.NamedColor(entries[i].Color)
		for j := len(lines) - 1; j >= 0; j-- {
			if y-lineHeight < top {
				return
			}
			y -= lineHeight
			drawText(lines[j], int32(rect.X+uitheme.PaddingM), y, typeScale.Log, clr)
		}
	}
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
