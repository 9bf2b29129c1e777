package command

type logLine struct {
	Message string
	Color   string
}

type socialLog struct {
	lines []logLine
}

func (l *socialLog) LogAdd(message, color string) {
	l.lines = append(l.lines, logLine{Message: message, Color: color})
}

type chatBox struct {
	text     string
	cooldown int
	open     bool
	typing   bool
}

func (c *chatBox) Text() string { return c.text }
func (c *chatBox) SetText(text string) { c.text = text }
func (c *chatBox) SetCooldown(frames int) { c.cooldown = frames }
func (c *chatBox) SetOpen(open bool) { c.open = open }
func (c *chatBox) Typing() bool { return c.typing }
func (c *chatBox) SetTyping(typing bool) { c.typing = typing }

// explodingChat panics on every read, standing in for a host text box that
// has been torn down mid-frame.
type explodingChat struct{ chatBox }

func (explodingChat) Text() string { panic("text input destroyed") }
