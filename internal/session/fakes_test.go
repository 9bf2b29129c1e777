package session

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

type brokenLog struct{}

func (brokenLog) LogAdd(string, string) { panic("log widget not ready") }

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
