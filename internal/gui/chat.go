package gui

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/friendlist/internal/command"
	"github.com/appengine-ltd/friendlist/internal/input"
	uitheme "github.com/appengine-ltd/friendlist/internal/ui/theme"
)

const maxChatLen = 180

// chatBox is the host's chat/command line. It satisfies session.ChatInput.
type chatBox struct {
	text     string
	open     bool
	typing   bool
	cooldown int
}

func (c *chatBox) Text() string { return c.text }
func (c *chatBox) SetText(text string) { c.text = text }
func (c *chatBox) SetCooldown(frames int) { c.cooldown = frames }
func (c *chatBox) SetOpen(open bool) { c.open = open }
func (c *chatBox) Typing() bool { return c.typing }
func (c *chatBox) SetTyping(typing bool) { c.typing = typing }

func (c *chatBox) tick() {
	if c.cooldown > 0 {
		c.cooldown--
	}
}

func (c *chatBox) close() {
	c.text = ""
	c.open = false
	c.typing = false
}

// updateChat runs the chat box for one frame: Enter opens it, text is
// captured while typing, and Enter again submits unless a cooldown is active.
func (ui *gameUI) updateChat() {
	c := ui.chat
	c.tick()
	if !c.typing {
		if ui.chain.Button(buttonSubmit, input.Pressed) && c.cooldown == 0 {
			c.open = true
			c.typing = true
		}
		return
	}
	if ui.chain.Key(rl.KeyEscape, input.Pressed) {
		c.close()
		return
	}
	captureTextInput(&c.text, maxChatLen)
	if ui.chain.Button(buttonSubmit, input.Pressed) && c.cooldown == 0 {
		ui.submitChat()
	}
}

// submitChat pushes the chat line through the friend command hooks around
// the host's own command handling.
func (ui *gameUI) submitChat() {
	if ui.interceptor.BeforeCommand() == command.Skip {
		return
	}
	ui.runHostCommand(strings.TrimSpace(ui.chat.text))
	ui.interceptor.AfterCommand()
	ui.chat.close()
}

func (ui *gameUI) runHostCommand(text string) {
	if text == "" {
		return
	}
	if !strings.HasPrefix(text, "/") {
		ui.social.LogAdd("You: "+text, "white")
		return
	}
	fields := strings.Fields(text)
	switch strings.ToLower(fields[0]) {
	case "/whisper", "/w":
		if len(fields) < 3 {
			ui.social.LogAdd("Usage: /whisper <name> <message>", "grey")
			return
		}
		ui.social.LogAdd(fmt.Sprintf("To %s: %s", fields[1], strings.Join(fields[2:], " ")), "pink")
	case "/help":
		ui.social.LogAdd("Commands: /whisper <name> <message>, /who, /friend <name>, /addfriend <name>", "grey")
		ui.social.LogAdd(fmt.Sprintf("Press %s to open your friend list.", ui.toggle), "grey")
	case "/who":
		var names []string
		for _, inst := range ui.world.ActiveInstances() {
			names = append(names, inst.Name)
		}
		sort.Strings(names)
		ui.social.LogAdd(fmt.Sprintf("%d online: %s", len(names), strings.Join(names, ", ")), "grey")
	default:
		ui.log.Debug("chat command not handled by host")
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}

func drawChatBox(rect rl.Rectangle, c *chatBox) {
	if !c.open {
		uitheme.DrawHintText("Enter to chat", int32(rect.X+uitheme.PaddingS), int32(rect.Y+uitheme.PaddingXS))
		return
	}
	uitheme.DrawPanel(rect, uitheme.PanelLifted)
	text := c.text
	if c.typing {
		text += "_"
	}
	drawText(text, int32(rect.X+uitheme.PaddingS), int32(rect.Y+(rect.Height-float32(typeScale.Body))/2), typeScale.Body, uitheme.TextPrimary)
}
