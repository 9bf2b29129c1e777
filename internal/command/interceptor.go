package command

import (
	"strings"

	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/session"
)

// Verdict tells the host whether to run its own command handling.
type Verdict int

const (
	Proceed Verdict = iota
	Skip
)

func (v Verdict) String() string {
	if v == Skip {
		return "skip"
	}
	return "proceed"
}

// inputCooldownFrames is how long the chat box ignores submit after an
// /addfriend has been swallowed.
const inputCooldownFrames = 10

// Interceptor watches the text the host is about to treat as a chat command.
// The host calls BeforeCommand ahead of its own handling and AfterCommand once
// it is done, both on the frame goroutine.
type Interceptor struct {
	sess *session.Session
	log  *zap.Logger
}

func NewInterceptor(sess *session.Session) *Interceptor {
	return &Interceptor{sess: sess, log: sess.Log.Named("command")}
}

// BeforeCommand handles "/addfriend <name>". On a match it adds the friend,
// resets the chat box and returns Skip so the host ignores the text.
func (i *Interceptor) BeforeCommand() (verdict Verdict) {
	defer func() {
		if rec := recover(); rec != nil {
			i.log.Error("addfriend hook", zap.Any("panic", rec), zap.Stack("stack"))
			verdict = Proceed
		}
	}()

	chat := i.sess.Chat
	if chat == nil {
		return Proceed
	}
	text := chat.Text()
	if !strings.HasPrefix(text, AddFriendPrefix) {
		return Proceed
	}
	if name, ok := ParseFriendCommand(text, AddFriendPrefix); ok {
		if _, added := i.sess.AddFriend(name, session.ColorManual); added {
			i.log.Info("manually added friend", zap.String("name", name))
		}
	} else {
		i.log.Debug("addfriend without a name", zap.String("text", text))
	}

	chat.SetText("")
	chat.SetCooldown(inputCooldownFrames)
	chat.SetOpen(false)
	chat.SetTyping(false)
	return Skip
}

// AfterCommand handles "/friend <name>" once the host has processed the text.
// It never touches the chat box.
func (i *Interceptor) AfterCommand() {
	defer func() {
		if rec := recover(); rec != nil {
			i.log.Error("friend hook", zap.Any("panic", rec), zap.Stack("stack"))
		}
	}()

	chat := i.sess.Chat
	if chat == nil {
		return
	}
	text := chat.Text()
	if text == "" {
		return
	}
	i.log.Debug("command detected", zap.String("text", text))

	name, ok := ParseFriendCommand(text, FriendPrefix)
	if !ok {
		if cmd, miss := nearMiss(text); miss {
			i.log.Debug("possible friend command typo", zap.String("text", text), zap.String("did_you_mean", "/"+cmd))
		}
		return
	}
	i.sess.AddFriend(name, session.ColorInfo)
}
