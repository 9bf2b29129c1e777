// Package session holds the per-player context shared by the friend list
// components: the roster, the logger, and the host collaborators they talk to.
package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/roster"
)

// Notification colors understood by the social log.
const (
	ColorInfo   = "lightblue"
	ColorManual = "yellow"
)

// SocialLog is the host's player-visible message feed.
type SocialLog interface {
	LogAdd(message, color string)
}

// ChatInput is the host's chat/command text box.
type ChatInput interface {
	Text() string
	SetText(text string)
	// SetCooldown makes the box ignore submit for the given number of frames.
	SetCooldown(frames int)
	SetOpen(open bool)
	Typing() bool
	SetTyping(typing bool)
}

type Session struct {
	Log    *zap.Logger
	Roster *roster.Store
	Social SocialLog
	Chat   ChatInput
}

func New(log *zap.Logger, store *roster.Store, social SocialLog, chat ChatInput) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{Log: log, Roster: store, Social: social, Chat: chat}
}

// Notify pushes a line to the social log. Failures are logged, never raised.
func (s *Session) Notify(message, color string) {
	if s.Social == nil {
		s.Log.Debug("no social log; dropping notification", zap.String("message", message))
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			s.Log.Error("push to social log", zap.String("message", message), zap.Any("panic", rec))
		}
	}()
	s.Social.LogAdd(message, color)
}

// AddFriend adds and persists name, then tells the player. It returns the
// trimmed name and whether the roster changed. A failed save keeps the add.
func (s *Session) AddFriend(name, color string) (string, bool) {
	name = strings.TrimSpace(name)
	if !s.Roster.Add(name) {
		return name, false
	}
	_ = s.Roster.Save()
	s.Log.Info("added friend", zap.String("name", name))
	s.Notify(fmt.Sprintf("Added %s to your friend list!", name), color)
	return name, true
}

func (s *Session) RemoveFriend(name string) bool {
	if !s.Roster.Remove(name) {
		return false
	}
	_ = s.Roster.Save()
	s.Log.Info("removed friend", zap.String("name", name))
	s.Notify(fmt.Sprintf("%s has been removed from your friend list.", name), ColorInfo)
	return true
}

// Whisper pre-fills the chat box with a whisper to name and focuses it.
func (s *Session) Whisper(name string) {
	if s.Chat == nil {
		return
	}
	s.Chat.SetText(fmt.Sprintf("/whisper %s ", name))
	s.Chat.SetOpen(true)
	s.Chat.SetTyping(true)
}
