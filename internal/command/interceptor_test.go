package command

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
)

func newTestInterceptor(t *testing.T) (*Interceptor, *session.Session, *socialLog, *chatBox) {
	t.Helper()
	store := roster.NewStore(filepath.Join(t.TempDir(), "FriendList.txt"), zap.NewNop())
	social := &socialLog{}
	chat := &chatBox{open: true, typing: true}
	sess := session.New(zap.NewNop(), store, social, chat)
	return NewInterceptor(sess), sess, social, chat
}

func TestParseFriendCommand(t *testing.T) {
	tests := []struct {
		text   string
		prefix string
		want   string
		wantOK bool
	}{
		{text: "/friend   Alice", prefix: FriendPrefix, want: "Alice", wantOK: true},
		{text: "/friend Mörk the Bold ", prefix: FriendPrefix, want: "Mörk the Bold", wantOK: true},
		{text: "/friend ", prefix: FriendPrefix},
		{text: "/friend    ", prefix: FriendPrefix},
		{text: "/friend", prefix: FriendPrefix},
		{text: "/Friend Alice", prefix: FriendPrefix},
		{text: "hello /friend Alice", prefix: FriendPrefix},
		{text: "/addfriend Bob", prefix: AddFriendPrefix, want: "Bob", wantOK: true},
		{text: "/addfriend Bob", prefix: FriendPrefix},
	}
	for _, tc := range tests {
		got, ok := ParseFriendCommand(tc.text, tc.prefix)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseFriendCommand(%q,%q)=(%q,%v) want (%q,%v)", tc.text, tc.prefix, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestAfterCommandAddsFriend(t *testing.T) {
	ic, sess, social, chat := newTestInterceptor(t)
	chat.text = "/friend   Alice"
	ic.AfterCommand()

	if !sess.Roster.Contains("Alice") {
		t.Fatalf("expected Alice on the roster")
	}
	if chat.text != "/friend   Alice" || !chat.open {
		t.Fatalf("after-hook must not touch the chat box, got %+v", chat)
	}
	if len(social.lines) != 1 || social.lines[0].Color != session.ColorInfo {
		t.Fatalf("expected one informational notification, got %+v", social.lines)
	}

	ic.AfterCommand()
	if sess.Roster.Len() != 1 || len(social.lines) != 1 {
		t.Fatalf("repeat command must not mutate or notify again")
	}
}

func TestAfterCommandIgnoresEmptyAndForeignText(t *testing.T) {
	ic, sess, social, chat := newTestInterceptor(t)
	for _, text := range []string{"/friend ", "/friend     ", "/whisper Bob hi", "friend Alice", ""} {
		chat.text = text
		ic.AfterCommand()
	}
	if sess.Roster.Len() != 0 || len(social.lines) != 0 {
		t.Fatalf("expected no mutation, roster=%v notifications=%+v", sess.Roster.Names(), social.lines)
	}
}

func TestBeforeCommandAddFriendSkipsHost(t *testing.T) {
	ic, sess, social, chat := newTestInterceptor(t)
	chat.text = "/addfriend Bob"
	if got := ic.BeforeCommand(); got != Skip {
		t.Fatalf("expected Skip, got %v", got)
	}
	if !sess.Roster.Contains("Bob") {
		t.Fatalf("expected Bob on the roster")
	}
	if chat.text != "" || chat.open || chat.typing || chat.cooldown != inputCooldownFrames {
		t.Fatalf("expected chat box reset, got %+v", chat)
	}
	if len(social.lines) != 1 || social.lines[0].Color != session.ColorManual {
		t.Fatalf("expected one manual-color notification, got %+v", social.lines)
	}
}

func TestBeforeCommandSwallowsEvenWithoutName(t *testing.T) {
	ic, sess, _, chat := newTestInterceptor(t)
	chat.text = "/addfriend    "
	if got := ic.BeforeCommand(); got != Skip {
		t.Fatalf("expected Skip, got %v", got)
	}
	if sess.Roster.Len() != 0 {
		t.Fatalf("expected no mutation for empty name")
	}
	if chat.text != "" {
		t.Fatalf("expected input cleared, got %q", chat.text)
	}
}

func TestBeforeCommandProceedsOnOtherText(t *testing.T) {
	ic, sess, _, chat := newTestInterceptor(t)
	for _, text := range []string{"/friend Alice", "hello", "/addfriend", ""} {
		chat.text = text
		if got := ic.BeforeCommand(); got != Proceed {
			t.Fatalf("BeforeCommand(%q)=%v want proceed", text, got)
		}
		if chat.text != text {
			t.Fatalf("proceed must leave the text alone, got %q", chat.text)
		}
	}
	if sess.Roster.Len() != 0 {
		t.Fatalf("expected no mutation")
	}
}

func TestHooksRecoverFromPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	store := roster.NewStore(filepath.Join(t.TempDir(), "FriendList.txt"), zap.NewNop())
	sess := session.New(zap.New(core), store, &socialLog{}, &explodingChat{})
	ic := NewInterceptor(sess)

	if got := ic.BeforeCommand(); got != Proceed {
		t.Fatalf("panicking hook must defer to host, got %v", got)
	}
	ic.AfterCommand()
	if logs.Len() != 2 {
		t.Fatalf("expected both panics logged, got %d", logs.Len())
	}
}

func TestHooksWithoutChatAreNoops(t *testing.T) {
	store := roster.NewStore(filepath.Join(t.TempDir(), "FriendList.txt"), zap.NewNop())
	ic := NewInterceptor(session.New(nil, store, nil, nil))
	if got := ic.BeforeCommand(); got != Proceed {
		t.Fatalf("expected proceed without chat, got %v", got)
	}
	ic.AfterCommand()
}

func TestNearMiss(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "/freind Bob", want: "friend", wantOK: true},
		{text: "/friends Bob", want: "friend", wantOK: true},
		{text: "/adfriend Bob", want: "addfriend", wantOK: true},
		{text: "/friend Bob"},
		{text: "/whisper Bob"},
		{text: "/fr Bob"},
		{text: "freind Bob"},
		{text: "/"},
	}
	for _, tc := range tests {
		got, ok := nearMiss(tc.text)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("nearMiss(%q)=(%q,%v) want (%q,%v)", tc.text, got, ok, tc.want, tc.wantOK)
		}
	}
}
