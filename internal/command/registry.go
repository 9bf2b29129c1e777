package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	FriendPrefix    = "/friend "
	AddFriendPrefix = "/addfriend "
)

// knownCommands are the chat verbs this package answers to, without the slash.
var knownCommands = []string{"friend", "addfriend"}

// ParseFriendCommand extracts the name from text when it starts with prefix.
// The name is everything after the first space, trimmed.
func ParseFriendCommand(text, prefix string) (string, bool) {
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return "", false
	}
	name := strings.TrimSpace(parts[1])
	return name, name != ""
}

// nearMiss reports a known command that text's verb looks like a typo of,
// e.g. "/freind Bob". Exact verbs are not near misses.
func nearMiss(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", false
	}
	verb := strings.ToLower(fields[0])
	if len(verb) < 3 {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, cmd := range knownCommands {
		if verb == cmd {
			return "", false
		}
		dist := levenshtein.ComputeDistance(verb, cmd)
		if dist > levenshteinLimit(len(cmd)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cmd, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
