package roster

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the roster name closest to name when it is within a typo
// distance, comparing case-insensitively.
func (s *Store) Suggest(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, candidate := range s.names {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if dist > distanceLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
