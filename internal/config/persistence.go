package config

import "strings"

var (
	persistentAnswers = map[string]bool{"1": true, "si": true, "s": true, "y": true, "yes": true, "true": true}
	ephemeralAnswers  = map[string]bool{"2": true, "no": true, "n": true, "false": true}
)

// ParsePersistence interprets a persistence answer, from the environment or
// an interactive prompt. ok is false when raw is not recognised.
func ParsePersistence(raw string) (persist bool, ok bool) {
	choice := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case persistentAnswers[choice]:
		return true, true
	case ephemeralAnswers[choice]:
		return false, true
	default:
		return false, false
	}
}
