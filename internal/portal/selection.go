package portal

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Selector obtains the user's raw choice among names.
type Selector func(names []string) (string, error)

// FixedSelection returns a Selector that always answers raw.
func FixedSelection(raw string) Selector {
	return func([]string) (string, error) {
		return raw, nil
	}
}

// ResolveSelection maps raw to one of names, either as a 1-based index or
// as an exact name. An index takes precedence over a name that looks like one.
func ResolveSelection(names []string, raw string) (string, bool) {
	choice := strings.TrimSpace(raw)
	if choice == "" {
		return "", false
	}
	if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(names) {
		return names[i-1], true
	}
	return lo.Find(names, func(name string) bool {
		return name == choice
	})
}
