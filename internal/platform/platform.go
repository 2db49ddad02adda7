// Package platform normalizes key descriptions so config bindings and the
// strings Bubble Tea reports compare equal.
package platform

import (
	"runtime"
	"sort"
	"strings"
)

// IsMac reports whether we run on macOS (darwin).
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

// ReplacePrimaryModifier swaps Ctrl with Cmd in hint text on macOS.
func ReplacePrimaryModifier(text string) string {
	if !IsMac() || text == "" {
		return text
	}
	return strings.NewReplacer("Ctrl+", "Cmd+", "ctrl+", "cmd+").Replace(text)
}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"cmd":     "ctrl", // terminals deliver command as ctrl
	"command": "ctrl",
	"⌘":       "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"opt":     "alt",
	"⌥":       "alt",
	"shift":   "shift",
	"⇧":       "shift",
	"super":   "super",
	"meta":    "super",
	"win":     "super",
}

var modifierOrder = map[string]int{
	"ctrl":  0,
	"super": 1,
	"alt":   2,
	"shift": 3,
}

// CanonicalKeyForLookup lower-cases a key description, maps modifier aliases
// and sorts modifiers in a stable order: "Shift+Ctrl+N" and "ctrl+shift+n"
// both become "ctrl+shift+n".
func CanonicalKeyForLookup(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if key == " " || strings.EqualFold(key, "space") {
		return "space"
	}

	var mods, main []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(key, "+") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if mod, ok := modifierAliases[p]; ok {
			if !seen[mod] {
				seen[mod] = true
				mods = append(mods, mod)
			}
			continue
		}
		main = append(main, p)
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return modifierOrder[mods[i]] < modifierOrder[mods[j]]
	})
	return strings.Join(append(mods, main...), "+")
}

// MatchesKey returns true if two key descriptions are equivalent.
func MatchesKey(actual, binding string) bool {
	return CanonicalKeyForLookup(actual) == CanonicalKeyForLookup(binding)
}

// DisplayKey formats a binding for hints: "ctrl+n" -> "Ctrl+N".
func DisplayKey(key string) string {
	canonical := CanonicalKeyForLookup(key)
	if canonical == "" {
		return ""
	}
	parts := strings.Split(canonical, "+")
	for i, p := range parts {
		switch {
		case p == "ctrl" && IsMac() && strings.Contains(strings.ToLower(key), "cmd"):
			parts[i] = "Cmd"
		case p == "alt" && IsMac():
			parts[i] = "Option"
		case p == "esc":
			parts[i] = "Esc"
		case len([]rune(p)) == 1:
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}
