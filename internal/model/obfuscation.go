package model

import "strings"

// IsObfuscatedName reports whether name is vendor-generated rather than
// original: it is at most two characters long, or exactly three characters
// starting with `aa`, or starts with one of the generated placeholder
// prefixes.
func IsObfuscatedName(name string) bool {
	if len(name) <= 2 {
		return true
	}
	if len(name) == 3 && strings.HasPrefix(name, "aa") {
		return true
	}
	switch {
	case strings.HasPrefix(name, "class"),
		strings.HasPrefix(name, "method"),
		strings.HasPrefix(name, "field"):
		return true
	}
	return false
}
