package proxy

import (
	"strings"
)

// hairSpace is invisible at message width but makes Discord treat two
// names as distinct.
const hairSpace = " "

// maxUsernameLen is Discord's webhook username limit.
const maxUsernameLen = 80

// SafeUsername makes a display name acceptable to the webhook API:
// "clyde" is a reserved name substring, so a hair space is inserted into
// any occurrence, and the result is capped at 80 characters.
func SafeUsername(name string) string {
	for i := 0; ; {
		idx := strings.Index(strings.ToLower(name[i:]), "clyde")
		if idx < 0 {
			break
		}

		// split the occurrence after "cl"
		pos := i + idx + 2
		name = name[:pos] + hairSpace + name[pos:]
		i = pos + len(hairSpace)
	}

	if r := []rune(name); len(r) > maxUsernameLen {
		name = string(r[:maxUsernameLen])
	}
	return name
}

// Alternate inserts a hair space after the first rune. Used when two
// different users proxy under the same display name back to back, so
// Discord doesn't group their messages.
func Alternate(name string) string {
	for i := range name {
		if i > 0 {
			return name[:i] + hairSpace + name[i:]
		}
	}
	return name + hairSpace
}
