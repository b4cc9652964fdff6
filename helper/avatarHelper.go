package helper

import "strings"

// AvatarInitials derives a display avatar from a reviewer's name: the
// upper-cased first letter of each of the first two whitespace-separated
// tokens. Single-token names yield a one-letter avatar.
func AvatarInitials(name string) string {
	parts := strings.Fields(name)
	if len(parts) > 2 {
		parts = parts[:2]
	}

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(string([]rune(part)[0])))
	}
	return b.String()
}
