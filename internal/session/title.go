package session

import (
	"strings"
	"time"
)

const (
	titleMaxLen       = 40
	placeholderPrefix = "New chat "
)

// DeriveTitle truncates seed text to a bounded prefix for display.
func DeriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titleMaxLen {
		runes = runes[:titleMaxLen]
	}
	return string(runes)
}

// placeholderTitle is used when a conversation is created without seed
// text. Millisecond precision keeps placeholders distinct because creation
// clock readings are strictly increasing.
func placeholderTitle(t time.Time) string {
	return placeholderPrefix + t.Format("15:04:05.000")
}

// IsPlaceholderTitle reports whether a title was auto-generated rather than
// derived from real content. Such titles are overwritten by the first user
// message.
func IsPlaceholderTitle(title string) bool {
	return title == "" || strings.HasPrefix(title, placeholderPrefix)
}
