// Package seed holds the rules for the content-generation seed value: the
// short topic a user picks from the tape or types in.
package seed

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the longest seed accepted for generation.
const DefaultMaxLength = 32

var (
	// ErrEmpty is returned for a blank seed.
	ErrEmpty = errors.New("seed is empty")
	// ErrTooLong is returned when a seed exceeds the configured length.
	ErrTooLong = errors.New("seed is too long")
)

// Normalize turns a tape segment into a seed value: surrounding whitespace
// is trimmed, then one leading space is dropped if one is still there.
func Normalize(segment string) string {
	s := strings.TrimSpace(segment)
	return strings.TrimPrefix(s, " ")
}

// Validate checks s against the seed rules. maxLength <= 0 means
// DefaultMaxLength.
func Validate(s string, maxLength int) error {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if strings.TrimSpace(s) == "" {
		return ErrEmpty
	}
	if utf8.RuneCountInString(s) > maxLength {
		return ErrTooLong
	}
	return nil
}
