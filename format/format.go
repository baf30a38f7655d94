package format

import (
	"strings"
	"unicode"
)

// ToUpperCase returns value with every rune mapped to its upper-case
// form. Runes without an upper-case mapping pass through unchanged.
func ToUpperCase(value string) string {
	return strings.Map(unicode.ToUpper, value)
}

// ToLowerCase returns value with every rune mapped to its lower-case
// form. Runes without a lower-case mapping pass through unchanged.
func ToLowerCase(value string) string {
	return strings.Map(unicode.ToLower, value)
}
