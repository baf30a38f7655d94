// Package format provides case-mapping transforms for plain text values.
//
// Both functions are pure: they take a string by value and return a new
// one. Each rune is mapped independently using the Unicode case tables,
// which deliberately avoids multi-rune case-folding rules (ToUpperCase
// of "ß" stays "ß" rather than becoming "SS"). Runes without a case,
// such as digits and punctuation, are fixed points of both functions.
package format
