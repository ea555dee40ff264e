package model

import (
	"unicode"
	"unicode/utf8"
)

// MapFirst applies fn to the first rune of s and leaves the rest untouched.
func MapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return s
	}
	return string(fn(r)) + s[size:]
}

// UpperFirst uppercases the first rune of s.
func UpperFirst(s string) string { return MapFirst(s, unicode.ToUpper) }

// LowerFirst lowercases the first rune of s.
func LowerFirst(s string) string { return MapFirst(s, unicode.ToLower) }
