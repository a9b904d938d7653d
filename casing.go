package gibberify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CasePattern is the capitalization of an original word that is carried
// over to its translation.
type CasePattern int

const (
	// CaseLower leaves the translation as mapped. It also covers words
	// starting with a digit or underscore.
	CaseLower CasePattern = iota
	// CaseCapitalized upper-cases the first letter of the translation only.
	CaseCapitalized
	// CaseUpper upper-cases the whole translation.
	CaseUpper
)

// DetectCase derives the capitalization pattern of word.
func DetectCase(word string) CasePattern {
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) && !unicode.IsTitle(first) {
		return CaseLower
	}
	if isUpper(word) {
		return CaseUpper
	}
	return CaseCapitalized
}

// isUpper reports whether word has at least one cased rune and no
// lowercase runes.
func isUpper(word string) bool {
	cased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// ApplyCase reapplies the capitalization of original to translated.
// The rest of a capitalized word keeps the casing the mapping produced.
func ApplyCase(original, translated string) string {
	switch DetectCase(original) {
	case CaseUpper:
		// Casers carry state and must not be shared between goroutines.
		return cases.Upper(language.Und).String(translated)
	case CaseCapitalized:
		first, size := utf8.DecodeRuneInString(translated)
		if first == utf8.RuneError {
			return translated
		}
		return string(unicode.ToTitle(first)) + translated[size:]
	default:
		return translated
	}
}

// CollapseSpaces replaces every run of two or more U+0020 spaces with a
// single space. Tabs and line breaks are left alone.
func CollapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteByte(c)
	}
	return b.String()
}
