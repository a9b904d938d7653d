package gibberify

import (
	"slices"
	"strings"
)

// RealLanguages maps the registered source language tags to their names.
var RealLanguages = map[string]string{
	"en": "English",
	"it": "Italian",
	"de": "German",
}

// GibberishLanguages maps the registered gibberish language tags to their names.
var GibberishLanguages = map[string]string{
	"orc": "Orcish",
	"elv": "Elvish",
	"dwa": "Dwarvish",
}

// IsRealLanguage reports whether tag is a registered source language.
func IsRealLanguage(tag string) bool {
	_, ok := RealLanguages[tag]
	return ok
}

// IsGibberishLanguage reports whether tag is a registered gibberish language.
func IsGibberishLanguage(tag string) bool {
	_, ok := GibberishLanguages[tag]
	return ok
}

// CheckLanguages verifies that source is a registered real language and
// target a registered gibberish language. An empty target is not checked.
func CheckLanguages(source, target string) error {
	if !IsRealLanguage(source) {
		return &UnknownLanguageError{Tag: source, Role: "source"}
	}
	if target != "" && !IsGibberishLanguage(target) {
		return &UnknownLanguageError{Tag: target, Role: "target"}
	}
	return nil
}

// GetLanguageName returns the human-readable name for a language tag.
// Falls back to the tag itself if not found.
func GetLanguageName(tag string) string {
	if name, ok := RealLanguages[tag]; ok {
		return name
	}
	if name, ok := GibberishLanguages[tag]; ok {
		return name
	}
	return tag
}

// LangAttr converts a tag to an HTML lang attribute value. Gibberish
// languages use a BCP 47 private-use tag (e.g. "orc" → "x-orc").
func LangAttr(tag string) string {
	if IsGibberishLanguage(tag) {
		return "x-" + tag
	}
	return strings.ReplaceAll(tag, "_", "-")
}

// SortedTags returns the keys of a language registry in sorted order.
func SortedTags(registry map[string]string) []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
