package gibberify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCase(t *testing.T) {
	tests := []struct {
		word string
		want CasePattern
	}{
		{"cafe", CaseLower},
		{"Cafe", CaseCapitalized},
		{"CAFE", CaseUpper},
		{"A", CaseUpper},
		{"McDonald", CaseCapitalized},
		{"42", CaseLower},
		{"_private", CaseLower},
		{"ÉCOLE", CaseUpper},
		{"École", CaseCapitalized},
		{"X2", CaseUpper},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectCase(tt.word), "DetectCase(%q)", tt.word)
	}
}

func TestApplyCase(t *testing.T) {
	tests := []struct {
		original, translated, want string
	}{
		{"cafe", "zoru", "zoru"},
		{"Cafe", "zoru", "Zoru"},
		{"CAFE", "zoru", "ZORU"},
		{"Cafe", "zoRU", "ZoRU"},
		{"Cafe", "", ""},
		{"École", "über", "Über"},
		{"HELLO", "straße", "STRASSE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyCase(tt.original, tt.translated), "ApplyCase(%q, %q)", tt.original, tt.translated)
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"a b":        "a b",
		"a  b":       "a b",
		"  a   b  ":  " a b ",
		"a\t\tb":     "a\t\tb",
		"a \n  b":    "a \n b",
		"no-spaces.": "no-spaces.",
	}
	for in, want := range tests {
		assert.Equal(t, want, CollapseSpaces(in), "CollapseSpaces(%q)", in)
	}
}
