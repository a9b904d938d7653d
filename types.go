package gibberify

// TranslationTable maps a lowercase real-language syllable to its
// replacement in a gibberish language.
type TranslationTable map[string]string

// DictionaryIndex maps a source language tag to its gibberish target tags
// and their translation tables.
type DictionaryIndex map[string]map[string]TranslationTable

// TokenKind classifies a run of text.
type TokenKind int

const (
	// TokenSeparator is a run of non-word characters: spaces, punctuation, line breaks.
	TokenSeparator TokenKind = iota
	// TokenWord is a run of letters, marks, digits and underscores.
	TokenWord
)

func (k TokenKind) String() string {
	if k == TokenWord {
		return "word"
	}
	return "separator"
}

// Token is a maximal run of either word or separator characters.
type Token struct {
	Kind TokenKind
	Text string
}

// IsWord reports whether the token is a word run.
func (t Token) IsWord() bool {
	return t.Kind == TokenWord
}

// ContentNode is a translatable unit extracted from a structured document.
type ContentNode struct {
	ID       string            // Position-based identifier
	Text     string            // Original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	NodeType string            // Content type: "html_text", "go_comment", etc.
	Metadata map[string]string // Additional info (parent tag, position, etc.)
}

// Result is the outcome of a translation.
type Result struct {
	Content   string // Translated content
	Nodes     int    // Document nodes translated (0 for plain text)
	Words     int    // Word tokens translated
	Syllables int    // Syllables mapped
	Fallbacks int    // Syllables replaced by a picked key instead of a table hit
}

// IgnoredTags contains HTML tags whose content is never gibberified.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
