package gibberify

import "regexp"

// wordRun matches a maximal run of word characters: letters, combining
// marks, digits and underscore.
var wordRun = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Tokenize splits text into alternating word and separator tokens.
// Concatenating the Text of the returned tokens yields text exactly.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	last := 0
	for _, loc := range wordRun.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			tokens = append(tokens, Token{Kind: TokenSeparator, Text: text[last:loc[0]]})
		}
		tokens = append(tokens, Token{Kind: TokenWord, Text: text[loc[0]:loc[1]]})
		last = loc[1]
	}
	if last < len(text) {
		tokens = append(tokens, Token{Kind: TokenSeparator, Text: text[last:]})
	}
	return tokens
}

// uniqueWords returns the distinct word tokens in order of first appearance.
func uniqueWords(tokens []Token) []string {
	seen := make(map[string]bool)
	var words []string
	for _, tok := range tokens {
		if tok.IsWord() && !seen[tok.Text] {
			seen[tok.Text] = true
			words = append(words, tok.Text)
		}
	}
	return words
}
