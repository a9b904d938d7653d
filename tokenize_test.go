package gibberify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Hello, world!")
	want := []Token{
		{Kind: TokenWord, Text: "Hello"},
		{Kind: TokenSeparator, Text: ", "},
		{Kind: TokenWord, Text: "world"},
		{Kind: TokenSeparator, Text: "!"},
	}
	assert.Equal(t, want, got)
}

func TestTokenize_WordCharacters(t *testing.T) {
	got := Tokenize("snake_case 42 caffè")
	var words []string
	for _, tok := range got {
		if tok.IsWord() {
			words = append(words, tok.Text)
		}
	}
	assert.Equal(t, []string{"snake_case", "42", "caffè"}, words)
}

func TestTokenize_Concatenation(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"a",
		"...leading and trailing...",
		"tabs\tand\nnewlines\r\n",
		"naïve café, Straße; ÆØÅ!",
		"é combining mark",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(in) {
			b.WriteString(tok.Text)
		}
		assert.Equal(t, in, b.String())
	}
}

func TestTokenize_Alternates(t *testing.T) {
	tokens := Tokenize("a, b c")
	for i := 1; i < len(tokens); i++ {
		assert.NotEqual(t, tokens[i-1].Kind, tokens[i].Kind, "tokens %d and %d share a kind", i-1, i)
	}
}

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, Tokenize(""))
}

func TestUniqueWords(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, uniqueWords(Tokenize("b a b, a")))
	assert.Nil(t, uniqueWords(Tokenize("!?")))
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "word", TokenWord.String())
	assert.Equal(t, "separator", TokenSeparator.String())
}
