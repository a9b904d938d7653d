/*
Package hyphen splits words into syllables with TeX hyphenation patterns.
The standard Italian patterns from hyph-utf8 are embedded and compiled on
first use.
*/
package hyphen

import (
	_ "embed" // Required for go:embed
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/speedata/hyphenation"
)

//go:embed patterns/hyph-it.pat.txt
var italianPatterns string

// Default minimum number of runes kept before the first and after the
// last break point.
const (
	DefaultLeftMin  = 2
	DefaultRightMin = 2
)

// Patterns is a compiled pattern set.
type Patterns struct {
	LeftMin  int
	RightMin int

	lang *hyphenation.Lang
}

var (
	italian     *Patterns
	italianErr  error
	italianOnce sync.Once
)

// Italian returns the embedded Italian patterns.
func Italian() *Patterns {
	italianOnce.Do(func() {
		italian, italianErr = Parse(strings.NewReader(italianPatterns))
	})
	if italianErr != nil {
		// The embedded file is fixed at build time.
		panic(fmt.Sprintf("hyphen: embedded italian patterns: %v", italianErr))
	}
	return italian
}

// Parse compiles patterns in the hyph-utf8 text format, one pattern such
// as "1b", "2bb" or ".a3p2n" per line.
func Parse(r io.Reader) (*Patterns, error) {
	lang, err := hyphenation.New(r)
	if err != nil {
		return nil, fmt.Errorf("loading patterns: %w", err)
	}
	// Minimums are applied in Positions so they can be tuned per Patterns.
	lang.Leftmin = 1
	lang.Rightmin = 1

	return &Patterns{
		LeftMin:  DefaultLeftMin,
		RightMin: DefaultRightMin,
		lang:     lang,
	}, nil
}

// Positions returns the rune offsets inside word before which a break is
// allowed, in increasing order.
func (p *Patterns) Positions(word string) []int {
	runes := []rune(word)
	n := len(runes)
	if n < p.LeftMin+p.RightMin {
		return nil
	}

	// Per-rune lowering keeps offsets aligned with the original word.
	lower := make([]rune, n)
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	var positions []int
	last := 0
	for _, pos := range p.lang.Hyphenate(string(lower)) {
		if pos < p.LeftMin || pos > n-p.RightMin || pos <= last {
			continue
		}
		positions = append(positions, pos)
		last = pos
	}
	return positions
}

// Split cuts word at every allowed break. The pieces always join back to
// word, and a word without breaks comes back as a single piece.
func (p *Patterns) Split(word string) []string {
	positions := p.Positions(word)
	if len(positions) == 0 {
		return []string{word}
	}

	runes := []rune(word)
	parts := make([]string, 0, len(positions)+1)
	start := 0
	for _, pos := range positions {
		parts = append(parts, string(runes[start:pos]))
		start = pos
	}
	return append(parts, string(runes[start:]))
}

// Inserted returns word with sep placed at every allowed break.
func (p *Patterns) Inserted(word, sep string) string {
	return strings.Join(p.Split(word), sep)
}
