package gibberify

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Translator is the gibberish translation engine for one translation table.
type Translator struct {
	table      TranslationTable
	keys       []string
	sourceLang string
	targetLang string
	hyphenator Hyphenator
	picker     Picker
	logger     *slog.Logger
	processors map[string]ContentProcessor
}

// ContentProcessor is the interface for structured content processing.
type ContentProcessor interface {
	Extract(content string) (interface{}, []ContentNode, error)
	Apply(parsed interface{}, nodes []ContentNode, translations map[string]string) (string, error)
	ContentType() string
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithLanguages records the source and target tags the table belongs to.
func WithLanguages(source, target string) TranslatorOption {
	return func(t *Translator) {
		t.sourceLang = source
		t.targetLang = target
	}
}

// WithHyphenator sets the hyphenation oracle.
func WithHyphenator(h Hyphenator) TranslatorOption {
	return func(t *Translator) {
		t.hyphenator = h
	}
}

// WithPicker sets the strategy used for syllables missing from the table.
func WithPicker(p Picker) TranslatorOption {
	return func(t *Translator) {
		t.picker = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = l
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) TranslatorOption {
	return func(t *Translator) {
		t.processors[processor.ContentType()] = processor
	}
}

// NewTranslator creates a Translator for table. The table must not be empty.
func NewTranslator(table TranslationTable, opts ...TranslatorOption) (*Translator, error) {
	t := &Translator{
		table:      table,
		processors: make(map[string]ContentProcessor),
	}

	for _, opt := range opts {
		opt(t)
	}

	if len(table) == 0 {
		return nil, &InvalidDictionaryError{
			Source:  t.sourceLang,
			Target:  t.targetLang,
			Message: "empty translation table",
		}
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	t.keys = keys

	if t.hyphenator == nil {
		t.hyphenator = DefaultHyphenator()
	}
	if t.picker == nil {
		t.picker = RandomPicker{}
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	return t, nil
}

// Translate gibberifies text with table, using the default hyphenator and
// a random fallback picker.
func Translate(table TranslationTable, text string) (string, error) {
	t, err := NewTranslator(table)
	if err != nil {
		return "", err
	}
	return t.Translate(context.Background(), text)
}

// Translate gibberifies text.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	res, err := t.TranslateText(ctx, text)
	if err != nil {
		return "", err
	}
	return res.Content, nil
}

// TranslateText gibberifies text and reports counters.
func (t *Translator) TranslateText(ctx context.Context, text string) (*Result, error) {
	res := &Result{}
	if text == "" {
		return res, nil
	}

	tokens := Tokenize(text)
	splits, err := t.Syllabify(ctx, uniqueWords(tokens))
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range tokens {
		if !tok.IsWord() {
			b.WriteString(tok.Text)
			continue
		}

		var word strings.Builder
		for _, syl := range splits[tok.Text] {
			mapped, hit, err := t.mapSyllable(syl)
			if err != nil {
				return nil, err
			}
			if !hit {
				res.Fallbacks++
			}
			res.Syllables++
			word.WriteString(mapped)
		}
		res.Words++
		b.WriteString(ApplyCase(tok.Text, word.String()))
	}

	res.Content = CollapseSpaces(b.String())
	return res, nil
}

// Syllabify asks the hyphenator to split words and returns the checked
// splits keyed by word.
func (t *Translator) Syllabify(ctx context.Context, words []string) (map[string][]string, error) {
	splits := make(map[string][]string, len(words))
	if len(words) == 0 {
		return splits, nil
	}

	results, err := t.hyphenator.Hyphenate(ctx, HyphenateRequest{
		Words:  words,
		Locale: DefaultLocale,
	})
	if err != nil {
		return nil, err
	}
	if len(results) != len(words) {
		return nil, &CountMismatchError{Expected: len(words), Got: len(results)}
	}

	for i, w := range words {
		syllables, repaired := repairSplit(w, results[i])
		if repaired {
			t.logger.Debug("hyphenation did not spell the word, keeping it whole",
				slog.String("word", w),
				slog.Any("syllables", results[i]))
		}
		splits[w] = syllables
	}
	return splits, nil
}

// mapSyllable translates one syllable. hit is false when the syllable was
// replaced by a key chosen by the picker.
func (t *Translator) mapSyllable(syl string) (string, bool, error) {
	if mapped, ok := t.table[lookupKey(syl)]; ok {
		return mapped, true, nil
	}
	if len(t.keys) == 0 {
		return "", false, &InvalidDictionaryError{
			Source:  t.sourceLang,
			Target:  t.targetLang,
			Message: "empty translation table",
		}
	}

	picked := t.picker.Pick(t.keys)
	t.logger.Debug("syllable not in table, using fallback",
		slog.String("syllable", syl),
		slog.String("fallback", picked))
	return picked, false, nil
}

// lookupKey lowercases and NFC-normalizes a syllable for table lookup.
func lookupKey(s string) string {
	return norm.NFC.String(cases.Lower(language.Und).String(s))
}

// Process gibberifies structured content of the specified type.
func (t *Translator) Process(ctx context.Context, content string, contentType string) (*Result, error) {
	processor, ok := t.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return &Result{Content: content}, nil
	}

	translations, stats, err := t.translateNodes(ctx, nodes)
	if err != nil {
		return nil, err
	}

	result, err := processor.Apply(parsed, nodes, translations)
	if err != nil {
		return nil, err
	}

	if contentType == "html" {
		result = t.setHTMLAttributes(result)
	}

	stats.Content = result
	stats.Nodes = len(nodes)
	return stats, nil
}

// ProcessHTML is a convenience method for processing HTML content.
func (t *Translator) ProcessHTML(ctx context.Context, html string) (*Result, error) {
	return t.Process(ctx, html, "html")
}

// translateNodes gibberifies each distinct node text once.
func (t *Translator) translateNodes(ctx context.Context, nodes []ContentNode) (map[string]string, *Result, error) {
	translations := make(map[string]string)
	stats := &Result{}

	for _, node := range nodes {
		if _, done := translations[node.Hash]; done {
			continue
		}

		res, err := t.TranslateText(ctx, node.Text)
		if err != nil {
			return nil, nil, err
		}
		translations[node.Hash] = res.Content
		stats.Words += res.Words
		stats.Syllables += res.Syllables
		stats.Fallbacks += res.Fallbacks
	}

	return translations, stats, nil
}

// setHTMLAttributes sets lang and dir attributes on the <html> tag.
func (t *Translator) setHTMLAttributes(html string) string {
	if t.targetLang == "" {
		return html
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() > 0 {
		htmlTag.SetAttr("lang", LangAttr(t.targetLang))
		htmlTag.SetAttr("dir", "ltr")
	}

	result, err := doc.Html()
	if err != nil {
		return html
	}

	return result
}

// SourceLang returns the source language tag, if known.
func (t *Translator) SourceLang() string {
	return t.sourceLang
}

// TargetLang returns the gibberish language tag, if known.
func (t *Translator) TargetLang() string {
	return t.targetLang
}

// Keys returns the sorted keys of the translation table.
func (t *Translator) Keys() []string {
	return slices.Clone(t.keys)
}
