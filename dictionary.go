package gibberify

import (
	"bytes"
	_ "embed" // Required for go:embed
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
)

//go:embed data/dicts.json
var defaultDicts []byte

var (
	defaultIndex    DictionaryIndex
	defaultIndexErr error
	defaultOnce     sync.Once
)

// DefaultDictionaries returns the dictionary index bundled with the
// package. It is parsed once and must be treated as read-only.
func DefaultDictionaries() (DictionaryIndex, error) {
	defaultOnce.Do(func() {
		defaultIndex, defaultIndexErr = LoadDictionaries(bytes.NewReader(defaultDicts))
	})
	return defaultIndex, defaultIndexErr
}

// LoadDictionaries decodes a JSON dictionary index of the form
// {source: {target: {syllable: replacement}}} and validates it.
func LoadDictionaries(r io.Reader) (DictionaryIndex, error) {
	var raw map[string]map[string]map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &InvalidDictionaryError{Message: "decoding JSON", Cause: err}
	}

	index := make(DictionaryIndex, len(raw))
	for source, targets := range raw {
		index[source] = make(map[string]TranslationTable, len(targets))
		for target, table := range targets {
			index[source][target] = normalizeTable(table)
		}
	}

	if err := index.Validate(); err != nil {
		return nil, err
	}
	return index, nil
}

// LoadDictionariesFile loads a dictionary index from a JSON file.
// The path is provided by the caller and is intentionally user-controlled.
func LoadDictionariesFile(path string) (DictionaryIndex, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, &InputSourceError{Source: path, Cause: err}
	}
	defer f.Close()

	index, err := LoadDictionaries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return index, nil
}

// normalizeTable brings keys into the form used for lookups.
func normalizeTable(table map[string]string) TranslationTable {
	out := make(TranslationTable, len(table))
	for k, v := range table {
		out[lookupKey(k)] = v
	}
	return out
}

// Validate checks that every level of the index is populated and that no
// translation table is empty.
func (d DictionaryIndex) Validate() error {
	if len(d) == 0 {
		return &InvalidDictionaryError{Message: "no source languages"}
	}
	for _, source := range d.SourceLanguages() {
		targets := d[source]
		if len(targets) == 0 {
			return &InvalidDictionaryError{Source: source, Message: "no target languages"}
		}
		for target, table := range targets {
			if len(table) == 0 {
				return &InvalidDictionaryError{Source: source, Target: target, Message: "empty translation table"}
			}
		}
	}
	return nil
}

// Table returns the translation table for a language pair.
func (d DictionaryIndex) Table(source, target string) (TranslationTable, error) {
	targets, ok := d[source]
	if !ok {
		return nil, &UnknownLanguageError{Tag: source, Role: "source"}
	}
	table, ok := targets[target]
	if !ok {
		return nil, &UnknownLanguageError{Tag: target, Role: "target"}
	}
	if len(table) == 0 {
		return nil, &InvalidDictionaryError{Source: source, Target: target, Message: "empty translation table"}
	}
	return table, nil
}

// SourceLanguages returns the source tags present in the index, sorted.
func (d DictionaryIndex) SourceLanguages() []string {
	tags := make([]string, 0, len(d))
	for tag := range d {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// TargetLanguages returns the gibberish tags available for source, sorted.
func (d DictionaryIndex) TargetLanguages(source string) []string {
	targets := d[source]
	tags := make([]string, 0, len(targets))
	for tag := range targets {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// NewTranslator resolves the table for a language pair and creates a
// Translator for it.
func (d DictionaryIndex) NewTranslator(source, target string, opts ...TranslatorOption) (*Translator, error) {
	table, err := d.Table(source, target)
	if err != nil {
		return nil, err
	}
	opts = append([]TranslatorOption{WithLanguages(source, target)}, opts...)
	return NewTranslator(table, opts...)
}
