package gibberify

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLanguage matches any *UnknownLanguageError.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrInvalidDictionary matches any *InvalidDictionaryError.
	ErrInvalidDictionary = errors.New("invalid dictionary")
)

// UnknownLanguageError reports a language tag missing from the dictionary
// index or from the registered languages.
type UnknownLanguageError struct {
	Tag  string
	Role string // "source" or "target"
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown %s language %q", e.Role, e.Tag)
}

func (e *UnknownLanguageError) Is(target error) bool {
	return target == ErrUnknownLanguage
}

// InvalidDictionaryError reports a dictionary that cannot be used, such as
// malformed data or an empty translation table.
type InvalidDictionaryError struct {
	Source  string // Source tag, if known
	Target  string // Target tag, if known
	Message string
	Cause   error
}

func (e *InvalidDictionaryError) Error() string {
	msg := "invalid dictionary"
	if e.Source != "" || e.Target != "" {
		msg += fmt.Sprintf(" %s->%s", e.Source, e.Target)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *InvalidDictionaryError) Unwrap() error {
	return e.Cause
}

func (e *InvalidDictionaryError) Is(target error) bool {
	return target == ErrInvalidDictionary
}

// InputSourceError indicates that text or data could not be read from a
// file or standard input.
type InputSourceError struct {
	Source string // File path or "stdin"
	Cause  error
}

func (e *InputSourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Cause)
}

func (e *InputSourceError) Unwrap() error {
	return e.Cause
}

// HyphenationError indicates a hyphenation oracle failure (API error, rate limit, etc.).
type HyphenationError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *HyphenationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hyphenation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("hyphenation error: %s", e.Message)
}

func (e *HyphenationError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ProcessorError indicates a content processing failure (parse error, etc.).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates an oracle returned a different number of
// syllable splits than words requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("syllable split count mismatch: expected %d, got %d", e.Expected, e.Got)
}
