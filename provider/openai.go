package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZaguanLabs/gibberify"
	"github.com/sashabaranov/go-openai"
)

// OpenAIHyphenator implements Hyphenator by asking a chat model for
// syllable splits.
type OpenAIHyphenator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI oracle.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.1)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIHyphenator creates a new OpenAI-backed oracle.
func NewOpenAIHyphenator(cfg OpenAIConfig) *OpenAIHyphenator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.1
	}

	return &OpenAIHyphenator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Hyphenate asks the model to split a batch of words.
func (p *OpenAIHyphenator) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	if len(req.Words) == 0 {
		return [][]string{}, nil
	}

	words, _ := json.Marshal(req.Words)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req.Locale)},
			{Role: openai.ChatMessageRoleUser, Content: string(words)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &gibberify.HyphenationError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &gibberify.HyphenationError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, len(req.Words))
}

func (p *OpenAIHyphenator) buildSystemPrompt(locale string) string {
	if locale == "" {
		locale = gibberify.DefaultLocale
	}
	lang := gibberify.GetLanguageName(locale)

	return fmt.Sprintf(`# Role
You split words into syllables following the hyphenation rules of %s.

# Task
You receive a JSON array of words. Split every word into syllables, even if the word is not %s.

# Rules
- Joining a word's syllables in order must give back the word exactly, with the same letters and case.
- Do not add hyphens, spaces or any other characters.
- A word that cannot be split is returned as a single syllable.

# Format
Return a valid JSON object with a single key "syllables" holding one array per input word, in the same order.
Example: { "syllables": [["ca", "sa"], ["mon", "do"]] }
- Do NOT wrap in Markdown code blocks.`, lang, lang)
}

func (p *OpenAIHyphenator) parseResponse(content string, expectedCount int) ([][]string, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		if raw, ok := obj["syllables"]; ok {
			return decodeSplits(raw, expectedCount)
		}
		// Fallback: first value that decodes as a list of splits
		for _, raw := range obj {
			if splits, err := decodeSplits(raw, expectedCount); err == nil {
				return splits, nil
			}
		}
	}

	if strings.HasPrefix(strings.TrimSpace(content), "[") {
		return decodeSplits(json.RawMessage(content), expectedCount)
	}

	return nil, &gibberify.HyphenationError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func decodeSplits(raw json.RawMessage, expectedCount int) ([][]string, error) {
	var splits [][]string
	if err := json.Unmarshal(raw, &splits); err != nil {
		return nil, &gibberify.HyphenationError{
			Message: "invalid syllables in response",
			Cause:   err,
		}
	}

	if len(splits) != expectedCount {
		return nil, &gibberify.CountMismatchError{
			Expected: expectedCount,
			Got:      len(splits),
		}
	}
	return splits, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

var _ Hyphenator = (*OpenAIHyphenator)(nil)
