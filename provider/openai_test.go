package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ZaguanLabs/gibberify"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test"})

	prompt := p.buildSystemPrompt("it")
	if !strings.Contains(prompt, "Italian") {
		t.Error("Prompt should contain the locale's language name")
	}
	if !strings.Contains(prompt, `"syllables"`) {
		t.Error("Prompt should describe the response format")
	}

	if p.buildSystemPrompt("") != prompt {
		t.Error("Empty locale should use the default locale")
	}
}

func TestParseResponse_SyllablesKey(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test"})

	result, err := p.parseResponse(`{"syllables": [["ca", "sa"], ["ciao"]]}`, 2)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 splits, got %d", len(result))
	}
	if strings.Join(result[0], "|") != "ca|sa" || result[1][0] != "ciao" {
		t.Errorf("Unexpected splits: %v", result)
	}
}

func TestParseResponse_DirectArray(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test"})

	result, err := p.parseResponse(`[["mon", "do"]]`, 1)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if strings.Join(result[0], "|") != "mon|do" {
		t.Errorf("Unexpected splits: %v", result)
	}
}

func TestParseResponse_FallbackKey(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test"})

	// Some models pick their own key
	result, err := p.parseResponse(`{"note": "ok", "words": [["pa", "ro", "la"]]}`, 1)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if len(result[0]) != 3 {
		t.Errorf("Unexpected splits: %v", result)
	}
}

func TestParseResponse_CountMismatch(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test"})

	_, err := p.parseResponse(`{"syllables": [["ca", "sa"]]}`, 2)

	var mismatch *gibberify.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected CountMismatchError, got %v", err)
	}
	if mismatch.Expected != 2 || mismatch.Got != 1 {
		t.Errorf("Unexpected mismatch: %+v", mismatch)
	}
}

func TestParseResponse_Invalid(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test"})

	for _, content := range []string{"not json", `{"syllables": "ca-sa"}`, `{"other": 1}`} {
		_, err := p.parseResponse(content, 1)
		var hyphErr *gibberify.HyphenationError
		if !errors.As(err, &hyphErr) {
			t.Errorf("parseResponse(%q): expected HyphenationError, got %v", content, err)
			continue
		}
		if hyphErr.Retryable {
			t.Errorf("parseResponse(%q): malformed output should not be retryable", content)
		}
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := map[string]bool{
		"429 Too Many Requests":    true,
		"Rate limit reached":       true,
		"dial: connection refused": true,
		"401 Unauthorized":         false,
		"invalid model":            false,
	}
	for msg, want := range tests {
		if got := isRetryableError(errors.New(msg)); got != want {
			t.Errorf("isRetryableError(%q) = %v, want %v", msg, got, want)
		}
	}
}

func newChatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error": {"message": "slow down", "type": "rate_limit"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIHyphenator_Hyphenate(t *testing.T) {
	srv := newChatServer(t, http.StatusOK, `{"syllables": [["ca", "sa"], ["mon", "do"]]}`)
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1"})

	got, err := p.Hyphenate(context.Background(), HyphenateRequest{Words: []string{"casa", "mondo"}, Locale: "it"})
	if err != nil {
		t.Fatalf("Hyphenate failed: %v", err)
	}
	if len(got) != 2 || strings.Join(got[1], "|") != "mon|do" {
		t.Errorf("Unexpected splits: %v", got)
	}
}

func TestOpenAIHyphenator_APIError(t *testing.T) {
	srv := newChatServer(t, http.StatusTooManyRequests, "")
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1"})

	_, err := p.Hyphenate(context.Background(), HyphenateRequest{Words: []string{"casa"}})

	var hyphErr *gibberify.HyphenationError
	if !errors.As(err, &hyphErr) {
		t.Fatalf("Expected HyphenationError, got %v", err)
	}
	if !hyphErr.Retryable {
		t.Errorf("429 should be retryable: %v", err)
	}
}

func TestOpenAIHyphenator_NoWords(t *testing.T) {
	p := NewOpenAIHyphenator(OpenAIConfig{APIKey: "test", BaseURL: "http://127.0.0.1:1"})

	got, err := p.Hyphenate(context.Background(), HyphenateRequest{})
	if err != nil || len(got) != 0 {
		t.Errorf("Expected no call and no splits, got %v, %v", got, err)
	}
}

func TestMockHyphenator(t *testing.T) {
	m := NewMockHyphenator()

	result, err := m.Hyphenate(context.Background(), HyphenateRequest{Words: []string{"casa", "xyz"}})
	if err != nil {
		t.Fatalf("MockHyphenator.Hyphenate failed: %v", err)
	}

	if strings.Join(result[0], "|") != "ca|sa" {
		t.Errorf("Expected [ca sa], got %v", result[0])
	}
	if len(result[1]) != 1 || result[1][0] != "xyz" {
		t.Errorf("Expected unknown word whole, got %v", result[1])
	}
	if m.CallCount() != 1 {
		t.Errorf("Expected CallCount 1, got %d", m.CallCount())
	}
	if m.LastRequest() == nil || len(m.LastRequest().Words) != 2 {
		t.Error("Expected last request to be recorded")
	}

	m.Reset()
	if m.CallCount() != 0 || m.LastRequest() != nil {
		t.Error("Reset should clear call state")
	}
}

func TestMockHyphenator_Err(t *testing.T) {
	m := &MockHyphenator{Err: &gibberify.HyphenationError{Message: "down", Retryable: true}}

	if _, err := m.Hyphenate(context.Background(), HyphenateRequest{Words: []string{"a"}}); !gibberify.IsRetryable(err) {
		t.Errorf("Expected configured error, got %v", err)
	}
}
