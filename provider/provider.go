// Package provider implements hyphenation oracles backed by remote models,
// plus a mock for tests.
package provider

import "github.com/ZaguanLabs/gibberify"

// Hyphenator is the interface for hyphenation oracles.
// This is an alias to the main package interface for convenience.
type Hyphenator = gibberify.Hyphenator

// HyphenateRequest is an alias to the main package type.
type HyphenateRequest = gibberify.HyphenateRequest
