// Package processor extracts gibberifiable text from structured documents
// and writes the translations back without disturbing the markup.
package processor

import "github.com/ZaguanLabs/gibberify"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = gibberify.ContentProcessor

// ContentNode is an alias to the main package type.
type ContentNode = gibberify.ContentNode
