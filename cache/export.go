package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// FormatVersion is written to every export.
const FormatVersion = "1.0"

// ExportFormat is the JSON document written by Export and read by Import.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry is a single cached split.
type ExportEntry struct {
	Key       string   `json:"key"`
	Syllables []string `json:"syllables"`
}

// ExportableCache is a cache that can list its live entries.
type ExportableCache interface {
	SyllableCache
	Entries() map[string][]string
}

// Exporter provides cache export functionality.
type Exporter struct {
	cache SyllableCache
}

// NewExporter creates a new cache exporter.
func NewExporter(cache SyllableCache) *Exporter {
	return &Exporter{cache: cache}
}

// Export writes the cache contents to w as indented JSON, sorted by key.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	c, ok := e.cache.(ExportableCache)
	if !ok {
		return fmt.Errorf("cache type %T does not support export", e.cache)
	}

	data := c.Entries()
	entries := make([]ExportEntry, 0, len(data))
	for key, syls := range data {
		entries = append(entries, ExportEntry{Key: key, Syllables: syls})
	}
	slices.SortFunc(entries, func(a, b ExportEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	export := ExportFormat{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ExportToFile exports the cache to a file.
// The path is provided by the caller and is intentionally user-controlled.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := e.Export(f, metadata); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Importer provides cache import functionality.
type Importer struct {
	cache SyllableCache
}

// NewImporter creates a new cache importer.
func NewImporter(cache SyllableCache) *Importer {
	return &Importer{cache: cache}
}

// ImportResult contains statistics about the import operation.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Failed   int
}

// Import loads entries from r into the cache. Entries without a key or
// syllables, and entries the cache refuses, are counted as failed.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  export.Version,
		Metadata: export.Metadata,
	}

	for _, entry := range export.Entries {
		if entry.Key == "" || len(entry.Syllables) == 0 {
			result.Failed++
			continue
		}
		if err := i.cache.Set(entry.Key, entry.Syllables); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ImportFromFile imports cache entries from a file.
// The path is provided by the caller and is intentionally user-controlled.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(f)
}
