// Command gibberify translates text into invented languages.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ZaguanLabs/gibberify"
	"github.com/ZaguanLabs/gibberify/internal/config"
	"github.com/ZaguanLabs/gibberify/internal/logger"
	"github.com/ZaguanLabs/gibberify/processor"
	"github.com/ZaguanLabs/gibberify/session"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = gibberify.Version
	commit    = gibberify.GitCommit
	buildDate = gibberify.BuildDate
)

// notifyInterrupts delivers Ctrl+C to the interactive session instead of
// killing the process.
var notifyInterrupts = func() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch, func() { signal.Stop(ch) }
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// messages collects repeated -m values.
type messages []string

func (m *messages) String() string { return strings.Join(*m, " ") }

func (m *messages) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// options is the parsed command line.
type options struct {
	fromLang   string
	toLang     string
	messages   messages
	format     string
	output     string
	seed       uint64
	seeded     bool
	jsonOutput bool
	dryRun     bool
	list       bool
	quiet      bool
	version    bool
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (*options, []string, error) {
	fs := flag.NewFlagSet("gibberify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s: %s\n\nUsage: gibberify [flags] [text...]\n", gibberify.Name, gibberify.Description)
		fmt.Fprintf(stderr, "Run without arguments for the interactive prompt.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\n%s\n", gibberify.Repository)
	}

	o := &options{}
	fs.StringVar(&o.fromLang, "from-lang", "en", "Language to translate from")
	fs.StringVar(&o.fromLang, "fl", "en", "Language to translate from (short for --from-lang)")
	fs.StringVar(&o.toLang, "to-lang", "orc", "Language to translate into")
	fs.StringVar(&o.toLang, "l", "orc", "Language to translate into (short for --to-lang)")
	fs.Var(&o.messages, "message", "Text to translate, a file to read it from, or - for stdin (repeatable)")
	fs.Var(&o.messages, "m", "Short for --message")
	fs.StringVar(&cfg.Dictionary.Path, "dicts", cfg.Dictionary.Path, "Dictionary index JSON (default: bundled)")
	fs.StringVar(&o.format, "format", "text", "Input format: text, html or go")
	fs.StringVar(&cfg.Hyphenator.Kind, "hyphenator", cfg.Hyphenator.Kind, "Hyphenation oracle: patterns or openai")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	fs.StringVar(&cfg.OpenAI.Model, "model", cfg.OpenAI.Model, "OpenAI model for the openai oracle")
	fs.Uint64Var(&o.seed, "seed", 0, "Seed for fallback syllables (default: random each run)")
	fs.IntVar(&cfg.Cache.TTL, "cache-ttl", cfg.Cache.TTL, "Syllable cache TTL in seconds (0 = no expiry)")
	fs.StringVar(&cfg.Cache.RedisURL, "redis", cfg.Cache.RedisURL, "Redis URL for a shared syllable cache")
	fs.StringVar(&cfg.Cache.File, "cache-file", cfg.Cache.File, "Import the syllable cache from this file and save it on exit")
	fs.StringVar(&o.output, "output", "", "Output file (default: stdout)")
	fs.StringVar(&o.output, "o", "", "Output file (short for --output)")
	fs.BoolVar(&o.jsonOutput, "json", false, "Output result as JSON")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Show the syllable split without translating")
	fs.BoolVar(&o.list, "list", false, "List available languages")
	fs.BoolVar(&o.quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&o.version, "version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seeded = true
		}
	})
	if *apiKey != "" {
		cfg.OpenAI.APIKey = *apiKey
	}

	switch o.format {
	case "text", "html", "go":
	default:
		return nil, nil, fmt.Errorf("unknown format %q (want text, html or go)", o.format)
	}

	return o, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts, positional, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", gibberify.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	log := logger.New(cfg.Log, stderr)

	index, err := loadIndex(cfg.Dictionary.Path)
	if err != nil {
		return err
	}

	if opts.list {
		return listLanguages(stdout, index)
	}

	ctx := context.Background()

	oracle, err := newOracle(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := oracle.Close(); err != nil {
			log.Warn("closing syllable cache", slog.Any("error", err))
		}
	}()

	trOpts := []gibberify.TranslatorOption{
		gibberify.WithHyphenator(oracle),
		gibberify.WithLogger(log),
		gibberify.WithProcessor(processor.NewHTMLProcessor()),
		gibberify.WithProcessor(processor.NewGoProcessor()),
	}
	if opts.seeded {
		trOpts = append(trOpts, gibberify.WithPicker(gibberify.NewSeededPicker(opts.seed)))
	}

	if len(args) == 0 {
		interrupts, stop := notifyInterrupts()
		defer stop()
		s := session.New(index, stdout,
			session.WithLogger(log),
			session.WithTranslatorOptions(trOpts...))
		return s.Run(ctx, stdin, interrupts)
	}

	// Unknown tags fail before any input is read.
	if err := gibberify.CheckLanguages(opts.fromLang, opts.toLang); err != nil {
		return err
	}
	translator, err := index.NewTranslator(opts.fromLang, opts.toLang, trOpts...)
	if err != nil {
		return err
	}

	text, err := readMessages(append(opts.messages, positional...), stdin)
	if err != nil {
		return err
	}

	if opts.dryRun {
		return runDryRun(ctx, translator, text, opts, stdout)
	}

	start := time.Now()
	var result *gibberify.Result
	if opts.format == "text" {
		result, err = translator.TranslateText(ctx, text)
	} else {
		result, err = translator.Process(ctx, text, opts.format)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	var out io.Writer = stdout
	if opts.output != "" {
		f, err := os.Create(opts.output) // #nosec G304 - CLI tool writes user-specified files
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if opts.jsonOutput {
		return outputJSON(out, result, opts, elapsed)
	}

	fmt.Fprint(out, result.Content)
	if opts.format == "text" {
		fmt.Fprintln(out)
	}

	if !opts.quiet && opts.output != "" {
		fmt.Fprintf(stderr, "Done in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Words:      %d\n", result.Words)
		fmt.Fprintf(stderr, "  Syllables:  %d\n", result.Syllables)
		fmt.Fprintf(stderr, "  Fallbacks:  %d\n", result.Fallbacks)
	}

	return nil
}

func loadIndex(path string) (gibberify.DictionaryIndex, error) {
	if path == "" {
		return gibberify.DefaultDictionaries()
	}
	return gibberify.LoadDictionariesFile(path)
}

// readMessages resolves each value to text and joins them with a space.
// A value is "-" for all of stdin, the path of an existing file, or
// literal text.
func readMessages(values []string, stdin io.Reader) (string, error) {
	if len(values) == 0 {
		return "", errors.New("nothing to translate (use -m or pass the text as arguments)")
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch {
		case v == "-":
			data, err := io.ReadAll(stdin)
			if err != nil {
				return "", &gibberify.InputSourceError{Source: "stdin", Cause: err}
			}
			parts = append(parts, string(data))
		case isFile(v):
			data, err := os.ReadFile(v) // #nosec G304 - CLI tool reads user-specified files
			if err != nil {
				return "", &gibberify.InputSourceError{Source: v, Cause: err}
			}
			parts = append(parts, string(data))
		default:
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func listLanguages(w io.Writer, index gibberify.DictionaryIndex) error {
	for _, source := range index.SourceLanguages() {
		fmt.Fprintf(w, "%-4s %s\n", source, gibberify.GetLanguageName(source))
		for _, target := range index.TargetLanguages(source) {
			fmt.Fprintf(w, "  -> %-4s %s\n", target, gibberify.GetLanguageName(target))
		}
	}
	return nil
}

// dryRunEntry is one text with its syllables marked.
type dryRunEntry struct {
	Text       string `json:"text"`
	Hyphenated string `json:"hyphenated"`
}

// runDryRun shows how the oracle splits the input without mapping it.
func runDryRun(ctx context.Context, t *gibberify.Translator, text string, opts *options, w io.Writer) error {
	texts := []string{text}
	if opts.format != "text" {
		var proc gibberify.ContentProcessor = processor.NewHTMLProcessor()
		if opts.format == "go" {
			proc = processor.NewGoProcessor()
		}
		_, nodes, err := proc.Extract(text)
		if err != nil {
			return fmt.Errorf("extracting text: %w", err)
		}
		texts = texts[:0]
		for _, n := range nodes {
			texts = append(texts, n.Text)
		}
	}

	entries := make([]dryRunEntry, 0, len(texts))
	for _, s := range texts {
		hyphenated, err := hyphenateText(ctx, t, s)
		if err != nil {
			return err
		}
		entries = append(entries, dryRunEntry{Text: s, Hyphenated: hyphenated})
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"from":    t.SourceLang(),
			"to":      t.TargetLang(),
			"entries": entries,
		})
	}

	for _, e := range entries {
		fmt.Fprintln(w, e.Hyphenated)
	}
	return nil
}

// hyphenateText rewrites every word of s with its syllables joined by "-".
func hyphenateText(ctx context.Context, t *gibberify.Translator, s string) (string, error) {
	tokens := gibberify.Tokenize(s)
	var words []string
	for _, tok := range tokens {
		if tok.IsWord() {
			words = append(words, tok.Text)
		}
	}

	splits, err := t.Syllabify(ctx, words)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, tok := range tokens {
		if tok.IsWord() {
			b.WriteString(strings.Join(splits[tok.Text], "-"))
		} else {
			b.WriteString(tok.Text)
		}
	}
	return b.String(), nil
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	Content   string `json:"content"`
	From      string `json:"from"`
	To        string `json:"to"`
	Format    string `json:"format"`
	Nodes     int    `json:"nodes,omitempty"`
	Words     int    `json:"words"`
	Syllables int    `json:"syllables"`
	Fallbacks int    `json:"fallbacks"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

func outputJSON(w io.Writer, result *gibberify.Result, opts *options, elapsed time.Duration) error {
	out := JSONOutput{
		Content:   result.Content,
		From:      opts.fromLang,
		To:        opts.toLang,
		Format:    opts.format,
		Nodes:     result.Nodes,
		Words:     result.Words,
		Syllables: result.Syllables,
		Fallbacks: result.Fallbacks,
		ElapsedMs: elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
