package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ZaguanLabs/gibberify"
)

// Session is an interactive translation prompt over a dictionary index.
type Session struct {
	index   gibberify.DictionaryIndex
	out     io.Writer
	logger  *slog.Logger
	opts    []gibberify.TranslatorOption
	version string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithTranslatorOptions sets the options passed to every translator the
// session creates.
func WithTranslatorOptions(opts ...gibberify.TranslatorOption) Option {
	return func(s *Session) {
		s.opts = append(s.opts, opts...)
	}
}

// New creates a session writing prompts and translations to out.
func New(index gibberify.DictionaryIndex, out io.Writer, opts ...Option) *Session {
	s := &Session{
		index:   index,
		out:     out,
		logger:  slog.New(slog.DiscardHandler),
		version: gibberify.FullVersion(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// progress is what the user has chosen so far.
type progress struct {
	state      State
	source     string
	translator *gibberify.Translator
}

// Run drives the session until the user backs out of language selection,
// input ends, or ctx is done. Each value received on interrupts moves the
// session one step back. A failure reading input is returned as an
// InputSourceError.
//
// Input is read on a separate goroutine. When Run returns early, that
// goroutine stays blocked until input yields its next line or ends, so
// callers that own input should close it.
func (s *Session) Run(ctx context.Context, input io.Reader, interrupts <-chan os.Signal) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go readLines(input, lines, readErr, done)

	p := &progress{state: StateWelcome}
	for {
		switch p.state {
		case StateWelcome:
			fmt.Fprintf(s.out, "Welcome to Gibberify version %s! Follow the prompts to translate a text.\n"+
				"To go back to the previous menu, press Ctrl+C.\n\n", s.version)
			s.fire(p, EventAdvance)
			continue
		case StateExit:
			fmt.Fprint(s.out, "\nGood bye!\n\n")
			return nil
		}

		s.prompt(p)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-interrupts:
			s.fire(p, EventBack)
			if p.state != StateExit {
				fmt.Fprint(s.out, "\nGoing back...\n\n")
			}
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return &gibberify.InputSourceError{Source: "stdin", Cause: err}
				}
				s.fire(p, EventQuit)
				continue
			}
			s.handle(ctx, p, line)
		}
	}
}

// fire applies e and forgets choices made in states that were left.
func (s *Session) fire(p *progress, e Event) {
	next := Transition(p.state, e)
	s.logger.Debug("session transition",
		slog.String("from", p.state.String()),
		slog.String("event", e.String()),
		slog.String("to", next.String()))

	if next == StateSelectLanguages && p.state != StateSelectLanguages {
		p.source = ""
		p.translator = nil
	}
	p.state = next
}

func (s *Session) prompt(p *progress) {
	switch {
	case p.state == StateSelectLanguages && p.source == "":
		fmt.Fprintf(s.out, "What language do you want to translate from? Options are: %s.\n",
			strings.Join(registered(s.index.SourceLanguages(), gibberify.IsRealLanguage), ", "))
	case p.state == StateSelectLanguages:
		fmt.Fprintf(s.out, "What language do you want to translate into? Options are: %s.\n",
			strings.Join(registered(s.index.TargetLanguages(p.source), gibberify.IsGibberishLanguage), ", "))
	case p.state == StateTranslate:
		fmt.Fprint(s.out, "What do you want to translate?\n")
	}
}

// registered keeps the tags accepted by isRegistered.
func registered(tags []string, isRegistered func(string) bool) []string {
	out := tags[:0:0]
	for _, tag := range tags {
		if isRegistered(tag) {
			out = append(out, tag)
		}
	}
	return out
}

func (s *Session) handle(ctx context.Context, p *progress, line string) {
	switch p.state {
	case StateSelectLanguages:
		tag := strings.TrimSpace(line)
		if p.source == "" {
			if _, ok := s.index[tag]; !ok || !gibberify.IsRealLanguage(tag) {
				s.printError(&gibberify.UnknownLanguageError{Tag: tag, Role: "source"})
				return
			}
			p.source = tag
			fmt.Fprintf(s.out, "You chose %q.\n", tag)
			return
		}

		if err := gibberify.CheckLanguages(p.source, tag); err != nil {
			s.printError(err)
			return
		}
		tr, err := s.index.NewTranslator(p.source, tag, s.opts...)
		if err != nil {
			s.printError(err)
			return
		}
		p.translator = tr
		fmt.Fprintf(s.out, "You chose %q.\n", tag)
		s.fire(p, EventAdvance)

	case StateTranslate:
		out, err := p.translator.Translate(ctx, line)
		if err != nil {
			s.printError(err)
			return
		}
		fmt.Fprintf(s.out, "... or as someone might say:\n%s\n", out)
		s.fire(p, EventAdvance)
	}
}

func (s *Session) printError(err error) {
	fmt.Fprintf(s.out, "ERROR: %v\n", err)
}

// readLines sends each input line on lines and closes it at end of input.
// The scanner error, nil at a clean end, is sent on errc first.
func readLines(r io.Reader, lines chan<- string, errc chan<- error, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case lines <- strings.TrimSuffix(scanner.Text(), "\r"):
		case <-done:
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}
