package processor

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ZaguanLabs/gibberify"
)

// GoProcessor gibberifies comments and string literals in Go source.
type GoProcessor struct {
	translateComments bool
	translateStrings  bool
}

// GoProcessorOption configures the Go processor.
type GoProcessorOption func(*GoProcessor)

// WithComments enables/disables comment translation.
func WithComments(enabled bool) GoProcessorOption {
	return func(p *GoProcessor) {
		p.translateComments = enabled
	}
}

// WithStrings enables/disables string literal translation.
func WithStrings(enabled bool) GoProcessorOption {
	return func(p *GoProcessor) {
		p.translateStrings = enabled
	}
}

// NewGoProcessor creates a new Go source processor.
func NewGoProcessor(opts ...GoProcessorOption) *GoProcessor {
	p := &GoProcessor{
		translateComments: true,
		translateStrings:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parsedGo holds the parsed file and the AST nodes keyed by node ID.
type parsedGo struct {
	fset     *token.FileSet
	file     *ast.File
	comments map[string]*ast.Comment
	literals map[string]*ast.BasicLit
}

// Extract parses Go source and returns one node per comment and
// translatable string literal.
func (p *GoProcessor) Extract(content string) (interface{}, []ContentNode, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", content, parser.ParseComments)
	if err != nil {
		return nil, nil, &gibberify.ProcessorError{
			Message:     "failed to parse Go source",
			Cause:       err,
			ContentType: "go",
		}
	}

	pg := &parsedGo{
		fset:     fset,
		file:     file,
		comments: make(map[string]*ast.Comment),
		literals: make(map[string]*ast.BasicLit),
	}
	var nodes []ContentNode

	if p.translateComments {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				text := extractCommentText(c.Text)
				if text == "" {
					continue
				}
				id := fmt.Sprintf("comment-%d", c.Pos())
				pg.comments[id] = c
				nodes = append(nodes, ContentNode{
					ID:       id,
					Text:     text,
					Hash:     gibberify.HashText(text),
					NodeType: "go_comment",
					Metadata: map[string]string{"line": strconv.Itoa(fset.Position(c.Pos()).Line)},
				})
			}
		}
	}

	if p.translateStrings {
		tags := make(map[*ast.BasicLit]bool)
		ast.Inspect(file, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.ImportSpec:
				return false
			case *ast.Field:
				if n.Tag != nil {
					tags[n.Tag] = true
				}
			case *ast.BasicLit:
				if n.Kind != token.STRING || tags[n] {
					return true
				}
				text, err := strconv.Unquote(n.Value)
				if err != nil || !isTranslatableString(text) {
					return true
				}
				id := fmt.Sprintf("string-%d", n.Pos())
				pg.literals[id] = n
				nodes = append(nodes, ContentNode{
					ID:       id,
					Text:     text,
					Hash:     gibberify.HashText(text),
					NodeType: "go_string",
					Metadata: map[string]string{
						"line":  strconv.Itoa(fset.Position(n.Pos()).Line),
						"quote": n.Value[:1],
					},
				})
			}
			return true
		})
	}

	return pg, nodes, nil
}

// Apply writes translations back and prints the file.
func (p *GoProcessor) Apply(parsed interface{}, nodes []ContentNode, translations map[string]string) (string, error) {
	pg, ok := parsed.(*parsedGo)
	if !ok {
		return "", &gibberify.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "go",
		}
	}

	for _, node := range nodes {
		translated, ok := translations[node.Hash]
		if !ok {
			continue
		}
		if c, ok := pg.comments[node.ID]; ok {
			if strings.HasPrefix(c.Text, "//") {
				c.Text = "// " + strings.ReplaceAll(translated, "\n", " ")
			} else {
				c.Text = "/* " + strings.ReplaceAll(translated, "*/", "* /") + " */"
			}
		}
		if lit, ok := pg.literals[node.ID]; ok {
			if lit.Value[0] == '`' && !strings.Contains(translated, "`") {
				lit.Value = "`" + translated + "`"
			} else {
				lit.Value = strconv.Quote(translated)
			}
		}
	}

	var buf strings.Builder
	if err := printer.Fprint(&buf, pg.fset, pg.file); err != nil {
		return "", &gibberify.ProcessorError{
			Message:     "failed to print Go source",
			Cause:       err,
			ContentType: "go",
		}
	}

	return buf.String(), nil
}

// ContentType returns "go".
func (p *GoProcessor) ContentType() string {
	return "go"
}

// extractCommentText returns the prose of a comment, or "" for compiler
// and tool directives.
func extractCommentText(comment string) string {
	if strings.HasPrefix(comment, "//") {
		body := comment[2:]
		if isDirective(body) {
			return ""
		}
		return strings.TrimSpace(body)
	}
	if strings.HasPrefix(comment, "/*") && strings.HasSuffix(comment, "*/") {
		return strings.TrimSpace(comment[2 : len(comment)-2])
	}
	return ""
}

// isDirective matches //go:embed, //nolint:..., //line and similar.
func isDirective(body string) bool {
	if body == "" || body[0] == ' ' {
		return false
	}
	if strings.HasPrefix(body, "line ") {
		return true
	}
	name, _, found := strings.Cut(body, ":")
	return found && name != "" && !strings.ContainsAny(name, " \t")
}

// formatVerb matches a fmt verb with optional flags, width and precision.
var formatVerb = regexp.MustCompile(`%[-+# 0]*(\[\d+\])?(\d+|\*)?(\.(\d+|\*)?)?[a-zA-Z%]`)

// isTranslatableString reports whether a literal reads like prose.
func isTranslatableString(s string) bool {
	if len(s) < 2 {
		return false
	}

	// Paths and URLs
	if strings.Contains(s, "/") && !strings.Contains(s, " ") {
		return false
	}

	// Format strings like "hello %s" or "%-10v items"
	if formatVerb.MatchString(s) {
		return false
	}

	// Constants like "GIBBERIFY_CONFIG"
	if s == strings.ToUpper(s) && !strings.Contains(s, " ") {
		return false
	}

	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

var _ ContentProcessor = (*GoProcessor)(nil)
