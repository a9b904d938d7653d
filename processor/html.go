package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZaguanLabs/gibberify"
	"golang.org/x/net/html"
)

// DefaultAttributes lists the attributes whose values are gibberified
// along with text nodes.
var DefaultAttributes = []string{"alt", "title", "placeholder"}

// HTMLProcessor extracts and applies translations to HTML content.
type HTMLProcessor struct {
	ignoredTags map[string]bool
	attributes  map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: gibberify.IgnoredTags,
		attributes:  toSet(DefaultAttributes),
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: toSet(tags),
		attributes:  toSet(DefaultAttributes),
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// htmlTarget is a place in the DOM that receives a translation.
type htmlTarget struct {
	node *html.Node
	attr int // index into node.Attr, or -1 for a text node
}

// parsedHTML holds the parsed document and the targets keyed by node ID.
type parsedHTML struct {
	doc     *goquery.Document
	targets map[string]htmlTarget
}

// skip reports whether n and its subtree must be left untouched.
func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-translate" {
			return true
		}
	}
	return false
}

// Extract parses HTML and returns one node per text node or translatable
// attribute, in document order.
func (p *HTMLProcessor) Extract(content string) (interface{}, []ContentNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &gibberify.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []ContentNode
	targets := make(map[string]htmlTarget)

	add := func(text, nodeType string, target htmlTarget, meta map[string]string) {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return
		}
		id := fmt.Sprintf("node-%d", len(nodes))
		targets[id] = target
		nodes = append(nodes, ContentNode{
			ID:       id,
			Text:     trimmed,
			Hash:     gibberify.HashText(trimmed),
			NodeType: nodeType,
			Metadata: meta,
		})
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		switch n.Type {
		case html.ElementNode:
			for i, attr := range n.Attr {
				if p.attributes[attr.Key] {
					add(attr.Val, "html_attr", htmlTarget{node: n, attr: i},
						map[string]string{"tag": n.Data, "attr": attr.Key})
				}
			}
		case html.TextNode:
			meta := map[string]string{}
			if n.Parent != nil {
				meta["parent_tag"] = n.Parent.Data
			}
			add(n.Data, "html_text", htmlTarget{node: n, attr: -1}, meta)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range doc.Nodes {
		walk(n)
	}

	return &parsedHTML{doc: doc, targets: targets}, nodes, nil
}

// Apply writes translations back into the document, keeping the
// whitespace that surrounded each original text.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []ContentNode, translations map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &gibberify.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	for _, node := range nodes {
		translated, ok := translations[node.Hash]
		if !ok {
			continue
		}
		target, ok := ph.targets[node.ID]
		if !ok {
			continue
		}
		if target.attr < 0 {
			target.node.Data = preserveWhitespace(target.node.Data, translated)
		} else {
			a := &target.node.Attr[target.attr]
			a.Val = preserveWhitespace(a.Val, translated)
		}
	}

	out, err := ph.doc.Html()
	if err != nil {
		return "", &gibberify.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// preserveWhitespace preserves the original leading/trailing whitespace.
func preserveWhitespace(original, translated string) string {
	trimmedLeft := strings.TrimLeft(original, " \t\n\r")
	leading := original[:len(original)-len(trimmedLeft)]
	trailing := trimmedLeft[len(strings.TrimRight(trimmedLeft, " \t\n\r")):]
	return leading + translated + trailing
}

var _ ContentProcessor = (*HTMLProcessor)(nil)
