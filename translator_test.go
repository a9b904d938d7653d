package gibberify

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cafeTable = TranslationTable{"ca": "zo", "fe": "ru"}

// mapHyphenator splits words found in splits and keeps the rest whole.
type mapHyphenator struct {
	splits map[string][]string
	calls  int
}

func (h *mapHyphenator) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	h.calls++
	out := make([][]string, len(req.Words))
	for i, w := range req.Words {
		if s, ok := h.splits[w]; ok {
			out[i] = s
		} else {
			out[i] = []string{w}
		}
	}
	return out, nil
}

// firstKey always picks the smallest key.
var firstKey = PickerFunc(func(keys []string) string { return keys[0] })

// mockHTMLProcessor is a simple HTML processor for testing
type mockHTMLProcessor struct{}

func (p *mockHTMLProcessor) Extract(content string) (interface{}, []ContentNode, error) {
	var nodes []ContentNode
	for _, part := range strings.Split(content, ">") {
		idx := strings.Index(part, "<")
		if idx > 0 {
			text := strings.TrimSpace(part[:idx])
			if text != "" {
				hash := HashText(text)
				nodes = append(nodes, ContentNode{
					ID:       hash[:8],
					Text:     text,
					Hash:     hash,
					NodeType: "html_text",
				})
			}
		}
	}
	return content, nodes, nil
}

func (p *mockHTMLProcessor) Apply(parsed interface{}, nodes []ContentNode, translations map[string]string) (string, error) {
	result := parsed.(string)
	for _, node := range nodes {
		if translated, ok := translations[node.Hash]; ok {
			result = strings.ReplaceAll(result, ">"+node.Text+"<", ">"+translated+"<")
		}
	}
	return result, nil
}

func (p *mockHTMLProcessor) ContentType() string {
	return "html"
}

func TestTranslate_CasePreserved(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cafe", "zoru"},
		{"Cafe", "Zoru"},
		{"CAFE", "ZORU"},
		{"ca fe", "zo ru"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Translate(cafeTable, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_Empty(t *testing.T) {
	got, err := Translate(cafeTable, "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTranslate_SeparatorsPassThrough(t *testing.T) {
	for _, in := range []string{"..., !?", "-", " ", "\n\t"} {
		got, err := Translate(cafeTable, in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestTranslate_WhitespaceCollapsed(t *testing.T) {
	got, err := Translate(cafeTable, "ca    fe")
	require.NoError(t, err)
	assert.Equal(t, "zo ru", got)

	got, err = Translate(cafeTable, "ca\n\nfe")
	require.NoError(t, err)
	assert.Equal(t, "zo\n\nru", got, "line breaks are kept")
}

func TestTranslate_FallbackUsesKey(t *testing.T) {
	got, err := Translate(TranslationTable{"ca": "zo"}, "fe")
	require.NoError(t, err)
	assert.Equal(t, "ca", got)
}

func TestTranslate_EmptyTable(t *testing.T) {
	_, err := Translate(TranslationTable{}, "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDictionary))

	_, err = NewTranslator(nil)
	assert.ErrorIs(t, err, ErrInvalidDictionary)
}

func TestTranslator_FallbackIsAlwaysKey(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	letters := []rune("abcdefghilmnoprstuvz")
	randWord := func() string {
		n := 1 + rng.IntN(5)
		r := make([]rune, n)
		for i := range r {
			r[i] = letters[rng.IntN(len(letters))]
		}
		return string(r)
	}

	for round := 0; round < 50; round++ {
		table := make(TranslationTable)
		size := 1 + rng.IntN(8)
		for len(table) < size {
			table[randWord()] = strings.ToUpper(randWord())
		}
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}

		tr, err := NewTranslator(table,
			WithHyphenator(&mapHyphenator{}),
			WithPicker(NewSeededPicker(uint64(round))))
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			word := randWord()
			got, err := tr.Translate(context.Background(), word)
			require.NoError(t, err)
			if mapped, ok := table[word]; ok {
				assert.Equal(t, mapped, got)
			} else {
				assert.True(t, slices.Contains(keys, got), "fallback %q for %q is not a key", got, word)
			}
		}
	}
}

func TestTranslator_SeededPickerDeterministic(t *testing.T) {
	table := TranslationTable{"ba": "x", "do": "y", "ku": "z"}
	text := "unknown words everywhere, nothing maps"

	run := func() string {
		tr, err := NewTranslator(table, WithPicker(NewSeededPicker(42)))
		require.NoError(t, err)
		got, err := tr.Translate(context.Background(), text)
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, run(), run())
}

func TestTranslator_ConstantPicker(t *testing.T) {
	tr, err := NewTranslator(cafeTable, WithPicker(firstKey))
	require.NoError(t, err)

	got, err := tr.Translate(context.Background(), "Xyz")
	require.NoError(t, err)
	assert.Equal(t, "Ca", got)
}

func TestTranslator_Counters(t *testing.T) {
	tr, err := NewTranslator(cafeTable, WithPicker(firstKey))
	require.NoError(t, err)

	res, err := tr.TranslateText(context.Background(), "Cafe fe, xyz")
	require.NoError(t, err)
	assert.Equal(t, "Zoru ru, ca", res.Content)
	assert.Equal(t, 3, res.Words)
	assert.Equal(t, 4, res.Syllables)
	assert.Equal(t, 1, res.Fallbacks)
}

func TestTranslator_DeduplicatesWords(t *testing.T) {
	h := &mapHyphenator{splits: map[string][]string{"cafe": {"ca", "fe"}}}
	tr, err := NewTranslator(cafeTable, WithHyphenator(h))
	require.NoError(t, err)

	splits, err := tr.Syllabify(context.Background(), uniqueWords(Tokenize("cafe cafe cafe")))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"cafe": {"ca", "fe"}}, splits)
	assert.Equal(t, 1, h.calls)
}

func TestTranslator_RepairsBadSplit(t *testing.T) {
	h := &mapHyphenator{splits: map[string][]string{
		"ca": {"x", "y"},
		"fe": {"", "fe", ""},
	}}
	tr, err := NewTranslator(cafeTable, WithHyphenator(h))
	require.NoError(t, err)

	got, err := tr.Translate(context.Background(), "ca fe")
	require.NoError(t, err)
	assert.Equal(t, "zo ru", got)
}

func TestTranslator_CountMismatch(t *testing.T) {
	h := HyphenatorFunc(func(ctx context.Context, req HyphenateRequest) ([][]string, error) {
		return nil, nil
	})
	tr, err := NewTranslator(cafeTable, WithHyphenator(h))
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "cafe")
	var mismatch *CountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Expected)
	assert.Equal(t, 0, mismatch.Got)
}

func TestTranslator_HyphenatorError(t *testing.T) {
	boom := &HyphenationError{Message: "oracle down"}
	h := HyphenatorFunc(func(ctx context.Context, req HyphenateRequest) ([][]string, error) {
		return nil, boom
	})
	tr, err := NewTranslator(cafeTable, WithHyphenator(h))
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "cafe")
	assert.ErrorIs(t, err, boom)

	got, err := tr.Translate(context.Background(), "!!")
	require.NoError(t, err, "no words means no oracle call")
	assert.Equal(t, "!!", got)
}

func TestTranslator_Keys(t *testing.T) {
	tr, err := NewTranslator(TranslationTable{"lo": "a", "ca": "b", "fe": "c"}, WithLanguages("en", "orc"))
	require.NoError(t, err)

	assert.Equal(t, []string{"ca", "fe", "lo"}, tr.Keys())
	assert.Equal(t, "en", tr.SourceLang())
	assert.Equal(t, "orc", tr.TargetLang())
}

func TestTranslator_Process(t *testing.T) {
	tr, err := NewTranslator(cafeTable,
		WithLanguages("en", "orc"),
		WithProcessor(&mockHTMLProcessor{}))
	require.NoError(t, err)

	res, err := tr.Process(context.Background(), "<html><body><p>Cafe</p><p>Cafe</p></body></html>", "html")
	require.NoError(t, err)

	assert.Contains(t, res.Content, "<p>Zoru</p><p>Zoru</p>")
	assert.Contains(t, res.Content, `lang="x-orc"`)
	assert.Equal(t, 2, res.Nodes)
	assert.Equal(t, 1, res.Words, "identical nodes are translated once")
}

func TestTranslator_ProcessEmpty(t *testing.T) {
	h := &mapHyphenator{}
	tr, err := NewTranslator(cafeTable, WithHyphenator(h), WithProcessor(&mockHTMLProcessor{}))
	require.NoError(t, err)

	res, err := tr.ProcessHTML(context.Background(), "<div></div>")
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", res.Content)
	assert.Equal(t, 0, res.Nodes)
	assert.Equal(t, 0, h.calls)
}

func TestTranslator_NoProcessor(t *testing.T) {
	tr, err := NewTranslator(cafeTable)
	require.NoError(t, err)

	_, err = tr.Process(context.Background(), "<p>ca</p>", "html")
	var procErr *ProcessorError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "html", procErr.ContentType)
}
