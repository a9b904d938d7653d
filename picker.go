package gibberify

import (
	"math/rand/v2"
	"sync"
)

// Picker selects the replacement for a syllable that has no table entry.
// keys is never empty when Pick is called.
type Picker interface {
	Pick(keys []string) string
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(keys []string) string

// Pick calls f(keys).
func (f PickerFunc) Pick(keys []string) string {
	return f(keys)
}

// RandomPicker picks uniformly using the global math/rand/v2 source.
// It is safe for concurrent use and differs from run to run.
type RandomPicker struct{}

// Pick returns a uniformly chosen key.
func (RandomPicker) Pick(keys []string) string {
	return keys[rand.IntN(len(keys))]
}

// SeededPicker picks uniformly from a seeded source, so the same seed and
// the same sequence of calls yield the same picks.
type SeededPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededPicker creates a deterministic picker.
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Pick returns a key chosen by the seeded source.
func (p *SeededPicker) Pick(keys []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return keys[p.rng.IntN(len(keys))]
}

var (
	_ Picker = RandomPicker{}
	_ Picker = (*SeededPicker)(nil)
	_ Picker = PickerFunc(nil)
)
