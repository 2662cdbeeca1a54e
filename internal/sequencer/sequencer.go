// Package sequencer walks a word pool in shuffled, non-repeating passes.
package sequencer

import (
	"hash/fnv"
	"math/rand"
	"slices"

	"github.com/at-ishikawa/artikel/internal/dictionary"
)

// Sequencer keeps a shuffled ordering of the pool and a cursor into it.
// It is not safe for concurrent use.
type Sequencer struct {
	rng         *rand.Rand
	order       []dictionary.Word
	cursor      int
	fingerprint uint64
	pool        []dictionary.Word
}

func New(rng *rand.Rand) *Sequencer {
	return &Sequencer{rng: rng}
}

// Next returns the next word of the current pass.
// A pool whose fingerprint differs from the last one seen is reshuffled from the start,
// and an exhausted pass is reshuffled. A pool with the same fingerprint keeps the
// ordering but picks up edited fields of its words. An empty pool returns false.
func (s *Sequencer) Next(pool []dictionary.Word) (dictionary.Word, bool) {
	if len(pool) == 0 {
		s.Reset()
		return dictionary.Word{}, false
	}

	if fp := Fingerprint(pool); s.order == nil || fp != s.fingerprint {
		s.fingerprint = fp
		s.pool = slices.Clone(pool)
		s.reshuffle()
	} else {
		s.Refresh(pool)
	}
	if s.cursor >= len(s.order) {
		s.reshuffle()
	}

	w := s.order[s.cursor]
	s.cursor++
	return w, true
}

// Refresh replaces the stored copies of words with the pool entries of the same key.
// The ordering and cursor are unchanged.
func (s *Sequencer) Refresh(pool []dictionary.Word) {
	if s.order == nil {
		return
	}
	byKey := make(map[dictionary.WordKey]dictionary.Word, len(pool))
	for _, w := range pool {
		byKey[w.Key()] = w
	}
	for i, w := range s.pool {
		if fresh, ok := byKey[w.Key()]; ok {
			s.pool[i] = fresh
		}
	}
	for i, w := range s.order {
		if fresh, ok := byKey[w.Key()]; ok {
			s.order[i] = fresh
		}
	}
}

// Requeue appends a missed word to the end of the current ordering.
// Scheduled positions ahead of the cursor are left untouched.
// When the pass has no remaining words, the next pass starts now with the
// missed word placed anywhere but first.
func (s *Sequencer) Requeue(w dictionary.Word) {
	if s.order == nil {
		return
	}
	if s.cursor < len(s.order) {
		s.order = append(s.order, w)
		return
	}

	s.reshuffle()
	if len(s.order) < 2 || s.order[0].Key() != w.Key() {
		return
	}
	j := 1 + s.rng.Intn(len(s.order)-1)
	s.order[0], s.order[j] = s.order[j], s.order[0]
}

// Remaining returns the words left in the current pass, in order.
func (s *Sequencer) Remaining() []dictionary.Word {
	if s.cursor >= len(s.order) {
		return nil
	}
	return slices.Clone(s.order[s.cursor:])
}

// Reset discards the ordering so that the next call reshuffles.
func (s *Sequencer) Reset() {
	s.order = nil
	s.pool = nil
	s.cursor = 0
	s.fingerprint = 0
}

func (s *Sequencer) reshuffle() {
	s.order = slices.Clone(s.pool)
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	s.cursor = 0
}

// Fingerprint is an order-independent FNV-1a digest of the pool's word identities.
func Fingerprint(pool []dictionary.Word) uint64 {
	keys := make([]string, len(pool))
	for i, w := range pool {
		keys[i] = w.Key().String()
	}
	slices.Sort(keys)

	h := fnv.New64a()
	for _, k := range keys {
		_, _ = h.Write([]byte(k))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
