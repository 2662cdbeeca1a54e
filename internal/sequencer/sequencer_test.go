package sequencer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/dictionary"
)

func newPool(n int) []dictionary.Word {
	pool := make([]dictionary.Word, n)
	for i := range pool {
		pool[i] = dictionary.Word{Noun: fmt.Sprintf("Wort%d", i), Article: declension.Das}
	}
	return pool
}

func nouns(words []dictionary.Word) []string {
	result := make([]string, len(words))
	for i, w := range words {
		result[i] = w.Noun
	}
	return result
}

func TestSequencer_Next(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "single word", size: 1},
		{name: "small pool", size: 3},
		{name: "larger pool", size: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newPool(tt.size)
			s := New(rand.New(rand.NewSource(1)))

			var pass []dictionary.Word
			for range tt.size {
				w, ok := s.Next(pool)
				require.True(t, ok)
				pass = append(pass, w)
			}
			assert.ElementsMatch(t, nouns(pool), nouns(pass))
			assert.Empty(t, s.Remaining())

			w, ok := s.Next(pool)
			require.True(t, ok)
			assert.Contains(t, nouns(pool), w.Noun)
			assert.Len(t, s.Remaining(), tt.size-1)
		})
	}
}

func TestSequencer_Next_EmptyPool(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))

	w, ok := s.Next(nil)
	assert.False(t, ok)
	assert.Equal(t, dictionary.Word{}, w)

	_, ok = s.Next(newPool(2))
	require.True(t, ok)
	_, ok = s.Next([]dictionary.Word{})
	assert.False(t, ok)
	assert.Empty(t, s.Remaining())
}

func TestSequencer_Next_PoolChangeReshuffles(t *testing.T) {
	s := New(rand.New(rand.NewSource(7)))
	pool := newPool(5)

	_, ok := s.Next(pool)
	require.True(t, ok)
	require.Len(t, s.Remaining(), 4)

	reordered := []dictionary.Word{pool[4], pool[3], pool[2], pool[1], pool[0]}
	_, ok = s.Next(reordered)
	require.True(t, ok)
	assert.Len(t, s.Remaining(), 3, "same membership in another order keeps the pass")

	changed := append(newPool(5), dictionary.Word{Noun: "Tisch", Article: declension.Der})
	_, ok = s.Next(changed)
	require.True(t, ok)
	assert.Len(t, s.Remaining(), 5, "changed membership starts a new pass")
}

func TestSequencer_Next_EditedWordsKeepOrder(t *testing.T) {
	s := New(rand.New(rand.NewSource(3)))
	pool := newPool(5)

	_, ok := s.Next(pool)
	require.True(t, ok)
	before := nouns(s.Remaining())

	edited := make([]dictionary.Word, len(pool))
	for i, w := range pool {
		w.AlternativeArticles = []declension.Article{declension.Der}
		w.Genitive = w.Noun + "s"
		edited[i] = w
	}
	w, ok := s.Next(edited)
	require.True(t, ok)
	assert.Equal(t, before[0], w.Noun, "same identities keep the pass")
	assert.Equal(t, []declension.Article{declension.Der}, w.AlternativeArticles)
	assert.Equal(t, w.Noun+"s", w.Genitive)

	for _, r := range s.Remaining() {
		assert.Equal(t, []declension.Article{declension.Der}, r.AlternativeArticles, r.Noun)
	}
	assert.Equal(t, before[1:], nouns(s.Remaining()))
}

func TestSequencer_Refresh_RequeuedWord(t *testing.T) {
	s := New(rand.New(rand.NewSource(5)))
	pool := newPool(3)

	missed, ok := s.Next(pool)
	require.True(t, ok)
	s.Requeue(missed)

	edited := make([]dictionary.Word, len(pool))
	for i, w := range pool {
		w.Translations = map[string]string{"en": "word"}
		edited[i] = w
	}
	s.Refresh(edited)

	remaining := s.Remaining()
	require.Len(t, remaining, 3)
	last := remaining[len(remaining)-1]
	assert.Equal(t, missed.Noun, last.Noun)
	assert.Equal(t, "word", last.Translation("en"))
}

func TestSequencer_Deterministic(t *testing.T) {
	pool := newPool(10)
	draw := func() []string {
		s := New(rand.New(rand.NewSource(42)))
		var got []string
		for range 25 {
			w, _ := s.Next(pool)
			got = append(got, w.Noun)
		}
		return got
	}
	assert.Equal(t, draw(), draw())
}

func TestSequencer_Requeue(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		drawn   int
		wantLen int
	}{
		{name: "missed word is appended to the current pass", size: 5, drawn: 2, wantLen: 4},
		{name: "missed word of the last element starts a new pass", size: 5, drawn: 5, wantLen: 5},
		{name: "single word pool", size: 1, drawn: 1, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				pool := newPool(tt.size)
				s := New(rand.New(rand.NewSource(seed)))

				var missed dictionary.Word
				for range tt.drawn {
					missed, _ = s.Next(pool)
				}
				before := s.Remaining()
				s.Requeue(missed)

				remaining := s.Remaining()
				require.Len(t, remaining, tt.wantLen)
				assert.Contains(t, nouns(remaining), missed.Noun)
				if tt.size > 1 {
					assert.NotEqual(t, missed.Noun, remaining[0].Noun)
				}
				if len(before) > 0 {
					assert.Equal(t, nouns(before), nouns(remaining[:len(before)]), "scheduled positions are kept")
					assert.Equal(t, missed.Noun, remaining[len(remaining)-1].Noun)
				}
			}
		})
	}
}

func TestSequencer_Requeue_BeforeNext(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	s.Requeue(dictionary.Word{Noun: "Tisch", Article: declension.Der})
	assert.Empty(t, s.Remaining())
}

func TestFingerprint(t *testing.T) {
	pool := newPool(4)
	reversed := []dictionary.Word{pool[3], pool[2], pool[1], pool[0]}

	assert.Equal(t, Fingerprint(pool), Fingerprint(reversed))
	assert.NotEqual(t, Fingerprint(pool), Fingerprint(pool[:3]))

	sameNounOtherTopic := append(newPool(3), dictionary.Word{Noun: "Wort3", Article: declension.Das, Topic: "Rooms"})
	assert.NotEqual(t, Fingerprint(pool), Fingerprint(sameNounOtherTopic))
}
