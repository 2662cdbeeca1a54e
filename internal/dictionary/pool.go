package dictionary

import (
	"slices"
	"sort"
)

// PoolBuilder merges built-in and user dictionaries into deduplicated word pools.
// Results are recomputed on every call; nothing is cached.
type PoolBuilder struct {
	builtin []Dictionary
}

func NewPoolBuilder(builtin []Dictionary) *PoolBuilder {
	return &PoolBuilder{builtin: builtin}
}

// Pool returns the words of the enabled dictionaries.
// A non-empty topic set keeps only words in one of those topics.
func (b *PoolBuilder) Pool(enabledIDs, topics []string, userDictionaries []Dictionary) []Word {
	return b.collect(enabledIDs, userDictionaries, func(w Word) bool {
		return len(topics) == 0 || slices.Contains(topics, w.Topic)
	})
}

// TopicPool returns only words whose topic is in the topic set, regardless of whether
// a topic filter is active in the training settings. An empty topic set yields nil.
func (b *PoolBuilder) TopicPool(enabledIDs, topics []string, userDictionaries []Dictionary) []Word {
	if len(topics) == 0 {
		return nil
	}
	return b.collect(enabledIDs, userDictionaries, func(w Word) bool {
		return slices.Contains(topics, w.Topic)
	})
}

// TopicCounts returns the number of distinct words per topic in the enabled dictionaries.
// Words without a topic are not counted.
func (b *PoolBuilder) TopicCounts(enabledIDs []string, userDictionaries []Dictionary) map[string]int {
	counts := make(map[string]int)
	for _, w := range b.Pool(enabledIDs, nil, userDictionaries) {
		if w.Topic == "" {
			continue
		}
		counts[w.Topic]++
	}
	return counts
}

// Topics returns every distinct topic across built-in and user dictionaries, sorted.
func (b *PoolBuilder) Topics(userDictionaries []Dictionary) []string {
	seen := make(map[string]struct{})
	for _, d := range b.sources(userDictionaries) {
		for _, w := range d.Words {
			if w.Topic != "" {
				seen[w.Topic] = struct{}{}
			}
		}
	}
	topics := make([]string, 0, len(seen))
	for topic := range seen {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// EffectiveEnabledIDs returns enabledIDs, or DefaultEnabledIDs when they yield no words.
func (b *PoolBuilder) EffectiveEnabledIDs(enabledIDs []string, userDictionaries []Dictionary) []string {
	if len(b.Pool(enabledIDs, nil, userDictionaries)) > 0 {
		return enabledIDs
	}
	return slices.Clone(DefaultEnabledIDs)
}

// Builtin returns the built-in dictionaries the builder was created with.
func (b *PoolBuilder) Builtin() []Dictionary {
	return b.builtin
}

func (b *PoolBuilder) sources(userDictionaries []Dictionary) []Dictionary {
	sources := make([]Dictionary, 0, len(b.builtin)+len(userDictionaries))
	sources = append(sources, b.builtin...)
	return append(sources, userDictionaries...)
}

// collect walks the enabled dictionaries in order; the first occurrence of a word key wins.
func (b *PoolBuilder) collect(enabledIDs []string, userDictionaries []Dictionary, keep func(Word) bool) []Word {
	seen := make(map[WordKey]struct{})
	var words []Word
	for _, d := range b.sources(userDictionaries) {
		if !isEnabled(d, enabledIDs) {
			continue
		}
		for _, w := range d.Words {
			if !keep(w) {
				continue
			}
			key := w.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}

// isEnabled requires a user dictionary to be both listed and switched on.
func isEnabled(d Dictionary, enabledIDs []string) bool {
	if !slices.Contains(enabledIDs, d.ID) {
		return false
	}
	return d.Builtin || d.Enabled
}
