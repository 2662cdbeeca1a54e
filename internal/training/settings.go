// Package training runs article training sessions over a word pool.
package training

import (
	"fmt"
	"slices"
	"strings"

	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/dictionary"
)

// Mode selects how a word is presented.
type Mode string

const (
	ModeNounOnly Mode = "noun-only"
	ModeSentence Mode = "sentence"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeNounOnly, ModeSentence:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Settings parameterizes a training session.
type Settings struct {
	Mode                Mode                   `yaml:"mode" json:"mode"`
	EnabledDictionaries []string               `yaml:"enabled_dictionaries" json:"enabled_dictionaries"`
	Topics              []string               `yaml:"topics,omitempty" json:"topics,omitempty"`
	Cases               []declension.Case      `yaml:"cases" json:"cases"`
	ArticleType         declension.ArticleType `yaml:"article_type" json:"article_type"`
	PronounType         declension.PronounType `yaml:"pronoun_type" json:"pronoun_type"`
	ShowTranslation     bool                   `yaml:"show_translation" json:"show_translation"`
	TranslationLanguage string                 `yaml:"translation_language" json:"translation_language"`
}

func DefaultSettings() Settings {
	return Settings{
		Mode:                ModeNounOnly,
		EnabledDictionaries: slices.Clone(dictionary.DefaultEnabledIDs),
		Cases:               []declension.Case{declension.Nominativ},
		ArticleType:         declension.Definite,
		PronounType:         declension.PronounNone,
		ShowTranslation:     true,
		TranslationLanguage: dictionary.LanguageEnglish,
	}
}

// Normalize replaces unknown values with defaults and removes duplicates.
// An empty case set is kept; sessions then ask for nominativ.
func (s Settings) Normalize() Settings {
	defaults := DefaultSettings()

	if _, err := ParseMode(string(s.Mode)); err != nil {
		s.Mode = defaults.Mode
	}
	if _, err := declension.ParseArticleType(string(s.ArticleType)); err != nil {
		s.ArticleType = defaults.ArticleType
	}
	if pronounType, err := declension.ParsePronounType(string(s.PronounType)); err != nil {
		s.PronounType = defaults.PronounType
	} else {
		s.PronounType = pronounType
	}
	if !slices.Contains(dictionary.Languages, s.TranslationLanguage) {
		s.TranslationLanguage = defaults.TranslationLanguage
	}

	var cases []declension.Case
	for _, c := range s.Cases {
		parsed, err := declension.ParseCase(string(c))
		if err != nil || slices.Contains(cases, parsed) {
			continue
		}
		cases = append(cases, parsed)
	}
	s.Cases = cases
	s.EnabledDictionaries = unique(s.EnabledDictionaries)
	s.Topics = unique(s.Topics)
	return s
}

// promptEquals reports whether both settings ask the same question for a word.
func (s Settings) promptEquals(other Settings) bool {
	return s.Mode == other.Mode &&
		s.ArticleType == other.ArticleType &&
		s.PronounType == other.PronounType &&
		slices.Equal(s.Cases, other.Cases)
}

func unique(values []string) []string {
	var result []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(result, v) {
			continue
		}
		result = append(result, v)
	}
	return result
}
