package dictionary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/at-ishikawa/artikel/internal/declension"
)

var (
	ErrNotFound  = errors.New("dictionary not found")
	ErrEmptyName = errors.New("dictionary name is empty")
	ErrNoWords   = errors.New("dictionary has no words")
	ErrReadOnly  = errors.New("built-in dictionaries are read-only")
)

// Translation languages stored alongside a word.
const (
	LanguageEnglish   = "en"
	LanguageRussian   = "ru"
	LanguageUkrainian = "uk"
)

// Languages lists the supported translation languages.
var Languages = []string{LanguageEnglish, LanguageRussian, LanguageUkrainian}

// Word is a vocabulary entry. Noun and Article are always present.
type Word struct {
	Noun                string               `json:"noun" yaml:"noun" validate:"required"`
	Article             declension.Article   `json:"article" yaml:"article" validate:"required,oneof=der die das"`
	AlternativeArticles []declension.Article `json:"alternative_articles,omitempty" yaml:"alternative_articles,omitempty" validate:"dive,oneof=der die das"`
	Translations        map[string]string    `json:"translations,omitempty" yaml:"translations,omitempty"`
	ExampleSentence     string               `json:"example_sentence,omitempty" yaml:"example_sentence,omitempty"`
	Level               string               `json:"level,omitempty" yaml:"level,omitempty"`
	Topic               string               `json:"topic,omitempty" yaml:"topic,omitempty"`
	AudioURL            string               `json:"audio_url,omitempty" yaml:"audio_url,omitempty"`
	Genitive            string               `json:"genitive,omitempty" yaml:"genitive,omitempty"`
}

// WordKey identifies a word across dictionaries.
type WordKey struct {
	Noun    string
	Article declension.Article
	Topic   string
}

func (k WordKey) String() string {
	return k.Noun + "|" + string(k.Article) + "|" + k.Topic
}

func (w Word) Key() WordKey {
	return WordKey{Noun: w.Noun, Article: w.Article, Topic: w.Topic}
}

// Articles returns the primary article followed by its alternatives.
func (w Word) Articles() []declension.Article {
	return append([]declension.Article{w.Article}, w.AlternativeArticles...)
}

// Translation returns the translation for the language, or an empty string.
func (w Word) Translation(language string) string {
	return w.Translations[language]
}

// Dictionary is a named, ordered collection of words.
type Dictionary struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Words     []Word    `json:"words" yaml:"words"`
	Enabled   bool      `json:"enabled" yaml:"enabled"`
	IsPublic  bool      `json:"is_public" yaml:"is_public"`
	Builtin   bool      `json:"-" yaml:"-"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate checks that a user dictionary can be stored.
func (d Dictionary) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	return ValidateWords(d.Words)
}

// ValidateWords checks that a word list is non-empty and well-formed.
func ValidateWords(words []Word) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	for i, w := range words {
		if strings.TrimSpace(w.Noun) == "" {
			return fmt.Errorf("word %d: noun is empty", i)
		}
		if !w.Article.Valid() {
			return fmt.Errorf("word %d (%s): invalid article %q", i, w.Noun, w.Article)
		}
		for _, alt := range w.AlternativeArticles {
			if !alt.Valid() {
				return fmt.Errorf("word %d (%s): invalid alternative article %q", i, w.Noun, alt)
			}
		}
	}
	return nil
}
