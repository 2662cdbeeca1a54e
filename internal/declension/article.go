// Package declension resolves German determiners for a noun's gender and grammatical case.
package declension

import (
	"fmt"
	"strings"
)

// Article is the grammatical gender marker of a noun.
type Article string

const (
	Der Article = "der"
	Die Article = "die"
	Das Article = "das"
)

// Articles lists the genders in table order.
var Articles = []Article{Der, Die, Das}

// ParseArticle parses a gender marker case-insensitively.
func ParseArticle(s string) (Article, error) {
	switch a := Article(strings.ToLower(strings.TrimSpace(s))); a {
	case Der, Die, Das:
		return a, nil
	}
	return "", fmt.Errorf("unknown article %q", s)
}

func (a Article) Valid() bool {
	return a == Der || a == Die || a == Das
}

// Case is a grammatical case.
type Case string

const (
	Nominativ Case = "nominativ"
	Akkusativ Case = "akkusativ"
	Dativ     Case = "dativ"
	Genitiv   Case = "genitiv"
)

// Cases lists the cases in table order.
var Cases = []Case{Nominativ, Akkusativ, Dativ, Genitiv}

func ParseCase(s string) (Case, error) {
	switch c := Case(strings.ToLower(strings.TrimSpace(s))); c {
	case Nominativ, Akkusativ, Dativ, Genitiv:
		return c, nil
	}
	return "", fmt.Errorf("unknown case %q", s)
}

func (c Case) Valid() bool {
	switch c {
	case Nominativ, Akkusativ, Dativ, Genitiv:
		return true
	}
	return false
}

// ArticleType selects between definite and indefinite articles.
type ArticleType string

const (
	Definite   ArticleType = "definite"
	Indefinite ArticleType = "indefinite"
)

func ParseArticleType(s string) (ArticleType, error) {
	switch t := ArticleType(strings.ToLower(strings.TrimSpace(s))); t {
	case Definite, Indefinite:
		return t, nil
	}
	return "", fmt.Errorf("unknown article type %q", s)
}

// PronounType selects the kind of determiner asked for instead of a plain article.
// PronounPersonal keeps plain articles and only changes sentence templates.
type PronounType string

const (
	PronounNone          PronounType = "none"
	PronounPossessive    PronounType = "possessive"
	PronounDemonstrative PronounType = "demonstrative"
	PronounPersonal      PronounType = "personal"
)

func ParsePronounType(s string) (PronounType, error) {
	switch t := PronounType(strings.ToLower(strings.TrimSpace(s))); t {
	case PronounNone, PronounPossessive, PronounDemonstrative, PronounPersonal:
		return t, nil
	case "":
		return PronounNone, nil
	}
	return "", fmt.Errorf("unknown pronoun type %q", s)
}
