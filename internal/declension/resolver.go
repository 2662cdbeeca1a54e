package declension

import (
	"slices"
	"strings"
)

// Answer is the resolved determiner for a prompt.
// Canonical is shown to the learner, Accepted holds every spelling graded as correct.
type Answer struct {
	Canonical string
	Accepted  []string
}

// Accepts reports whether the trimmed, lower-cased input is an accepted answer.
func (a Answer) Accepts(input string) bool {
	return slices.Contains(a.Accepted, normalize(input))
}

var definiteTable = map[Article]map[Case]string{
	Der: {Nominativ: "der", Akkusativ: "den", Dativ: "dem", Genitiv: "des"},
	Die: {Nominativ: "die", Akkusativ: "die", Dativ: "der", Genitiv: "der"},
	Das: {Nominativ: "das", Akkusativ: "das", Dativ: "dem", Genitiv: "des"},
}

// Endings of ein-words (indefinite article and possessives).
var einEndings = map[Article]map[Case]string{
	Der: {Nominativ: "", Akkusativ: "en", Dativ: "em", Genitiv: "es"},
	Die: {Nominativ: "e", Akkusativ: "e", Dativ: "er", Genitiv: "er"},
	Das: {Nominativ: "", Akkusativ: "", Dativ: "em", Genitiv: "es"},
}

// Endings of der-words (demonstratives).
var derEndings = map[Article]map[Case]string{
	Der: {Nominativ: "er", Akkusativ: "en", Dativ: "em", Genitiv: "es"},
	Die: {Nominativ: "e", Akkusativ: "e", Dativ: "er", Genitiv: "er"},
	Das: {Nominativ: "es", Akkusativ: "es", Dativ: "em", Genitiv: "es"},
}

var (
	possessiveStems    = []string{"mein", "dein", "sein", "ihr", "unser", "euer"}
	demonstrativeStems = []string{"dies", "jen"}
)

// Resolve returns the determiner for a noun of the given gender in the given case.
func Resolve(article Article, c Case, articleType ArticleType, pronounType PronounType) Answer {
	forms := forms(article, c, articleType, pronounType)
	return Answer{
		Canonical: forms[0],
		Accepted:  forms,
	}
}

// ResolveWord resolves a noun that accepts several genders.
// The canonical form comes from the first article; accepted forms are the union over all.
func ResolveWord(articles []Article, c Case, articleType ArticleType, pronounType PronounType) Answer {
	if len(articles) == 0 {
		return Answer{}
	}
	answer := Resolve(articles[0], c, articleType, pronounType)
	for _, alt := range articles[1:] {
		if !alt.Valid() {
			continue
		}
		for _, form := range forms(alt, c, articleType, pronounType) {
			if !slices.Contains(answer.Accepted, form) {
				answer.Accepted = append(answer.Accepted, form)
			}
		}
	}
	return answer
}

func forms(article Article, c Case, articleType ArticleType, pronounType PronounType) []string {
	switch pronounType {
	case PronounPossessive:
		result := make([]string, 0, len(possessiveStems))
		for _, stem := range possessiveStems {
			result = append(result, einWord(stem, einEndings[article][c]))
		}
		return result
	case PronounDemonstrative:
		result := make([]string, 0, len(demonstrativeStems))
		for _, stem := range demonstrativeStems {
			result = append(result, stem+derEndings[article][c])
		}
		return result
	}
	if articleType == Indefinite {
		return []string{"ein" + einEndings[article][c]}
	}
	return []string{definiteTable[article][c]}
}

// einWord appends an ending to an ein-word stem; euer drops its second e before an ending.
func einWord(stem, ending string) string {
	if stem == "euer" && ending != "" {
		return "eur" + ending
	}
	return stem + ending
}

// Vocabulary returns every string accepted as a determiner attempt for the pronoun type.
func Vocabulary(pronounType PronounType) []string {
	seen := make(map[string]struct{})
	var result []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}

	types := []PronounType{PronounNone}
	if pronounType == PronounPossessive || pronounType == PronounDemonstrative {
		types = append(types, pronounType)
	}
	for _, t := range types {
		for _, article := range Articles {
			for _, c := range Cases {
				for _, at := range []ArticleType{Definite, Indefinite} {
					for _, form := range forms(article, c, at, t) {
						add(form)
					}
				}
			}
		}
	}
	return result
}

// IsDeterminer reports whether input plausibly names a determiner.
// This is wider than the accepted answers of any single prompt.
func IsDeterminer(input string, pronounType PronounType) bool {
	return slices.Contains(Vocabulary(pronounType), normalize(input))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
