package declension

import (
	"math/rand"
	"strings"
)

const (
	determinerPlaceholder = "{det}"
	nounPlaceholder       = "{noun}"

	// Blank is shown in place of the determiner the learner has to supply.
	Blank = "___"
)

var sentenceTemplates = map[Case][]string{
	Nominativ: {
		"{det} {noun} steht im Zimmer.",
		"Wo ist {det} {noun}?",
		"{det} {noun} gefällt allen.",
		"Hier ist {det} {noun}.",
	},
	Akkusativ: {
		"Der Lehrer sucht {det} {noun}.",
		"Die Kinder mögen {det} {noun}.",
		"Meine Nachbarin kauft {det} {noun}.",
	},
	Dativ: {
		"Wir sprechen mit {det} {noun}.",
		"Das Buch liegt neben {det} {noun}.",
		"Sie kommt aus {det} {noun}.",
		"Er hilft {det} {noun}.",
	},
	Genitiv: {
		"Das ist die Farbe {det} {noun}.",
		"Wegen {det} {noun} bleiben wir zu Hause.",
		"Trotz {det} {noun} sind wir zufrieden.",
	},
}

var personalSentenceTemplates = map[Case][]string{
	Nominativ: {
		"Ich glaube, {det} {noun} ist neu.",
		"Du weißt, {det} {noun} ist teuer.",
		"Wir finden, {det} {noun} ist schön.",
	},
	Akkusativ: {
		"Ich sehe {det} {noun}.",
		"Wir brauchen {det} {noun}.",
		"Er kauft {det} {noun}.",
		"Sie sucht {det} {noun}.",
	},
}

// Templates returns the sentence templates valid for a case.
// Personal pronoun templates only exist for nominativ and akkusativ.
func Templates(c Case, personal bool) []string {
	if personal {
		if templates, ok := personalSentenceTemplates[c]; ok {
			return templates
		}
	}
	return sentenceTemplates[c]
}

// Sentence is a template instantiated with a noun.
type Sentence struct {
	Case     Case
	Template string
	Noun     string
}

// Prompt renders the sentence with the determiner left blank.
func (s Sentence) Prompt() string {
	return s.Fill(Blank)
}

// Fill renders the sentence with the given determiner.
// A determiner at the start of the sentence is capitalized.
func (s Sentence) Fill(determiner string) string {
	text := strings.Replace(s.Template, nounPlaceholder, s.Noun, 1)
	if strings.HasPrefix(text, determinerPlaceholder) && determiner != "" {
		determiner = strings.ToUpper(determiner[:1]) + determiner[1:]
	}
	return strings.Replace(text, determinerPlaceholder, determiner, 1)
}

// SentenceGenerator picks templates uniformly at random.
type SentenceGenerator struct {
	rng *rand.Rand
}

func NewSentenceGenerator(rng *rand.Rand) *SentenceGenerator {
	return &SentenceGenerator{rng: rng}
}

// Generate builds a sentence for the noun in the given case.
// genitive replaces the noun in genitiv when supplied.
func (g *SentenceGenerator) Generate(noun, genitive string, c Case, personal bool) Sentence {
	templates := Templates(c, personal)
	if len(templates) == 0 {
		templates = sentenceTemplates[Nominativ]
		c = Nominativ
	}
	if c == Genitiv && genitive != "" {
		noun = genitive
	}
	return Sentence{
		Case:     c,
		Template: templates[g.rng.Intn(len(templates))],
		Noun:     noun,
	}
}
