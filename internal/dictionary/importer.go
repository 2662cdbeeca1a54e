package dictionary

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/at-ishikawa/artikel/internal/declension"
)

var (
	bulletPattern    = regexp.MustCompile(`^(?:[-*•–]|\d+[.)])\s+`)
	importSeparators = []string{" - ", " — ", "->", ":", "="}
)

// ParseWordList parses free-text lines of the form
// "<article> <noun> [separator] [translation]".
// Lines that do not start with an article are skipped; the first entry of a noun wins.
func ParseWordList(text string, language string) []Word {
	var words []Word
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		word, ok := parseWordLine(scanner.Text(), language)
		if !ok {
			continue
		}
		if _, ok := seen[word.Noun]; ok {
			continue
		}
		seen[word.Noun] = struct{}{}
		words = append(words, word)
	}
	return words
}

func parseWordLine(line string, language string) (Word, bool) {
	line = strings.TrimSpace(line)
	line = bulletPattern.ReplaceAllString(line, "")

	head, rest, found := strings.Cut(line, " ")
	if !found {
		return Word{}, false
	}
	article, err := declension.ParseArticle(head)
	if err != nil {
		return Word{}, false
	}

	noun, translation := splitTranslation(rest)
	if noun == "" {
		return Word{}, false
	}

	word := Word{
		Noun:    noun,
		Article: article,
	}
	if translation != "" {
		word.Translations = map[string]string{language: translation}
	}
	return word, true
}

// splitTranslation splits at the earliest separator.
func splitTranslation(s string) (string, string) {
	index, width := -1, 0
	for _, sep := range importSeparators {
		if i := strings.Index(s, sep); i >= 0 && (index < 0 || i < index) {
			index, width = i, len(sep)
		}
	}
	if index < 0 {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(s[:index]), strings.TrimSpace(s[index+width:])
}
