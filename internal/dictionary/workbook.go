package dictionary

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/at-ishikawa/artikel/internal/declension"
)

// DefaultSheet is the sheet read when none is given.
const DefaultSheet = "Sheet1"

// Workbook columns, in order.
const (
	columnArticle = iota
	columnNoun
	columnTranslation
	columnTopic
	columnLevel
	columnExample
	columnAlternativeArticles
	columnGenitive
)

// ReadWorkbook reads words from a spreadsheet laid out as
// article | noun | translation | topic | level | example | alternative articles | genitive.
// Rows whose first cell is not an article (such as a header) are skipped.
func ReadWorkbook(path, sheet, language string) ([]Word, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheet = DefaultSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s) > %w", sheet, err)
	}

	var words []Word
	seen := make(map[string]struct{})
	for i, row := range rows {
		word, err := parseWorkbookRow(row, language)
		if err != nil {
			slog.Default().Debug("skip workbook row",
				slog.String("path", path),
				slog.Int("row", i+1),
				slog.Any("error", err),
			)
			continue
		}
		if _, ok := seen[word.Noun]; ok {
			continue
		}
		seen[word.Noun] = struct{}{}
		words = append(words, word)
	}
	return words, nil
}

func parseWorkbookRow(row []string, language string) (Word, error) {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	article, err := declension.ParseArticle(cell(columnArticle))
	if err != nil {
		return Word{}, err
	}
	noun := cell(columnNoun)
	if noun == "" {
		return Word{}, fmt.Errorf("noun is empty")
	}

	word := Word{
		Noun:            noun,
		Article:         article,
		Topic:           cell(columnTopic),
		Level:           cell(columnLevel),
		ExampleSentence: cell(columnExample),
		Genitive:        cell(columnGenitive),
	}
	if translation := cell(columnTranslation); translation != "" {
		word.Translations = map[string]string{language: translation}
	}
	if alternatives := cell(columnAlternativeArticles); alternatives != "" {
		for _, s := range strings.Split(alternatives, ",") {
			alt, err := declension.ParseArticle(s)
			if err != nil {
				return Word{}, fmt.Errorf("alternative articles > %w", err)
			}
			word.AlternativeArticles = append(word.AlternativeArticles, alt)
		}
	}
	return word, nil
}
