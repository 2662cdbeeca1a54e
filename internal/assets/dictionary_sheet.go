package assets

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/at-ishikawa/artikel/internal/dictionary"
)

// UntaggedTopicName heads the words without a topic.
const UntaggedTopicName = "Other"

// DictionarySheet is the data of the dictionary sheet template.
type DictionarySheet struct {
	Name   string
	Topics []SheetTopic
}

type SheetTopic struct {
	Name  string
	Words []SheetWord
}

type SheetWord struct {
	Article     string
	Noun        string
	Translation string
	Genitive    string
}

// NewDictionarySheet groups the words by topic. Topics are sorted, untagged words come last,
// and words keep their dictionary order.
func NewDictionarySheet(d dictionary.Dictionary, language string) DictionarySheet {
	byTopic := make(map[string][]SheetWord)
	for _, w := range d.Words {
		articles := make([]string, 0, len(w.AlternativeArticles)+1)
		for _, article := range w.Articles() {
			articles = append(articles, string(article))
		}
		byTopic[w.Topic] = append(byTopic[w.Topic], SheetWord{
			Article:     strings.Join(articles, "/"),
			Noun:        w.Noun,
			Translation: w.Translation(language),
			Genitive:    w.Genitive,
		})
	}

	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)

	sheet := DictionarySheet{Name: d.Name}
	for _, topic := range topics {
		sheet.Topics = append(sheet.Topics, SheetTopic{Name: topic, Words: byTopic[topic]})
	}
	if words, ok := byTopic[""]; ok {
		sheet.Topics = append(sheet.Topics, SheetTopic{Name: UntaggedTopicName, Words: words})
	}
	return sheet
}

func WriteDictionarySheet(output io.Writer, templatePath string, sheet DictionarySheet) error {
	tmpl, err := ParseDictionaryTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseDictionaryTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
