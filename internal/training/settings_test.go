package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/artikel/internal/declension"
)

func TestParseMode(t *testing.T) {
	got, err := ParseMode(" Sentence ")
	require.NoError(t, err)
	assert.Equal(t, ModeSentence, got)

	_, err = ParseMode("flashcard")
	assert.Error(t, err)
}

func TestSettings_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     Settings
	}{
		{
			name:     "defaults are kept",
			settings: DefaultSettings(),
			want:     DefaultSettings(),
		},
		{
			name: "unknown values are replaced",
			settings: Settings{
				Mode:                "flashcard",
				EnabledDictionaries: []string{"a1"},
				ArticleType:         "partitive",
				PronounType:         "reflexive",
				TranslationLanguage: "fr",
			},
			want: Settings{
				Mode:                ModeNounOnly,
				EnabledDictionaries: []string{"a1"},
				ArticleType:         declension.Definite,
				PronounType:         declension.PronounNone,
				TranslationLanguage: "en",
			},
		},
		{
			name: "duplicates and invalid cases are dropped",
			settings: Settings{
				Mode:                ModeSentence,
				EnabledDictionaries: []string{"a1", " a2 ", "a1", ""},
				Topics:              []string{"Food", "Food"},
				Cases:               []declension.Case{"Dativ", "vokativ", declension.Dativ, declension.Genitiv},
				ArticleType:         declension.Indefinite,
				PronounType:         "",
				ShowTranslation:     true,
				TranslationLanguage: "uk",
			},
			want: Settings{
				Mode:                ModeSentence,
				EnabledDictionaries: []string{"a1", "a2"},
				Topics:              []string{"Food"},
				Cases:               []declension.Case{declension.Dativ, declension.Genitiv},
				ArticleType:         declension.Indefinite,
				PronounType:         declension.PronounNone,
				ShowTranslation:     true,
				TranslationLanguage: "uk",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.Normalize())
		})
	}
}
