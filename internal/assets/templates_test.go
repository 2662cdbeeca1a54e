package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/dictionary"
)

func TestParseDictionaryTemplate(t *testing.T) {
	sheet := DictionarySheet{
		Name: "Kitchen",
		Topics: []SheetTopic{
			{Name: "Food", Words: []SheetWord{{Article: "der/das", Noun: "Joghurt", Translation: "yogurt"}}},
		},
	}

	tests := []struct {
		name         string
		templatePath func(t *testing.T) string

		wantTemplateName     string
		wantTemplateContents string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `Custom: {{ .Name }}{{ range .Topics }} {{ .Name }}{{ end }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			},
			wantTemplateName:     "custom.md.go.tmpl",
			wantTemplateContents: "Custom: Kitchen Food",
		},
		{
			name: "uses embedded template without a path",
			templatePath: func(t *testing.T) string {
				return ""
			},
			wantTemplateName: "dictionary-sheet.md.go.tmpl",
			wantTemplateContents: "# Kitchen\n\n## Food\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der/das | Joghurt | yogurt |\n",
		},
		{
			name: "uses embedded template when file doesn't exist",
			templatePath: func(t *testing.T) string {
				return "/non/existent/invalid.md.go.tmpl"
			},
			wantTemplateName: "dictionary-sheet.md.go.tmpl",
			wantTemplateContents: "# Kitchen\n\n## Food\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der/das | Joghurt | yogurt |\n",
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "invalid.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644))
				return templatePath
			},
			wantTemplateName: "dictionary-sheet.md.go.tmpl",
			wantTemplateContents: "# Kitchen\n\n## Food\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der/das | Joghurt | yogurt |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := ParseDictionaryTemplate(tt.templatePath(t))
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantTemplateName, got.Name())

			var buf bytes.Buffer
			require.NoError(t, got.Execute(&buf, sheet))
			assert.Equal(t, tt.wantTemplateContents, buf.String())
		})
	}
}

func TestWriteDictionarySheet(t *testing.T) {
	d := dictionary.Dictionary{
		Name: "Kitchen",
		Words: []dictionary.Word{
			{Noun: "Löffel", Article: declension.Der, Translations: map[string]string{"en": "spoon"}},
			{Noun: "Joghurt", Article: declension.Der, AlternativeArticles: []declension.Article{declension.Das}, Topic: "Food", Translations: map[string]string{"en": "yogurt", "uk": "йогурт"}},
			{Noun: "Haus", Article: declension.Das, Genitive: "Hauses", Topic: "Building"},
			{Noun: "Gabel", Article: declension.Die, Topic: "Food", Translations: map[string]string{"en": "fork"}},
		},
	}

	tests := []struct {
		name     string
		language string
		want     string
	}{
		{
			name:     "english",
			language: "en",
			want: "# Kitchen\n" +
				"\n## Building\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| das | Haus (Gen. Hauses) |  |\n" +
				"\n## Food\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der/das | Joghurt | yogurt |\n" +
				"| die | Gabel | fork |\n" +
				"\n## Other\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der | Löffel | spoon |\n",
		},
		{
			name:     "missing translations are left blank",
			language: "uk",
			want: "# Kitchen\n" +
				"\n## Building\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| das | Haus (Gen. Hauses) |  |\n" +
				"\n## Food\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der/das | Joghurt | йогурт |\n" +
				"| die | Gabel |  |\n" +
				"\n## Other\n\n| Article | Noun | Translation |\n| --- | --- | --- |\n" +
				"| der | Löffel |  |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteDictionarySheet(&buf, "", NewDictionarySheet(d, tt.language)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
