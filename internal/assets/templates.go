// Package assets renders dictionary sheets from markdown templates.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const dictionarySheetTemplateName = "dictionary-sheet.md.go.tmpl"

//go:embed templates/dictionary-sheet.md.go.tmpl
var fallbackDictionarySheetTemplate string

// ParseDictionaryTemplate parses templatePath, or the embedded template when it is empty or unusable.
func ParseDictionaryTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, dictionarySheetTemplateName, fallbackDictionarySheetTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
