package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/artikel/internal/cli"
	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/dictionary"
	"github.com/at-ishikawa/artikel/internal/storage"
	"github.com/at-ishikawa/artikel/internal/training"
)

type modeValue training.Mode

func (m *modeValue) Set(val string) error {
	mode, err := training.ParseMode(val)
	if err != nil {
		return fmt.Errorf("invalid mode: %w", err)
	}
	*m = modeValue(mode)
	return nil
}

func (m modeValue) String() string {
	return string(m)
}

func (m *modeValue) Type() string {
	return "mode"
}

type articleTypeValue declension.ArticleType

func (a *articleTypeValue) Set(val string) error {
	articleType, err := declension.ParseArticleType(val)
	if err != nil {
		return fmt.Errorf("invalid article type: %w", err)
	}
	*a = articleTypeValue(articleType)
	return nil
}

func (a articleTypeValue) String() string {
	return string(a)
}

func (a *articleTypeValue) Type() string {
	return "articleType"
}

type pronounTypeValue declension.PronounType

func (p *pronounTypeValue) Set(val string) error {
	pronounType, err := declension.ParsePronounType(val)
	if err != nil {
		return fmt.Errorf("invalid pronoun type: %w", err)
	}
	*p = pronounTypeValue(pronounType)
	return nil
}

func (p pronounTypeValue) String() string {
	return string(p)
}

func (p *pronounTypeValue) Type() string {
	return "pronounType"
}

var (
	_ pflag.Value = (*modeValue)(nil)
	_ pflag.Value = (*articleTypeValue)(nil)
	_ pflag.Value = (*pronounTypeValue)(nil)
)

type trainFlags struct {
	mode         modeValue
	dictionaries []string
	topics       []string
	cases        []string
	articleType  articleTypeValue
	pronounType  pronounTypeValue
	translation  bool
	language     string
	mobile       bool
}

func newTrainCommand() *cobra.Command {
	var flags trainFlags
	command := &cobra.Command{
		Use:   "train",
		Short: "Start an interactive article training session",
		Long: `Start an interactive article training session.
Type der, die or das (or d, i, a) and press Enter. Type :q to finish.
Flags change the saved settings before the session starts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			settingsFile := storage.NewSettingsFile(cfg.Storage.SettingsFile)
			settings, err := settingsFile.Load()
			if err != nil {
				return fmt.Errorf("settingsFile.Load() > %w", err)
			}
			settings, changed, err := flags.apply(cmd.Flags(), settings)
			if err != nil {
				return err
			}
			if changed {
				if err := settingsFile.Save(settings.Normalize()); err != nil {
					return fmt.Errorf("settingsFile.Save() > %w", err)
				}
			}

			ctx := cmd.Context()
			trainingCLI := cli.NewTrainingCLI(os.Stdin, os.Stdout)
			workspace, closeWorkspace, err := openWorkspace(ctx, cfg, training.Options{
				Mobile:   flags.mobile,
				OnChange: trainingCLI.Render,
			})
			if err != nil {
				return err
			}
			defer closeWorkspace()

			trainingCLI.Attach(workspace)
			return trainingCLI.Run(ctx)
		},
	}

	flags.register(command.Flags())
	return command
}

func (flags *trainFlags) register(f *pflag.FlagSet) {
	f.Var(&flags.mode, "mode", "Training mode: noun-only or sentence")
	f.StringSliceVar(&flags.dictionaries, "dictionaries", nil, "Dictionary ids to train on")
	f.StringSliceVar(&flags.topics, "topics", nil, "Topics to train on. Pass an empty value to clear the filter")
	f.StringSliceVar(&flags.cases, "cases", nil, "Grammatical cases for sentence mode: nominativ, akkusativ, dativ, genitiv")
	f.Var(&flags.articleType, "article-type", "Article type: definite or indefinite")
	f.Var(&flags.pronounType, "pronoun-type", "Pronoun type: none, possessive, demonstrative or personal")
	f.BoolVar(&flags.translation, "translation", true, "Show translations next to nouns")
	f.StringVar(&flags.language, "language", "", "Translation language: en, ru or uk")
	f.BoolVar(&flags.mobile, "mobile", false, "Use the mobile feedback timing")
}

// apply overrides settings with the flags set on the command line.
func (flags trainFlags) apply(set *pflag.FlagSet, settings training.Settings) (training.Settings, bool, error) {
	changed := false
	if set.Changed("mode") {
		settings.Mode = training.Mode(flags.mode)
		changed = true
	}
	if set.Changed("dictionaries") {
		settings.EnabledDictionaries = flags.dictionaries
		changed = true
	}
	if set.Changed("topics") {
		settings.Topics = nonEmpty(flags.topics)
		changed = true
	}
	if set.Changed("cases") {
		cases := make([]declension.Case, 0, len(flags.cases))
		for _, value := range nonEmpty(flags.cases) {
			c, err := declension.ParseCase(value)
			if err != nil {
				return settings, false, fmt.Errorf("invalid case: %w", err)
			}
			cases = append(cases, c)
		}
		settings.Cases = cases
		changed = true
	}
	if set.Changed("article-type") {
		settings.ArticleType = declension.ArticleType(flags.articleType)
		changed = true
	}
	if set.Changed("pronoun-type") {
		settings.PronounType = declension.PronounType(flags.pronounType)
		changed = true
	}
	if set.Changed("translation") {
		settings.ShowTranslation = flags.translation
		changed = true
	}
	if set.Changed("language") {
		if !slices.Contains(dictionary.Languages, flags.language) {
			return settings, false, fmt.Errorf("invalid language %q: possible values are %v", flags.language, dictionary.Languages)
		}
		settings.TranslationLanguage = flags.language
		changed = true
	}
	return settings, changed, nil
}

func nonEmpty(values []string) []string {
	var result []string
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
