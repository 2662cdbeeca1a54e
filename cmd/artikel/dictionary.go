package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/artikel/internal/assets"
	"github.com/at-ishikawa/artikel/internal/config"
	"github.com/at-ishikawa/artikel/internal/dictionary"
	"github.com/at-ishikawa/artikel/internal/dictionary/remote"
	"github.com/at-ishikawa/artikel/internal/pdf"
	"github.com/at-ishikawa/artikel/internal/training"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Manage built-in and user dictionaries",
	}
	rootCommand.AddCommand(
		newDictionaryListCommand(),
		newDictionaryImportCommand(),
		newDictionaryExportCommand(),
		newDictionaryEnableCommand(true),
		newDictionaryEnableCommand(false),
		newDictionaryDeleteCommand(),
		newDictionaryPushCommand(),
		newDictionaryPullCommand(),
	)
	return &rootCommand
}

// withWorkspace loads the config and runs fn against a workspace that is closed afterwards.
func withWorkspace(cmd *cobra.Command, fn func(cfg *config.Config, workspace *training.Workspace) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	workspace, closeWorkspace, err := openWorkspace(cmd.Context(), cfg, training.Options{})
	if err != nil {
		return err
	}
	defer closeWorkspace()
	return fn(cfg, workspace)
}

func newDictionaryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(cmd, func(_ *config.Config, workspace *training.Workspace) error {
				return writeDictionaries(cmd.OutOrStdout(), workspace.Dictionaries())
			})
		},
	}
}

func writeDictionaries(output io.Writer, dictionaries []dictionary.Dictionary) error {
	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tWORDS\tENABLED\tSOURCE"); err != nil {
		return fmt.Errorf("fmt.Fprintln() > %w", err)
	}
	for _, d := range dictionaries {
		source := "user"
		if d.Builtin {
			source = "built-in"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n", d.ID, d.Name, len(d.Words), d.Enabled, source); err != nil {
			return fmt.Errorf("fmt.Fprintf() > %w", err)
		}
	}
	return w.Flush()
}

func newDictionaryImportCommand() *cobra.Command {
	var name, language, sheet string
	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Create a user dictionary from a word list or an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			words, err := readWords(path, sheet, language)
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			return withWorkspace(cmd, func(_ *config.Config, workspace *training.Workspace) error {
				created, err := workspace.SaveDictionary(cmd.Context(), dictionary.Dictionary{
					Name:  name,
					Words: words,
				})
				if err != nil {
					return fmt.Errorf("workspace.SaveDictionary() > %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words into %s (%s)\n", len(created.Words), created.Name, created.ID)
				return err
			})
		},
	}
	command.Flags().StringVar(&name, "name", "", "Dictionary name. Defaults to the file name")
	command.Flags().StringVar(&language, "language", dictionary.LanguageEnglish, "Language of the translations in the file")
	command.Flags().StringVar(&sheet, "sheet", dictionary.DefaultSheet, "Sheet to read from a workbook")
	return command
}

func readWords(path, sheet, language string) ([]dictionary.Word, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		words, err := dictionary.ReadWorkbook(path, sheet, language)
		if err != nil {
			return nil, fmt.Errorf("dictionary.ReadWorkbook() > %w", err)
		}
		return words, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	words := dictionary.ParseWordList(string(content), language)
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found in %s: %w", path, dictionary.ErrNoWords)
	}
	return words, nil
}

func newDictionaryExportCommand() *cobra.Command {
	var withPDF bool
	command := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a dictionary as a markdown sheet, optionally converted to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(cmd, func(cfg *config.Config, workspace *training.Workspace) error {
				d, err := workspace.Dictionary(args[0])
				if err != nil {
					return fmt.Errorf("workspace.Dictionary(%s) > %w", args[0], err)
				}

				path, err := exportDictionary(cfg, d, workspace.Settings().TranslationLanguage, withPDF)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", d.Name, path)
				return err
			})
		},
	}
	command.Flags().BoolVar(&withPDF, "pdf", false, "Also convert the markdown sheet to PDF")
	return command
}

// exportDictionary writes the sheet and returns the path of the last file written.
func exportDictionary(cfg *config.Config, d dictionary.Dictionary, language string, withPDF bool) (string, error) {
	var buf bytes.Buffer
	if err := assets.WriteDictionarySheet(&buf, cfg.Templates.DictionaryTemplate, assets.NewDictionarySheet(d, language)); err != nil {
		return "", fmt.Errorf("assets.WriteDictionarySheet() > %w", err)
	}

	if err := os.MkdirAll(cfg.Outputs.DictionaryDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Outputs.DictionaryDirectory, err)
	}
	markdownPath := filepath.Join(cfg.Outputs.DictionaryDirectory, d.ID+".md")
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	if !withPDF {
		return markdownPath, nil
	}

	pdfPath, err := pdf.ConvertMarkdownFile(markdownPath, pdf.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("pdf.ConvertMarkdownFile() > %w", err)
	}
	return pdfPath, nil
}

func newDictionaryEnableCommand(enabled bool) *cobra.Command {
	use, short := "enable <id>", "Add a dictionary to the training pool"
	if !enabled {
		use, short = "disable <id>", "Remove a dictionary from the training pool"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(cmd, func(_ *config.Config, workspace *training.Workspace) error {
				if err := workspace.SetDictionaryEnabled(cmd.Context(), args[0], enabled); err != nil {
					return fmt.Errorf("workspace.SetDictionaryEnabled(%s) > %w", args[0], err)
				}
				return nil
			})
		},
	}
}

func newDictionaryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(cmd, func(_ *config.Config, workspace *training.Workspace) error {
				if err := workspace.DeleteDictionary(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("workspace.DeleteDictionary(%s) > %w", args[0], err)
				}
				return nil
			})
		},
	}
}

// remoteStore is the part of the remote client used by push and pull.
type remoteStore interface {
	Create(ctx context.Context, request remote.CreateRequest) (remote.CreateResponse, error)
	Get(ctx context.Context, id string) (remote.DictionaryResponse, error)
	Update(ctx context.Context, id string, request remote.UpdateRequest) (remote.DictionaryResponse, error)
}

// localStore is the part of the workspace used by push and pull.
type localStore interface {
	Dictionary(id string) (dictionary.Dictionary, error)
	SaveDictionary(ctx context.Context, d dictionary.Dictionary) (dictionary.Dictionary, error)
	SetDictionaryEnabled(ctx context.Context, id string, enabled bool) error
	DeleteDictionary(ctx context.Context, id string) error
}

func withRemote(cmd *cobra.Command, fn func(client remoteStore, workspace *training.Workspace) error) error {
	return withWorkspace(cmd, func(cfg *config.Config, workspace *training.Workspace) error {
		if cfg.Remote.BaseURL == "" {
			return errors.New("remote.base_url is not configured")
		}
		client := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)
		defer func() {
			_ = client.Close()
		}()
		return fn(client, workspace)
	})
}

func newDictionaryPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push <id>",
		Short: "Upload a user dictionary to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRemote(cmd, func(client remoteStore, workspace *training.Workspace) error {
				id, err := pushDictionary(cmd.Context(), client, workspace, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s\n", id)
				return err
			})
		},
	}
}

// pushDictionary updates the remote copy of a dictionary, or creates it when the server does not know it.
// A newly created dictionary is re-keyed locally to the id the server assigned.
func pushDictionary(ctx context.Context, client remoteStore, local localStore, id string) (string, error) {
	d, err := local.Dictionary(id)
	if err != nil {
		return "", fmt.Errorf("local.Dictionary(%s) > %w", id, err)
	}
	if d.Builtin {
		return "", fmt.Errorf("push %s > %w", id, dictionary.ErrReadOnly)
	}

	_, err = client.Update(ctx, d.ID, remote.UpdateRequest{
		Name:  &d.Name,
		Words: d.Words,
	})
	if err == nil {
		return d.ID, nil
	}
	if !errors.Is(err, dictionary.ErrNotFound) {
		return "", fmt.Errorf("client.Update(%s) > %w", d.ID, err)
	}

	created, err := client.Create(ctx, remote.CreateRequest{
		Name:  d.Name,
		Words: d.Words,
	})
	if err != nil {
		return "", fmt.Errorf("client.Create() > %w", err)
	}

	enabled := d.Enabled
	d.ID = created.ID
	if _, err := local.SaveDictionary(ctx, d); err != nil {
		return "", fmt.Errorf("local.SaveDictionary(%s) > %w", created.ID, err)
	}
	if err := local.SetDictionaryEnabled(ctx, created.ID, enabled); err != nil {
		return "", fmt.Errorf("local.SetDictionaryEnabled(%s) > %w", created.ID, err)
	}
	if err := local.DeleteDictionary(ctx, id); err != nil {
		return "", fmt.Errorf("local.DeleteDictionary(%s) > %w", id, err)
	}
	return created.ID, nil
}

func newDictionaryPullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <id>",
		Short: "Download a dictionary from the server and enable it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRemote(cmd, func(client remoteStore, workspace *training.Workspace) error {
				d, err := pullDictionary(cmd.Context(), client, workspace, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d words into %s (%s)\n", len(d.Words), d.Name, d.ID)
				return err
			})
		},
	}
}

func pullDictionary(ctx context.Context, client remoteStore, local localStore, id string) (dictionary.Dictionary, error) {
	response, err := client.Get(ctx, id)
	if err != nil {
		return dictionary.Dictionary{}, fmt.Errorf("client.Get(%s) > %w", id, err)
	}

	saved, err := local.SaveDictionary(ctx, response.ToDictionary())
	if err != nil {
		return dictionary.Dictionary{}, fmt.Errorf("local.SaveDictionary(%s) > %w", id, err)
	}
	if err := local.SetDictionaryEnabled(ctx, saved.ID, true); err != nil {
		return dictionary.Dictionary{}, fmt.Errorf("local.SetDictionaryEnabled(%s) > %w", saved.ID, err)
	}
	saved.Enabled = true
	return saved, nil
}
