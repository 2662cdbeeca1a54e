package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/artikel/internal/config"
	"github.com/at-ishikawa/artikel/internal/training"
)

func newSettingsCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "settings",
		Short: "Show or reset the training settings",
	}
	rootCommand.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withWorkspace(cmd, func(_ *config.Config, workspace *training.Workspace) error {
					return writeSettings(cmd.OutOrStdout(), workspace.Settings())
				})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withWorkspace(cmd, func(_ *config.Config, workspace *training.Workspace) error {
					workspace.ResetSettings()
					return writeSettings(cmd.OutOrStdout(), workspace.Settings())
				})
			},
		},
	)
	return &rootCommand
}

func writeSettings(output io.Writer, settings training.Settings) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	if err := encoder.Encode(settings); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	return encoder.Close()
}
