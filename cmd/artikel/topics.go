package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/artikel/internal/training"
)

func newTopicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics and their word counts in the enabled dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			workspace, closeWorkspace, err := openWorkspace(cmd.Context(), cfg, training.Options{})
			if err != nil {
				return err
			}
			defer closeWorkspace()

			return writeTopics(cmd.OutOrStdout(), workspace.Topics(), workspace.TopicCounts())
		},
	}
}

func writeTopics(output io.Writer, topics []string, counts map[string]int) error {
	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "TOPIC\tWORDS"); err != nil {
		return fmt.Errorf("fmt.Fprintln() > %w", err)
	}
	for _, topic := range topics {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", topic, counts[topic]); err != nil {
			return fmt.Errorf("fmt.Fprintf() > %w", err)
		}
	}
	return w.Flush()
}
