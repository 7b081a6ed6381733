package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fancyword/internal/lexicon"
)

func newCorpusCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "corpus",
		Short: "Manage lexical corpora",
	}

	command.AddCommand(&cobra.Command{
		Use:   "compile <source> <destination>",
		Short: "Compile a YAML corpus into a msgpack snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := lexicon.Compile(args[0], args[1])
			if err != nil {
				return fmt.Errorf("lexicon.Compile > %w", err)
			}
			slog.Default().Info("compiled the corpus", "source", args[0], "destination", args[1], "synsets", count)
			return nil
		},
	})
	return command
}
