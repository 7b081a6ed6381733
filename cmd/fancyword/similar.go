package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fancyword/internal/cli"
	"github.com/at-ishikawa/fancyword/internal/suggest"
)

func newSimilarCommand() *cobra.Command {
	var (
		target   textTarget
		topN     int
		listOnly bool
	)

	command := &cobra.Command{
		Use:               "similar [word]",
		Short:             "Choose a similar word and replace the selected word with it",
		ValidArgsFunction: completeWord,
		Long: `Choose a similar word and replace the selected word with it.

Word2vec suggestions come from a word2vec-api server that is already running.
This command does not start one; run "fancyword word2vec start" or
fancyword-server for that.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closeService, err := newEditorService(ctx, topN)
			if err != nil {
				return err
			}
			defer closeService()

			if listOnly {
				if len(args) != 1 {
					return fmt.Errorf("--list takes exactly one word")
				}
				list, err := service.SuggestWord(ctx, args[0], topN)
				if errors.Is(err, suggest.ErrNoSuggestions) {
					return fmt.Errorf("can't find similar words for %s", args[0])
				}
				if err != nil {
					return fmt.Errorf("service.SuggestWord > %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(list.Labels, "\n"))
				return err
			}

			text, err := target.open(args)
			if err != nil {
				return err
			}
			original := text.Text()
			ui := cli.NewTerminalUI(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := service.FindSimilar(ctx, text, ui); err != nil {
				return fmt.Errorf("service.FindSimilar > %w", err)
			}

			if target.file != "" {
				return target.save(original, text.Text())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text.Text())
			return err
		},
	}

	flags := command.Flags()
	flags.StringVar(&target.file, "file", "", "File to edit in place instead of a word argument")
	flags.IntVar(&target.start, "start", 0, "Start offset of the selection in runes")
	flags.IntVar(&target.end, "end", -1, "End offset of the selection in runes. Defaults to --start")
	flags.IntVar(&topN, "topn", 0, "Number of words from each source. Defaults to topn in the config")
	flags.BoolVar(&listOnly, "list", false, "Print the suggestions without choosing one")
	return command
}
