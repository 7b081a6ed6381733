package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fancyword/internal/cli"
)

func newDefineCommand() *cobra.Command {
	var target textTarget

	command := &cobra.Command{
		Use:               "define [word]",
		Short:             "Show the definitions of the selected word",
		ValidArgsFunction: completeWord,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closeService, err := newEditorService(ctx, 0)
			if err != nil {
				return err
			}
			defer closeService()

			text, err := target.open(args)
			if err != nil {
				return err
			}
			ui := cli.NewTerminalUI(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := service.LookUpDefinition(ctx, text, ui); err != nil {
				return fmt.Errorf("service.LookUpDefinition > %w", err)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&target.file, "file", "", "File to read the word from instead of a word argument")
	flags.IntVar(&target.start, "start", 0, "Start offset of the selection in runes")
	flags.IntVar(&target.end, "end", -1, "End offset of the selection in runes. Defaults to --start")
	return command
}
