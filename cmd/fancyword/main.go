package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configFile string
	source     = SourceAll
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	var debugMode bool

	rootCommand := cobra.Command{
		Use:           "fancyword",
		Short:         "Suggest fancier synonyms for a word",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.Var(&source, "source", fmt.Sprintf("Suggestion sources to use. Possible values are %v", allSources))

	rootCommand.AddCommand(newSimilarCommand())
	rootCommand.AddCommand(newDefineCommand())
	rootCommand.AddCommand(newCorpusCommand())
	rootCommand.AddCommand(newWord2VecCommand())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportCaller:    debugMode,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
	slog.SetDefault(slog.New(handler))
}
