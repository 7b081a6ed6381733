package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fancyword/internal/bootstrap"
	"github.com/at-ishikawa/fancyword/internal/cli"
	"github.com/at-ishikawa/fancyword/internal/config"
	"github.com/at-ishikawa/fancyword/internal/editor"
	"github.com/at-ishikawa/fancyword/internal/lexicon"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newEditorService builds the service from the configuration. The returned
// function releases the providers.
func newEditorService(ctx context.Context, topN int) (*editor.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if topN > 0 {
		cfg.TopN = topN
	}

	providers, err := bootstrap.NewProviders(ctx, cfg, source.providerOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap.NewProviders > %w", err)
	}
	return editor.NewService(providers.EditorOptions(cfg)), func() {
		_ = providers.Close()
	}, nil
}

// textTarget is the text a command works on: a word from the arguments or a
// region of a file.
type textTarget struct {
	file  string
	start int
	end   int
}

func (t textTarget) open(args []string) (*cli.BufferSource, error) {
	if t.file == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("either a word or --file is required")
		}
		word := strings.Join(args, " ")
		return cli.NewBufferSource(word, editor.Region{A: 0, B: len([]rune(word))}), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("a word cannot be used together with --file")
	}

	contents, err := os.ReadFile(t.file)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}
	end := t.end
	if end < 0 {
		end = t.start
	}
	return cli.NewBufferSource(string(contents), editor.Region{A: t.start, B: end}), nil
}

// save writes text back to the file when it was changed.
func (t textTarget) save(original string, text string) error {
	if t.file == "" || original == text {
		return nil
	}
	info, err := os.Stat(t.file)
	if err != nil {
		return fmt.Errorf("os.Stat > %w", err)
	}
	if err := os.WriteFile(t.file, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}

const maxCompletions = 20

// completeWord completes the word argument from the lemmas of the in-memory
// corpus. The SQL corpus is not completed.
func completeWord(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || toComplete == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := loadConfig()
	if err != nil || !cfg.WordNet.Enabled || cfg.WordNet.Database.Enabled() {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var corpus *lexicon.MemoryCorpus
	switch {
	case cfg.WordNet.CorpusPath != "" && cfg.WordNet.CacheDirectory != "":
		corpus, err = lexicon.NewSnapshotCache(cfg.WordNet.CacheDirectory).Load(cfg.WordNet.CorpusPath)
	case cfg.WordNet.CorpusPath != "":
		corpus, err = lexicon.LoadCorpus(cfg.WordNet.CorpusPath)
	default:
		corpus, err = lexicon.DefaultCorpus()
	}
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return corpus.Complete(cfg.Language, strings.ToLower(toComplete), maxCompletions), cobra.ShellCompDirectiveNoFileComp
}
