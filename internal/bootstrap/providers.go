package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/fancyword/internal/config"
	"github.com/at-ishikawa/fancyword/internal/database"
	"github.com/at-ishikawa/fancyword/internal/editor"
	"github.com/at-ishikawa/fancyword/internal/lexicon"
	"github.com/at-ishikawa/fancyword/internal/word2vec"
)

type ProviderOptions struct {
	// DisableVector skips word2vec even when it is enabled in the config
	DisableVector bool
	// DisableLexical skips the lexical corpus even when it is enabled in the config
	DisableLexical bool
	// Supervise makes this process own the word2vec-api child process
	Supervise bool
}

// Providers holds the suggestion sources built from the configuration.
type Providers struct {
	Vector     *word2vec.Provider
	Supervisor *word2vec.Supervisor
	Lexicon    *lexicon.Lookup

	closers []func() error
}

func NewProviders(ctx context.Context, cfg *config.Config, opts ProviderOptions) (*Providers, error) {
	providers := &Providers{}

	if cfg.WordNet.Enabled && !opts.DisableLexical {
		corpus, err := providers.openCorpus(ctx, cfg.WordNet)
		if err != nil {
			_ = providers.Close()
			return nil, err
		}
		providers.Lexicon = lexicon.NewLookup(corpus)
	}

	if cfg.Word2Vec.Enabled && !opts.DisableVector {
		address := cfg.Word2Vec.Address()
		client := word2vec.NewClient(address, cfg.Word2Vec.RequestTimeout())
		providers.closers = append(providers.closers, client.Close)

		if opts.Supervise {
			providers.Supervisor = NewSupervisor(cfg.Word2Vec)
			providers.Vector = word2vec.NewProvider(client, providers.Supervisor)
		} else {
			providers.Vector = word2vec.NewProvider(client, nil)
		}
	}
	return providers, nil
}

// NewSupervisor returns a supervisor for the configured word2vec-api server.
func NewSupervisor(cfg config.Word2VecConfig) *word2vec.Supervisor {
	return word2vec.NewSupervisor(
		word2vec.NewServerCommand(cfg),
		cfg.Address(),
		word2vec.WithReadyTimeout(time.Duration(cfg.StartupTimeoutSeconds)*time.Second),
	)
}

func (p *Providers) openCorpus(ctx context.Context, cfg config.WordNetConfig) (lexicon.Corpus, error) {
	switch {
	case cfg.Database.Enabled():
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		p.closers = append(p.closers, db.Close)
		slog.Default().Debug("using the SQL corpus", "database", cfg.Database.Database)
		return lexicon.NewSQLCorpus(db), nil

	case cfg.CorpusPath != "" && cfg.CacheDirectory != "":
		corpus, err := lexicon.NewSnapshotCache(cfg.CacheDirectory).Load(cfg.CorpusPath)
		if err != nil {
			return nil, fmt.Errorf("lexicon.NewSnapshotCache.Load > %w", err)
		}
		slog.Default().Debug("loaded the corpus", "path", cfg.CorpusPath, "synsets", corpus.Len())
		return corpus, nil

	case cfg.CorpusPath != "":
		corpus, err := lexicon.LoadCorpus(cfg.CorpusPath)
		if err != nil {
			return nil, fmt.Errorf("lexicon.LoadCorpus > %w", err)
		}
		slog.Default().Debug("loaded the corpus", "path", cfg.CorpusPath, "synsets", corpus.Len())
		return corpus, nil

	default:
		corpus, err := lexicon.DefaultCorpus()
		if err != nil {
			return nil, fmt.Errorf("lexicon.DefaultCorpus > %w", err)
		}
		return corpus, nil
	}
}

// EditorOptions returns the options of an editor.Service backed by p.
func (p *Providers) EditorOptions(cfg *config.Config) editor.Options {
	opts := editor.Options{
		TopN:     cfg.TopN,
		Language: cfg.Language,
	}
	if p.Vector != nil {
		opts.Vector = p.Vector
	}
	if p.Lexicon != nil {
		opts.Lexicon = p.Lexicon
	}
	return opts
}

// Close releases the connections opened by NewProviders. It does not stop the
// supervised process.
func (p *Providers) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}
