package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fancyword/internal/bootstrap"
	"github.com/at-ishikawa/fancyword/internal/word2vec"
)

const (
	word2vecStatusTimeout = time.Second
	word2vecWatchInterval = time.Second
)

func newWord2VecCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "word2vec",
		Short: "Manage the word2vec-api server",
	}

	command.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Run the word2vec-api server until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cfg.Word2Vec.Enabled {
				return fmt.Errorf("word2vec is disabled in the configuration")
			}

			supervisor := bootstrap.NewSupervisor(cfg.Word2Vec)
			app := bootstrap.New()
			app.AddShutdownHook(supervisor.Stop)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				if err := supervisor.EnsureRunning(ctx); err != nil {
					return fmt.Errorf("supervisor.EnsureRunning > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "word2vec-api server is running on %s\n", cfg.Word2Vec.Address())
				return watchProcess(ctx, supervisor)
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Check whether the word2vec-api server accepts connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cfg.Word2Vec.Enabled {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), word2vec.StatusDisabled)
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), word2vecStatusTimeout)
			defer cancel()
			status := word2vec.StatusRunning
			if err := bootstrap.NewSupervisor(cfg.Word2Vec).WaitReady(ctx); err != nil {
				status = word2vec.StatusStopped
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", status, cfg.Word2Vec.Address())
			return err
		},
	})
	return command
}

type processWatcher interface {
	IsAlive() bool
	ExitErr() error
}

// watchProcess blocks until ctx is done or the process exits.
func watchProcess(ctx context.Context, process processWatcher) error {
	ticker := time.NewTicker(word2vecWatchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if process.IsAlive() {
				continue
			}
			if err := process.ExitErr(); err != nil {
				return fmt.Errorf("word2vec-api server exited: %w", err)
			}
			return fmt.Errorf("word2vec-api server exited")
		}
	}
}
