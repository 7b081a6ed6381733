package word2vec

import (
	"context"
	"log/slog"
)

const (
	StatusRunning  = "running"
	StatusStopped  = "stopped"
	StatusDisabled = "disabled"
)

type similarityClient interface {
	MostSimilar(ctx context.Context, word string, n int) ([]string, error)
}

type processRunner interface {
	EnsureRunning(ctx context.Context) error
	IsAlive() bool
}

// Provider queries the word2vec-api server, starting it first when it is
// supervised by this process.
type Provider struct {
	client     similarityClient
	supervisor processRunner
}

// NewProvider returns a provider. supervisor may be nil when the server is
// managed outside fancyword.
func NewProvider(client similarityClient, supervisor processRunner) *Provider {
	return &Provider{
		client:     client,
		supervisor: supervisor,
	}
}

func (p *Provider) MostSimilar(ctx context.Context, word string, n int) ([]string, error) {
	if p.supervisor != nil {
		if err := p.supervisor.EnsureRunning(ctx); err != nil {
			// The query still runs and reports the server as unreachable
			slog.Default().Warn("word2vec-api server could not be started, will retry on the next query",
				"error", err,
			)
		}
	}
	return p.client.MostSimilar(ctx, word, n)
}

// Status reports the state of the supervised process.
func (p *Provider) Status() string {
	if p == nil {
		return StatusDisabled
	}
	if p.supervisor == nil || p.supervisor.IsAlive() {
		return StatusRunning
	}
	return StatusStopped
}
