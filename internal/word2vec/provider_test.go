package word2vec

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	words []string
	err   error
	calls int
}

func (c *stubClient) MostSimilar(context.Context, string, int) ([]string, error) {
	c.calls++
	return c.words, c.err
}

type stubRunner struct {
	alive    bool
	startErr error
	ensured  int
}

func (r *stubRunner) EnsureRunning(context.Context) error {
	r.ensured++
	if r.startErr != nil {
		return r.startErr
	}
	r.alive = true
	return nil
}

func (r *stubRunner) IsAlive() bool {
	return r.alive
}

func TestProvider_MostSimilar(t *testing.T) {
	tests := []struct {
		name       string
		client     *stubClient
		runner     *stubRunner
		want       []string
		wantErr    error
		wantStatus string
	}{
		{
			name:       "starts the server before querying",
			client:     &stubClient{words: []string{"cats", "dog"}},
			runner:     &stubRunner{},
			want:       []string{"cats", "dog"},
			wantStatus: StatusRunning,
		},
		{
			name:       "start failure surfaces as unreachable",
			client:     &stubClient{err: ErrUnreachable},
			runner:     &stubRunner{startErr: errors.New("exec: python: not found")},
			wantErr:    ErrUnreachable,
			wantStatus: StatusStopped,
		},
		{
			name:       "unsupervised server",
			client:     &stubClient{words: []string{"kitten"}},
			want:       []string{"kitten"},
			wantStatus: StatusRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var provider *Provider
			if tt.runner != nil {
				provider = NewProvider(tt.client, tt.runner)
			} else {
				provider = NewProvider(tt.client, nil)
			}

			got, err := provider.MostSimilar(context.Background(), "cat", 10)
			assert.Equal(t, 1, tt.client.calls)
			if tt.runner != nil {
				assert.Equal(t, 1, tt.runner.ensured)
			}
			assert.Equal(t, tt.wantStatus, provider.Status())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_StatusDisabled(t *testing.T) {
	var provider *Provider
	assert.Equal(t, StatusDisabled, provider.Status())
}
