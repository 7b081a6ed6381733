package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	alive   bool
	exitErr error
}

func (p fakeProcess) IsAlive() bool  { return p.alive }
func (p fakeProcess) ExitErr() error { return p.exitErr }

func TestWatchProcess(t *testing.T) {
	t.Run("returns when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		assert.NoError(t, watchProcess(ctx, fakeProcess{alive: true}))
	})

	t.Run("reports the exit error", func(t *testing.T) {
		exitErr := errors.New("exit status 1")
		err := watchProcess(context.Background(), fakeProcess{exitErr: exitErr})
		assert.ErrorIs(t, err, exitErr)
	})

	t.Run("reports a clean exit", func(t *testing.T) {
		err := watchProcess(context.Background(), fakeProcess{})
		assert.EqualError(t, err, "word2vec-api server exited")
	})
}

func TestWord2VecStatusCommand(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{
			name:   "disabled",
			config: "word2vec:\n  enabled: false\n",
			want:   "disabled\n",
		},
		{
			name: "nothing listening",
			config: "word2vec:\n  enabled: true\n  pretrained_word2vec_model: model.bin\n" +
				"  host: 127.0.0.1\n  port: 1\n",
			want: "stopped (127.0.0.1:1)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.config), 0o644))
			previous := configFile
			configFile = configPath
			t.Cleanup(func() { configFile = previous })

			var stdout bytes.Buffer
			cmd := newWord2VecCommand()
			cmd.SetArgs([]string{"status"})
			cmd.SetOut(&stdout)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestWord2VecStartCommand_Disabled(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("topn: 3\n"), 0o644))
	previous := configFile
	configFile = configPath
	t.Cleanup(func() { configFile = previous })

	cmd := newWord2VecCommand()
	cmd.SetArgs([]string{"start"})
	cmd.SetOut(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.Execute(), "word2vec is disabled")
}
