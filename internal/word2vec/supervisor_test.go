package word2vec

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/fancyword/internal/config"
)

func shellCommand(script string) Command {
	return Command{Path: "sh", Args: []string{"-c", script}}
}

func waitUntil(t *testing.T, condition func() bool) {
	t.Helper()
	assert.Eventually(t, condition, 5*time.Second, 20*time.Millisecond)
}

func TestNewServerCommand(t *testing.T) {
	command := NewServerCommand(config.Word2VecConfig{
		PythonPath:      "/usr/bin/python3",
		APIScript:       "dependences/word2vec-api.py",
		PretrainedModel: "/models/GoogleNews-vectors-negative300.bin",
		Port:            5001,
	})

	assert.Equal(t, "/usr/bin/python3", command.Path)
	assert.Equal(t, []string{
		"dependences/word2vec-api.py",
		"--model", "/models/GoogleNews-vectors-negative300.bin",
		"--binary", "true",
		"--port", "5001",
	}, command.Args)
}

func TestSupervisor_StartAndStop(t *testing.T) {
	supervisor := NewSupervisor(shellCommand("echo loading model; exec sleep 30"), "127.0.0.1:0")
	assert.False(t, supervisor.IsAlive())

	require.NoError(t, supervisor.Start(context.Background()))
	assert.True(t, supervisor.IsAlive())

	// Starting a running process is a no-op
	require.NoError(t, supervisor.Start(context.Background()))

	require.NoError(t, supervisor.Stop(context.Background()))
	assert.False(t, supervisor.IsAlive())
	assert.Error(t, supervisor.ExitErr())

	// Stopping a stopped process is a no-op
	assert.NoError(t, supervisor.Stop(context.Background()))
}

func TestSupervisor_StopKillsAfterGracePeriod(t *testing.T) {
	supervisor := NewSupervisor(
		shellCommand(`trap "" TERM; while :; do sleep 0.1; done`),
		"127.0.0.1:0",
		WithGracePeriod(200*time.Millisecond),
	)
	require.NoError(t, supervisor.Start(context.Background()))
	// Let the shell install its trap
	time.Sleep(200 * time.Millisecond)

	started := time.Now()
	require.NoError(t, supervisor.Stop(context.Background()))
	assert.False(t, supervisor.IsAlive())
	assert.GreaterOrEqual(t, time.Since(started), 200*time.Millisecond)
}

func TestSupervisor_StartMissingBinary(t *testing.T) {
	supervisor := NewSupervisor(Command{Path: "fancyword-no-such-python"}, "127.0.0.1:0")
	assert.Error(t, supervisor.Start(context.Background()))
	assert.False(t, supervisor.IsAlive())
}

func TestSupervisor_EnsureRunningRestartsExitedProcess(t *testing.T) {
	supervisor := NewSupervisor(shellCommand("exit 3"), "127.0.0.1:0")

	require.NoError(t, supervisor.EnsureRunning(context.Background()))
	waitUntil(t, func() bool { return !supervisor.IsAlive() })

	var exitErr interface{ ExitCode() int }
	require.True(t, errors.As(supervisor.ExitErr(), &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())

	require.NoError(t, supervisor.EnsureRunning(context.Background()))
	waitUntil(t, func() bool { return !supervisor.IsAlive() })
}

func TestSupervisor_EnsureRunningWaitsForPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	supervisor := NewSupervisor(
		shellCommand("exec sleep 30"),
		listener.Addr().String(),
		WithReadyTimeout(2*time.Second),
	)
	defer func() {
		_ = supervisor.Stop(context.Background())
	}()

	require.NoError(t, supervisor.EnsureRunning(context.Background()))
	assert.True(t, supervisor.IsAlive())
}

func TestSupervisor_WaitReady(t *testing.T) {
	closedAddress := func(t *testing.T) string {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		address := listener.Addr().String()
		require.NoError(t, listener.Close())
		return address
	}

	tests := []struct {
		name    string
		script  string
		timeout time.Duration
		wantErr error
	}{
		{
			name:    "process exits before listening",
			script:  "exit 1",
			timeout: 3 * time.Second,
			wantErr: errProcessExited,
		},
		{
			name:    "port never opens",
			script:  "exec sleep 30",
			timeout: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supervisor := NewSupervisor(shellCommand(tt.script), closedAddress(t))
			defer func() {
				_ = supervisor.Stop(context.Background())
			}()
			require.NoError(t, supervisor.Start(context.Background()))

			ctx, cancel := context.WithTimeout(context.Background(), tt.timeout)
			defer cancel()
			err := supervisor.WaitReady(ctx)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLineLogger_Write(t *testing.T) {
	logger := newLineLogger("stdout")

	n, err := logger.Write([]byte("Loading model\nDone"))
	require.NoError(t, err)
	assert.Equal(t, 18, n)
	assert.Equal(t, "Done", logger.buf.String())

	_, err = logger.Write([]byte(" loading\n"))
	require.NoError(t, err)
	assert.Empty(t, logger.buf.String())
}
