package word2vec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/fancyword/internal/config"
)

var errProcessExited = errors.New("word2vec-api process exited")

const (
	defaultGracePeriod = 5 * time.Second
	readyPollInterval  = 200 * time.Millisecond
	readyDialTimeout   = 500 * time.Millisecond
)

// Command is the program line that runs the word2vec-api server.
type Command struct {
	Path string
	Args []string
}

// NewServerCommand builds the launch command for a pretrained binary model.
func NewServerCommand(cfg config.Word2VecConfig) Command {
	return Command{
		Path: cfg.PythonPath,
		Args: []string{
			cfg.APIScript,
			"--model", cfg.PretrainedModel,
			"--binary", "true",
			"--port", strconv.Itoa(cfg.Port),
		},
	}
}

// Supervisor owns at most one word2vec-api child process.
type Supervisor struct {
	command      Command
	address      string
	readyTimeout time.Duration
	gracePeriod  time.Duration

	mu      sync.Mutex
	process *process
}

type process struct {
	cmd  *exec.Cmd
	done chan struct{}
	// err is written before done is closed
	err error
}

func (p *process) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

type SupervisorOption func(*Supervisor)

// WithReadyTimeout makes EnsureRunning wait until the server accepts connections.
func WithReadyTimeout(timeout time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		s.readyTimeout = timeout
	}
}

// WithGracePeriod sets how long Stop waits after SIGTERM before killing the process.
func WithGracePeriod(gracePeriod time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		s.gracePeriod = gracePeriod
	}
}

func NewSupervisor(command Command, address string, options ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		command:     command,
		address:     address,
		gracePeriod: defaultGracePeriod,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Start launches the process unless one is already running.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start(ctx)
}

func (s *Supervisor) start(ctx context.Context) error {
	if s.aliveLocked() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := exec.LookPath(s.command.Path)
	if err != nil {
		return fmt.Errorf("exec.LookPath(%s) > %w", s.command.Path, err)
	}

	// The process outlives the request that started it, so it is not bound to ctx
	cmd := exec.Command(path, s.command.Args...)
	cmd.Stdout = newLineLogger("stdout")
	cmd.Stderr = newLineLogger("stderr")
	cmd.WaitDelay = s.gracePeriod
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start > %w", err)
	}
	slog.Default().Info("word2vec-api server started",
		"pid", cmd.Process.Pid,
		"command", path,
		"args", s.command.Args,
	)

	p := &process{cmd: cmd, done: make(chan struct{})}
	s.process = p
	go func() {
		p.err = cmd.Wait()
		slog.Default().Debug("word2vec-api server exited", "pid", cmd.Process.Pid, "error", p.err)
		close(p.done)
	}()
	return nil
}

// IsAlive reports whether the process was started and has not exited.
func (s *Supervisor) IsAlive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aliveLocked()
}

func (s *Supervisor) aliveLocked() bool {
	return s.process != nil && !s.process.exited()
}

// ExitErr returns how the last process ended, or nil while it runs.
func (s *Supervisor) ExitErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.process == nil || !s.process.exited() {
		return nil
	}
	return s.process.err
}

// EnsureRunning starts the process if it was never started or has exited.
func (s *Supervisor) EnsureRunning(ctx context.Context) error {
	s.mu.Lock()
	alive := s.aliveLocked()
	if !alive {
		if s.process != nil {
			slog.Default().Info("word2vec-api server is not running, restarting it", "last_error", s.process.err)
		}
		if err := s.start(ctx); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.mu.Unlock()

	if alive || s.readyTimeout <= 0 {
		return nil
	}
	readyCtx, cancel := context.WithTimeout(ctx, s.readyTimeout)
	defer cancel()
	if err := s.WaitReady(readyCtx); err != nil {
		return fmt.Errorf("s.WaitReady > %w", err)
	}
	return nil
}

// WaitReady polls the server port until it accepts connections, the process
// exits, or ctx is done.
func (s *Supervisor) WaitReady(ctx context.Context) error {
	s.mu.Lock()
	p := s.process
	s.mu.Unlock()

	attempts := uint(1)
	if deadline, ok := ctx.Deadline(); ok {
		attempts = uint(time.Until(deadline)/readyPollInterval) + 1
	}

	return retry.Do(
		func() error {
			if p != nil && p.exited() {
				return retry.Unrecoverable(errProcessExited)
			}
			dialer := net.Dialer{Timeout: readyDialTimeout}
			conn, err := dialer.DialContext(ctx, "tcp", s.address)
			if err != nil {
				return fmt.Errorf("dial %s > %w", s.address, err)
			}
			return conn.Close()
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(readyPollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

// Stop sends SIGTERM and kills the process if it is still running after the
// grace period or when ctx is done.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.aliveLocked() {
		return nil
	}
	p := s.process

	slog.Default().Info("stopping word2vec-api server", "pid", p.cmd.Process.Pid)
	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("signal SIGTERM > %w", err)
	}

	timer := time.NewTimer(s.gracePeriod)
	defer timer.Stop()
	select {
	case <-p.done:
		return nil
	case <-timer.C:
	case <-ctx.Done():
	}

	slog.Default().Warn("word2vec-api server did not stop, killing it", "pid", p.cmd.Process.Pid)
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("process.Kill > %w", err)
	}
	<-p.done
	return nil
}

// lineLogger writes each complete line of a child stream to the debug log.
type lineLogger struct {
	stream string
	buf    bytes.Buffer
}

func newLineLogger(stream string) *lineLogger {
	return &lineLogger{stream: stream}
}

func (l *lineLogger) Write(p []byte) (int, error) {
	l.buf.Write(p)
	for {
		line, err := l.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write
			l.buf.Reset()
			l.buf.WriteString(line)
			break
		}
		slog.Default().Debug("word2vec-api", "stream", l.stream, "line", line[:len(line)-1])
	}
	return len(p), nil
}
