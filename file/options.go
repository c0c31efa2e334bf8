package file

import (
	"log/slog"
	"time"

	"github.com/jmgilman/scriptfile/exec"
	"github.com/jmgilman/scriptfile/fs/billy"
	"github.com/jmgilman/scriptfile/fs/core"
)

const (
	// DefaultBufferSize is the read-ahead size used by OpenDefault.
	DefaultBufferSize = 2048

	defaultOpenAttempts = 10
	defaultOpenDelay    = 50 * time.Millisecond
)

// Option configures a Handle.
type Option func(*config)

type config struct {
	fs       core.FS
	executor exec.Executor
	logger   *slog.Logger
	attempts int
	delay    time.Duration
	debug    bool
}

func newConfig(opts []Option) config {
	cfg := config{
		attempts: defaultOpenAttempts,
		delay:    defaultOpenDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fs == nil {
		cfg.fs = billy.NewLocal()
	}
	if cfg.executor == nil {
		cfg.executor = exec.New(exec.WithInheritEnv())
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.attempts < 1 {
		cfg.attempts = 1
	}
	return cfg
}

// WithFS sets the filesystem files are opened on. Defaults to the local
// filesystem with names resolved like the os package.
func WithFS(fsys core.FS) Option {
	return func(c *config) {
		c.fs = fsys
	}
}

// WithExecutor sets the executor Popen starts commands with.
func WithExecutor(e exec.Executor) Option {
	return func(c *config) {
		c.executor = e
	}
}

// WithLogger sets the logger. Debug records are only emitted while the
// handle's debug property is set; failures are always logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithOpenRetry sets how many times a non-shareable open is attempted
// while the file is locked, and the pause between attempts.
func WithOpenRetry(attempts int, delay time.Duration) Option {
	return func(c *config) {
		c.attempts = attempts
		c.delay = delay
	}
}

// WithDebug sets the initial value of the debug property.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}
