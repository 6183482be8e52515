package engine

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/viant/afs"
	"go.uber.org/zap"
)

const (
	// DataDirEnv names the engine working/data directory
	DataDirEnv = "HEAVEN_DATA_DIR"
	// DefaultDataDir is used when DataDirEnv is unset
	DefaultDataDir = "/tmp/heaven_data"

	dataDirMode = os.FileMode(0o755)
)

// Lifecycle owns the single engine shared by all invocations of a process.
type Lifecycle struct {
	newEngine      Factory
	engine         Engine
	mux            sync.Mutex
	dataDirEnv     string
	defaultDataDir string
	fs             afs.Service
	logger         *zap.Logger
}

// Ensure returns the shared engine, constructing it on first successful use.
// A failed construction is not cached, the next call starts over.
func (l *Lifecycle) Ensure(ctx context.Context) (Engine, error) {
	l.mux.Lock()
	defer l.mux.Unlock()
	if l.engine != nil {
		return l.engine, nil
	}
	if l.newEngine == nil {
		return nil, fmt.Errorf("engine factory was nil")
	}
	if err := l.ensureDataDir(ctx); err != nil {
		return nil, err
	}
	engine, err := l.newEngine(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if engine == nil {
		return nil, fmt.Errorf("failed to create engine: factory returned nil")
	}
	l.engine = engine
	l.logger.Info("engine ready", zap.String("dataDir", os.Getenv(l.dataDirEnv)))
	return l.engine, nil
}

// Ready reports whether the engine has been constructed
func (l *Lifecycle) Ready() bool {
	l.mux.Lock()
	defer l.mux.Unlock()
	return l.engine != nil
}

func (l *Lifecycle) ensureDataDir(ctx context.Context) error {
	if os.Getenv(l.dataDirEnv) != "" {
		return nil
	}
	exists, err := l.fs.Exists(ctx, l.defaultDataDir)
	if err != nil {
		return fmt.Errorf("failed to check data dir %v: %w", l.defaultDataDir, err)
	}
	if exists {
		object, err := l.fs.Object(ctx, l.defaultDataDir)
		if err != nil {
			return fmt.Errorf("failed to check data dir %v: %w", l.defaultDataDir, err)
		}
		if !object.IsDir() {
			return fmt.Errorf("data dir %v is not a directory", l.defaultDataDir)
		}
	} else if err = l.fs.Create(ctx, l.defaultDataDir, dataDirMode, true); err != nil {
		return fmt.Errorf("failed to create data dir %v: %w", l.defaultDataDir, err)
	}
	// set only after the directory exists, a failed attempt leaves the variable unset
	if err = os.Setenv(l.dataDirEnv, l.defaultDataDir); err != nil {
		return fmt.Errorf("failed to set %v: %w", l.dataDirEnv, err)
	}
	l.logger.Debug("defaulted data dir", zap.String("env", l.dataDirEnv), zap.String("location", l.defaultDataDir))
	return nil
}

// NewLifecycle creates a lifecycle constructing engines with newEngine
func NewLifecycle(newEngine Factory, options ...Option) *Lifecycle {
	ret := &Lifecycle{
		newEngine:      newEngine,
		dataDirEnv:     DataDirEnv,
		defaultDataDir: DefaultDataDir,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}
