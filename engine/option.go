package engine

import (
	"github.com/viant/afs"
	"go.uber.org/zap"
)

// Option is a function that configures the lifecycle.
type Option func(l *Lifecycle)

// WithDataDirEnv sets the environment variable naming the engine data directory.
func WithDataDirEnv(name string) Option {
	return func(l *Lifecycle) {
		l.dataDirEnv = name
	}
}

// WithDefaultDataDir sets the data directory used when the environment variable is unset.
func WithDefaultDataDir(location string) Option {
	return func(l *Lifecycle) {
		l.defaultDataDir = location
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Lifecycle) {
		l.logger = logger
	}
}

// WithFileService sets the file service used to create the data directory.
func WithFileService(fs afs.Service) Option {
	return func(l *Lifecycle) {
		l.fs = fs
	}
}
