package treeshell

import (
	"context"

	"github.com/jessevdk/go-flags"
	"github.com/viant/treeshell/bridge"
	"github.com/viant/treeshell/engine/process"
	"go.uber.org/zap"
)

// Run parses args and serves the bridge over stdio until the input stream closes
func Run(args []string, defaultVariant bridge.Variant) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	if err := options.Load(ctx); err != nil {
		return err
	}
	if err := options.Init(defaultVariant); err != nil {
		return err
	}
	logger, err := NewLogger(options.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	newEngine := process.New(&process.Config{Command: options.EngineCommand, Arguments: options.EngineArgs})
	srv, err := NewServer(newEngine, options, logger)
	if err != nil {
		return err
	}
	logger.Info("serving", zap.String("name", options.Name), zap.String("variant", options.Variant), zap.String("engine", options.EngineCommand))
	return srv.Stdio(ctx).ListenAndServe()
}
