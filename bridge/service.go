package bridge

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/treeshell/engine"
	"github.com/viant/treeshell/render"
	"go.uber.org/zap"
)

// Service runs commands against the shared engine
type Service struct {
	lifecycle *engine.Lifecycle
	variant   Variant
	render    Renderer
	logger    *zap.Logger
	mux       sync.Mutex // one in-flight command per engine
}

type panicError struct {
	value interface{}
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Variant returns the service variant
func (s *Service) Variant() Variant {
	return s.variant
}

// Run executes a command and wraps any outcome into an envelope.
// Commands are executed one at a time, in the order they acquire the service.
// The engine call is not cancelled when ctx is done.
func (s *Service) Run(ctx context.Context, command string) *Envelope {
	s.mux.Lock()
	defer s.mux.Unlock()
	invocation := uuid.New().String()
	ctx = context.WithoutCancel(ctx)
	s.logger.Debug("running command", zap.String("invocation", invocation), zap.String("command", command))

	var anEngine engine.Engine
	err := protect(func() (err error) {
		anEngine, err = s.lifecycle.Ensure(ctx)
		return err
	})
	if err != nil {
		return s.fail(invocation, newError(KindInitialization, command, err))
	}

	var result engine.Result
	err = protect(func() (err error) {
		result, err = anEngine.Handle(ctx, command)
		return err
	})
	if err != nil {
		return s.fail(invocation, newError(KindExecution, command, err))
	}
	if result == nil {
		result = engine.Result{}
	}
	if s.variant == VariantRaw {
		return newSuccess(command, "", result)
	}

	var output string
	err = protect(func() error {
		output = s.render(result)
		return nil
	})
	if err != nil {
		return s.fail(invocation, newError(KindExecution, command, err))
	}
	return newSuccess(command, output, result)
}

func (s *Service) fail(invocation string, failure *Error) *Envelope {
	fields := []zap.Field{
		zap.String("invocation", invocation),
		zap.Stringer("kind", failure.Kind),
		zap.String("command", failure.Command),
		zap.Error(failure.Cause),
		zap.Stack("stack"),
	}
	var recovered *panicError
	if errors.As(failure.Cause, &recovered) {
		fields = append(fields, zap.ByteString("panicStack", recovered.stack))
	}
	s.logger.Error("command failed", fields...)
	return newFailure(failure, s.variant)
}

func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: debug.Stack()}
		}
	}()
	return fn()
}

// New creates a service using lifecycle to obtain the engine
func New(lifecycle *engine.Lifecycle, options ...Option) *Service {
	ret := &Service{
		lifecycle: lifecycle,
		variant:   VariantRendered,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.render == nil {
		ret.render = render.Text
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}
