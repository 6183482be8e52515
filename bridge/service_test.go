package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/treeshell/engine"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

// treeEngine emulates a stateful navigation engine
type treeEngine struct {
	mux      sync.Mutex
	position string
	inFlight int32
	overlaps int32
}

func (e *treeEngine) Handle(ctx context.Context, command string) (engine.Result, error) {
	if atomic.AddInt32(&e.inFlight, 1) > 1 {
		atomic.AddInt32(&e.overlaps, 1)
	}
	defer atomic.AddInt32(&e.inFlight, -1)
	e.mux.Lock()
	defer e.mux.Unlock()
	switch {
	case command == "nav":
		return engine.Result{"tree": "0: root\n  0.0.1: discover_server_actions", "position": e.position}, nil
	case command == "boom":
		panic("engine crashed")
	case strings.HasPrefix(command, "jump 9"):
		return nil, errors.New("coordinate not found")
	case strings.HasPrefix(command, "jump 7"):
		return engine.Result{"error": "coordinate 7 does not exist", "position": e.position}, nil
	case strings.HasPrefix(command, "jump "):
		e.position = strings.TrimPrefix(command, "jump ")
		return engine.Result{"position": e.position}, nil
	case strings.HasPrefix(command, "exec"):
		return engine.Result{"executed": e.position}, nil
	case command == "empty":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown command: %q", command)
}

func newTestService(t *testing.T, variant Variant, factory engine.Factory, options ...Option) *Service {
	t.Setenv(engine.DataDirEnv, t.TempDir())
	options = append(options, WithVariant(variant))
	return New(engine.NewLifecycle(factory), options...)
}

func treeFactory(anEngine engine.Engine) engine.Factory {
	return func(ctx context.Context) (engine.Engine, error) {
		return anEngine, nil
	}
}

func TestService_Run(t *testing.T) {
	var testCases = []struct {
		description   string
		variant       Variant
		command       string
		expectSuccess bool
		expectOutput  string
		expectResult  engine.Result
		expectError   string
	}{
		{
			description:   "rendered nav",
			variant:       VariantRendered,
			command:       "nav",
			expectSuccess: true,
			expectOutput:  "discover_server_actions",
			expectResult:  engine.Result{"tree": "0: root\n  0.0.1: discover_server_actions", "position": ""},
		},
		{
			description:   "raw nav",
			variant:       VariantRaw,
			command:       "nav",
			expectSuccess: true,
			expectResult:  engine.Result{"tree": "0: root\n  0.0.1: discover_server_actions", "position": ""},
		},
		{
			description:   "engine level error indicator",
			variant:       VariantRendered,
			command:       "jump 7",
			expectSuccess: true,
			expectOutput:  "does not exist",
			expectResult:  engine.Result{"error": "coordinate 7 does not exist", "position": ""},
		},
		{
			description: "rendered execution failure",
			variant:     VariantRendered,
			command:     "jump 9.9.9",
			expectError: "Error executing command 'jump 9.9.9': coordinate not found",
		},
		{
			description: "raw execution failure",
			variant:     VariantRaw,
			command:     "jump 9.9.9",
			expectError: "coordinate not found",
		},
		{
			description: "engine panic",
			variant:     VariantRendered,
			command:     "boom",
			expectError: "Error executing command 'boom': panic: engine crashed",
		},
		{
			description:   "empty command result",
			variant:       VariantRaw,
			command:       "empty",
			expectSuccess: true,
			expectResult:  engine.Result{},
		},
		{
			description: "empty command",
			variant:     VariantRendered,
			command:     "",
			expectError: `Error executing command '': unknown command: ""`,
		},
	}

	for _, testCase := range testCases {
		service := newTestService(t, testCase.variant, treeFactory(&treeEngine{}))
		actual := service.Run(context.Background(), testCase.command)
		if !assert.NotNil(t, actual, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectSuccess, actual.Success, testCase.description)
		if !testCase.expectSuccess {
			assert.Equal(t, testCase.expectError, actual.Error, testCase.description)
			assert.NotNil(t, actual.Failure, testCase.description)
			assert.Equal(t, KindExecution, actual.Failure.Kind, testCase.description)
			continue
		}
		assert.Equal(t, testCase.command, actual.Command, testCase.description)
		assert.EqualValues(t, testCase.expectResult, actual.Result, testCase.description)
		if testCase.variant == VariantRaw {
			assert.Empty(t, actual.Output, testCase.description)
			continue
		}
		assert.Contains(t, actual.Output, testCase.expectOutput, testCase.description)
	}
}

func TestService_Run_InitializationFailure(t *testing.T) {
	var calls int32
	factory := func(ctx context.Context) (engine.Engine, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("engine binary not found")
		}
		return &treeEngine{}, nil
	}
	core, logs := observer.New(zapcore.DebugLevel)
	service := newTestService(t, VariantRendered, factory, WithLogger(zap.New(core)))

	actual := service.Run(context.Background(), "nav")
	assert.False(t, actual.Success)
	assert.Equal(t, "Shell failed to initialize: failed to create engine: engine binary not found", actual.Error)
	assert.Equal(t, KindInitialization, actual.Failure.Kind)
	assert.True(t, errors.Is(actual.Failure, actual.Failure.Cause))

	failures := logs.FilterMessage("command failed").All()
	if assert.Len(t, failures, 1) {
		fields := failures[0].ContextMap()
		assert.Equal(t, "initialization", fields["kind"])
		assert.Equal(t, "nav", fields["command"])
		assert.NotEmpty(t, fields["stack"])
		assert.Contains(t, fields["error"], "engine binary not found")
	}

	actual = service.Run(context.Background(), "nav")
	assert.True(t, actual.Success)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestService_Run_FactoryPanic(t *testing.T) {
	factory := func(ctx context.Context) (engine.Engine, error) {
		panic("broken factory")
	}
	service := newTestService(t, VariantRaw, factory)
	actual := service.Run(context.Background(), "nav")
	assert.False(t, actual.Success)
	assert.Equal(t, "Shell failed to initialize: panic: broken factory", actual.Error)
}

func TestService_Run_RendererPanic(t *testing.T) {
	renderer := func(result engine.Result) string {
		panic("cannot render")
	}
	service := newTestService(t, VariantRendered, treeFactory(&treeEngine{}), WithRenderer(renderer))
	actual := service.Run(context.Background(), "nav")
	assert.False(t, actual.Success)
	assert.Equal(t, KindExecution, actual.Failure.Kind)
}

func TestService_Run_CoupledCommands(t *testing.T) {
	service := newTestService(t, VariantRaw, treeFactory(&treeEngine{}))
	for _, coordinate := range []string{"0.0.1", "0.0.2", "0.0.3"} {
		jumped := service.Run(context.Background(), "jump "+coordinate)
		assert.True(t, jumped.Success)
		executed := service.Run(context.Background(), `exec {"user_query": "list"}`)
		assert.True(t, executed.Success)
		assert.Equal(t, coordinate, executed.Result["executed"])
	}
}

func TestService_Run_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	anEngine := &treeEngine{}
	var constructed int32
	factory := func(ctx context.Context) (engine.Engine, error) {
		atomic.AddInt32(&constructed, 1)
		return anEngine, nil
	}
	service := newTestService(t, VariantRendered, factory)

	group := errgroup.Group{}
	for i := 0; i < 32; i++ {
		command := fmt.Sprintf("jump 0.%d", i)
		group.Go(func() error {
			if envelope := service.Run(context.Background(), command); !envelope.Success {
				return errors.New(envelope.Error)
			}
			return nil
		})
	}
	assert.Nil(t, group.Wait())
	assert.EqualValues(t, 0, atomic.LoadInt32(&anEngine.overlaps))
	assert.EqualValues(t, 1, atomic.LoadInt32(&constructed))
}

func TestService_Run_CanceledContext(t *testing.T) {
	service := newTestService(t, VariantRaw, func(ctx context.Context) (engine.Engine, error) {
		return engine.HandlerFunc(func(ctx context.Context, command string) (engine.Result, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return engine.Result{"command": command}, nil
		}), nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	actual := service.Run(ctx, "nav")
	assert.True(t, actual.Success)
}
