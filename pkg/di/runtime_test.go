package di_test

import (
	"errors"
	"testing"

	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errHandler = errors.New("handler error")
	errModule  = errors.New("module error")
)

func TestNew_EmptyModules(t *testing.T) {
	t.Parallel()

	rt := di.New()

	require.NotNil(t, rt)
}

func TestRuntime_Invoke_Success(t *testing.T) {
	t.Parallel()

	rt := di.New()

	handlerCalled := false
	err := rt.Invoke(func(di.Injector) error {
		handlerCalled = true

		return nil
	})

	require.NoError(t, err)
	assert.True(t, handlerCalled)
}

func TestRuntime_Invoke_HandlerError(t *testing.T) {
	t.Parallel()

	err := di.New().Invoke(func(di.Injector) error {
		return errHandler
	})

	require.ErrorIs(t, err, errHandler)
}

func TestRuntime_Invoke_ModuleError(t *testing.T) {
	t.Parallel()

	failingModule := func(di.Injector) error {
		return errModule
	}

	err := di.New(failingModule).Invoke(func(di.Injector) error {
		t.Fatal("handler should not be called when module fails")

		return nil
	})

	require.ErrorIs(t, err, errModule)
}

func TestRuntime_Invoke_ModuleOrder(t *testing.T) {
	t.Parallel()

	var order []int

	module := func(n int) di.Module {
		return func(di.Injector) error {
			order = append(order, n)

			return nil
		}
	}

	rt := di.New(module(1))

	err := rt.Invoke(func(di.Injector) error {
		order = append(order, 4)

		return nil
	}, module(2), module(3))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order, "modules should execute in order")
}

func TestRuntime_Invoke_NilModule(t *testing.T) {
	t.Parallel()

	err := di.New(nil).Invoke(func(di.Injector) error {
		return nil
	}, nil)

	require.NoError(t, err, "nil modules should be skipped")
}

func TestRuntime_Invoke_FreshInjectorPerInvocation(t *testing.T) {
	t.Parallel()

	type counter struct{ n int }

	calls := 0
	module := func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (*counter, error) {
			calls++

			return &counter{n: calls}, nil
		})

		return nil
	}

	rt := di.New(module)

	var seen []int

	for range 2 {
		err := rt.Invoke(func(i di.Injector) error {
			c, err := do.Invoke[*counter](i)
			if err != nil {
				return err
			}

			seen = append(seen, c.n)

			return nil
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 2}, seen)
}

func TestRunEWithRuntime_PassesCommand(t *testing.T) {
	t.Parallel()

	var receivedCmd *cobra.Command

	runE := di.RunEWithRuntime(di.New(), func(cmd *cobra.Command, _ di.Injector) error {
		receivedCmd = cmd

		return nil
	})

	cmd := &cobra.Command{Use: "test"}

	require.NoError(t, runE(cmd, nil))
	assert.Equal(t, cmd, receivedCmd)
}

func TestRunEWithRuntime_HandlerError(t *testing.T) {
	t.Parallel()

	runE := di.RunEWithRuntime(di.New(), func(*cobra.Command, di.Injector) error {
		return errHandler
	})

	err := runE(&cobra.Command{Use: "test"}, nil)

	require.ErrorIs(t, err, errHandler)
}
