package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingStep(name string, calls *[]string, err error) Step {
	return Step{
		Name: name,
		Run: func(context.Context) error {
			*calls = append(*calls, name)
			return err
		},
	}
}

func TestRunner_AllSucceed(t *testing.T) {
	var calls []string
	steps := []Step{
		recordingStep("one", &calls, nil),
		recordingStep("two", &calls, nil),
		recordingStep("three", &calls, nil),
	}

	res := Runner{}.Run(context.Background(), steps)

	assert.True(t, res.OK())
	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"one", "two", "three"}, calls)
	require.Len(t, res.Completed, 3)
	assert.Equal(t, "three", res.Completed[2].Name)
}

func TestRunner_StopsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var calls []string
	steps := []Step{
		recordingStep("one", &calls, nil),
		recordingStep("two", &calls, boom),
		recordingStep("three", &calls, nil),
	}

	res := Runner{}.Run(context.Background(), steps)

	assert.False(t, res.OK())
	assert.Equal(t, []string{"one", "two"}, calls)
	require.NotNil(t, res.Failed)
	assert.Equal(t, 1, res.Failed.Index)
	assert.Equal(t, "two", res.Failed.Name)
	assert.ErrorIs(t, res.Err(), boom)
	assert.Equal(t, "boom", res.Err().Error())
	assert.Equal(t, "step 2 (two): boom", res.Failed.Describe())
	assert.Len(t, res.Completed, 1)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string
	res := Runner{}.Run(ctx, []Step{recordingStep("one", &calls, nil)})

	assert.Empty(t, calls)
	require.NotNil(t, res.Failed)
	assert.ErrorIs(t, res.Err(), context.Canceled)
}

func TestRunner_AroundSkipsInteractiveSteps(t *testing.T) {
	var calls, wrapped []string
	steps := []Step{
		recordingStep("write", &calls, nil),
		{
			Name:        "reveal",
			Interactive: true,
			Run: func(context.Context) error {
				calls = append(calls, "reveal")
				return nil
			},
		},
	}

	r := Runner{Around: func(_ context.Context, step Step, run func() error) error {
		wrapped = append(wrapped, step.Name)
		return run()
	}}
	res := r.Run(context.Background(), steps)

	assert.True(t, res.OK())
	assert.Equal(t, []string{"write", "reveal"}, calls)
	assert.Equal(t, []string{"write"}, wrapped)
}
