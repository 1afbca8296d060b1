package cascade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRunExecutesStepsInOrder(t *testing.T) {
	var order []string

	pipeline := NewPipeline("test",
		NewStep("first", func(mongo.SessionContext) error {
			order = append(order, "first")
			return nil
		}),
		NewStep("second", func(mongo.SessionContext) error {
			order = append(order, "second")
			return nil
		}),
	)

	require.NoError(t, pipeline.Run(nil))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var reached bool

	pipeline := NewPipeline("test",
		NewStep("failing", func(mongo.SessionContext) error {
			return boom
		}),
		NewStep("unreached", func(mongo.SessionContext) error {
			reached = true
			return nil
		}),
	)

	err := pipeline.Run(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing step failed")
	assert.False(t, reached)
}
