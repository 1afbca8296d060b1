// Package cascade runs an ordered pipeline of named steps inside one
// storage transaction. The vendor deletion flow uses it to remove
// bookings, halls and the vendor record as a unit.
package cascade

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type Step struct {
	Name    string
	Execute func(ctx mongo.SessionContext) error
}

func NewStep(name string, execute func(ctx mongo.SessionContext) error) Step {
	return Step{
		Name:    name,
		Execute: execute,
	}
}

type Pipeline struct {
	name  string
	steps []Step
}

func NewPipeline(name string, steps ...Step) *Pipeline {
	return &Pipeline{
		name:  name,
		steps: steps,
	}
}

func (p *Pipeline) Name() string {
	return p.name
}

// Run executes the steps in order. The first failure aborts the
// pipeline; the caller's transaction rolls back every prior step.
func (p *Pipeline) Run(ctx mongo.SessionContext) error {
	for _, step := range p.steps {
		if err := step.Execute(ctx); err != nil {
			return fmt.Errorf("%s step failed, pipeline %s aborted: %w", step.Name, p.name, err)
		}
	}
	return nil
}
