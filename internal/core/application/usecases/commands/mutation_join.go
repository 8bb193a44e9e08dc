package commands

import (
	"context"
	"fmt"
	"sync"
)

// Mutation is one named storage write dispatched as part of a fan-out.
type Mutation struct {
	Name string
	Run  func(ctx context.Context) error
}

// Outcome is the result of one dispatched mutation.
type Outcome struct {
	Name string
	Err  error
}

// JoinMutations dispatches every mutation in its own goroutine and waits for
// all of them. A failure never cancels an in-flight sibling: each dispatched
// write runs to completion regardless of how the others fare. Outcomes are
// returned in dispatch order.
func JoinMutations(ctx context.Context, mutations ...Mutation) []Outcome {
	outcomes := make([]Outcome, len(mutations))

	var wg sync.WaitGroup
	for i, m := range mutations {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = Outcome{Name: m.Name, Err: m.Run(ctx)}
		}()
	}
	wg.Wait()

	return outcomes
}

// FirstFailure reduces a set of outcomes to a single verdict: nil when every
// mutation succeeded, otherwise the error of the first-dispatched failure.
// Dispatch order keeps the both-fail verdict deterministic within a run.
func FirstFailure(outcomes []Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			return fmt.Errorf("%s: %w", o.Name, o.Err)
		}
	}
	return nil
}
