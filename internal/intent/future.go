package intent

import (
	"context"
	"sync"
)

// Outcome is the settle-once handle a dispatch returns. Direct-execute,
// scroll, redirect and modal dispatches come back already settled; a
// confirm-gated dispatch stays pending until the user confirms, cancels,
// or the controller is torn down.
type Outcome struct {
	done chan struct{}
	once sync.Once
	res  Result
	err  error
}

func newOutcome() *Outcome {
	return &Outcome{done: make(chan struct{})}
}

func settledOutcome(res Result, err error) *Outcome {
	o := newOutcome()
	o.settle(res, err)
	return o
}

// settle records the terminal result. Later calls are no-ops, which is
// what makes supersede/cancel/teardown paths safe to run unconditionally.
func (o *Outcome) settle(res Result, err error) {
	o.once.Do(func() {
		o.res = res
		o.err = err
		close(o.done)
	})
}

// Done is closed once the outcome has settled.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Settled reports whether the outcome has a terminal result.
func (o *Outcome) Settled() bool {
	select {
	case <-o.done:
		return true
	default:
		return false
	}
}

// Result returns the terminal result. Only meaningful after Done.
func (o *Outcome) Result() (Result, error) {
	select {
	case <-o.done:
		return o.res, o.err
	default:
		return Result{}, nil
	}
}

// Wait blocks until the outcome settles or ctx is done. The pipeline
// imposes no timeout of its own on confirmation suspensions; callers
// that need one pass a context with a deadline.
func (o *Outcome) Wait(ctx context.Context) (Result, error) {
	select {
	case <-o.done:
		return o.res, o.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
