package intent

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOutcomeSettlesExactlyOnce(t *testing.T) {
	o := newOutcome()
	if o.Settled() {
		t.Fatalf("fresh outcome reports settled")
	}

	o.settle(Result{Success: true, Status: StatusExecuted}, nil)
	o.settle(Result{Success: false, Status: StatusCancelled}, errors.New("late"))

	res, err := o.Result()
	if err != nil || !res.Success || res.Status != StatusExecuted {
		t.Fatalf("first settle did not stick: %+v, %v", res, err)
	}
	select {
	case <-o.Done():
	default:
		t.Fatalf("Done not closed after settle")
	}
}

func TestOutcomeWaitHonoursContext(t *testing.T) {
	o := newOutcome()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := o.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait on pending outcome = %v, want deadline exceeded", err)
	}

	o.settle(cancelledResult(), nil)
	res, err := o.Wait(context.Background())
	if err != nil || res.Status != StatusCancelled {
		t.Fatalf("Wait after settle = %+v, %v", res, err)
	}
}

func TestSettledOutcomeIsImmediatelyDone(t *testing.T) {
	fatal := errors.New("boom")
	o := settledOutcome(Result{}, fatal)
	if !o.Settled() {
		t.Fatalf("settledOutcome not settled")
	}
	if _, err := o.Result(); !errors.Is(err, fatal) {
		t.Fatalf("Result error = %v, want %v", err, fatal)
	}
}
