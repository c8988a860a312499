package musicbrainz

import (
	"context"
	"errors"
	"sync/atomic"
)

// State is the lifecycle position of a single request.
//
//	Pending -> Waiting -> Dispatched -> Success
//	                               \-> Throttled -> Waiting -> ...
//	                               \-> Failed
//	                               \-> RateLimited (retries exhausted)
type State int32

// Request states.
const (
	StatePending State = iota
	StateWaiting
	StateDispatched
	StateThrottled
	StateSuccess
	StateFailed
	StateRateLimited
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateWaiting:
		return "waiting"
	case StateDispatched:
		return "dispatched"
	case StateThrottled:
		return "throttled"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	case StateRateLimited:
		return "rate limited"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFailed || s == StateRateLimited
}

// Call is an in-flight or completed request.
//
// In ModeAsync a Call is returned before the request has been sent; use
// Done or Wait to collect the outcome. In ModeBlocking the Call returned
// by Client.Go is already complete.
type Call struct {
	Request Request
	Result  interface{} // Destination passed to Go; filled on success

	state atomic.Int32
	done  chan struct{}
	err   error
}

func newCall(req Request, v interface{}) *Call {
	return &Call{Request: req, Result: v, done: make(chan struct{})}
}

// Done is closed when the call reaches a terminal state.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call finishes and returns its error.
func (c *Call) Wait() error {
	<-c.done
	return c.err
}

// Err returns the call's error once it has finished, nil before that.
func (c *Call) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// State returns the call's current state.
func (c *Call) State() State {
	return State(c.state.Load())
}

func (c *Call) setState(s State) {
	c.state.Store(int32(s))
}

func (c *Call) finish(err error) {
	var mbErr *Error
	switch {
	case err == nil:
		c.setState(StateSuccess)
	case errors.As(err, &mbErr) && mbErr.Kind == ErrKindRateLimited:
		c.setState(StateRateLimited)
	default:
		c.setState(StateFailed)
	}
	c.err = err
	close(c.done)
}

// dispatcher decides where a call's wait and round trip run.
type dispatcher interface {
	dispatch(ctx context.Context, call *Call, run func(context.Context, *Call) error)
}

// blockingDispatcher runs the call on the caller's goroutine.
type blockingDispatcher struct{}

func (blockingDispatcher) dispatch(ctx context.Context, call *Call, run func(context.Context, *Call) error) {
	call.finish(run(ctx, call))
}

// asyncDispatcher runs the call on a new goroutine and returns at once.
type asyncDispatcher struct{}

func (asyncDispatcher) dispatch(ctx context.Context, call *Call, run func(context.Context, *Call) error) {
	go func() {
		call.finish(run(ctx, call))
	}()
}
