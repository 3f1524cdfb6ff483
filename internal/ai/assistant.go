// Package ai defines the contract with the external text-generation service
// and the deadline-bounded call wrapper that feeds the deterministic
// fallback path.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Generator produces text for a prompt. Implementations must honor the
// caller's context deadline.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// State classifies the outcome of a generator call.
type State int

const (
	StateOK State = iota
	StateTimedOut
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateOK:
		return "ok"
	case StateTimedOut:
		return "timed_out"
	default:
		return "failed"
	}
}

// Outcome is the typed result of a deadline-bounded generator call. Callers
// dispatch to the deterministic fallback on TimedOut and Failed.
type Outcome struct {
	Text  string
	State State
	Err   error
}

// DefaultTimeout bounds a single generator call.
const DefaultTimeout = 30 * time.Second

// CallWithDeadline runs one generator call under a bounded deadline. The
// call is attempted exactly once; there is no retry. A deadline expiry maps
// to StateTimedOut, any other failure to StateFailed.
func CallWithDeadline(ctx context.Context, gen Generator, prompt string, timeout time.Duration) Outcome {
	if gen == nil {
		return Outcome{State: StateFailed, Err: &ConfigError{Msg: "generator is not configured"}}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := gen.GenerateContent(ctx, prompt)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Outcome{State: StateTimedOut, Err: ctx.Err()}
		}
		return Outcome{State: StateFailed, Err: ctx.Err()}
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return Outcome{State: StateTimedOut, Err: r.err}
			}
			return Outcome{State: StateFailed, Err: &ServiceError{Err: r.err}}
		}
		return Outcome{Text: r.text, State: StateOK}
	}
}

// ConfigError reports a missing credential or unconfigured service. It is
// not retryable and is surfaced verbatim to the caller.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// ServiceError reports a transient external-service failure (timeout, quota,
// outage). When a fallback exists it is logged, not surfaced.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return fmt.Sprintf("ai service: %v", e.Err) }

func (e *ServiceError) Unwrap() error { return e.Err }
