// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"github.com/gofrost/fetchx/request"
)

// A Decider decides if a failed attempt should be retried.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in deciders Budget and ServerErr and the constructors
// Times and StatusCode, or implement your own. Use DeciderFunc to
// convert an ordinary function into a Decider and to compose deciders
// logically via DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(r *request.Result) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface and
// provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(r *request.Result) bool

// DefaultDecider is the engine's triage rule: retry while the Spec's
// retry budget is not exhausted and the attempt was rejected, meaning
// it ended in a transport error or in a server error status (>= 500).
// Any status below 500, including 4xx, is terminal.
var DefaultDecider = Budget.And(ServerErr)

// ServerErr is a decider that indicates a retry if the attempt was
// rejected: either no response was received (a transport error), or the
// response status is 500 or above. Transport errors are deliberately
// triaged like server errors so that both executors treat them the same
// way.
var ServerErr DeciderFunc = serverErr

// Budget is a decider that allows retries while the attempt count is
// within the Spec's retry budget: it returns true while fewer than
// Spec.Retries additional attempts have been made.
var Budget DeciderFunc = budget

// Decide returns true if a retry should be done, and false otherwise,
// after examining the result of the most recent attempt.
func (f DeciderFunc) Decide(r *request.Result) bool {
	return f(r)
}

// And composes two retry deciders into a new decider which returns true
// if both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(r *request.Result) bool {
		return f(r) && g(r)
	}
}

// Or composes two retry deciders into a new decider which returns
// true if either of the two sub-deciders returns true, but false if
// they both return false.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(r *request.Result) bool {
		return f(r) || g(r)
	}
}

// Times constructs a retry decider which allows up to n retries
// regardless of the Spec's own budget. The returned decider returns
// true while the zero-based attempt number is less than n.
func Times(n int) DeciderFunc {
	return func(r *request.Result) bool {
		return r.Attempt < n
	}
}

// StatusCode constructs a retry decider allowing retries based on the
// HTTP response status code: it returns true if the most recent attempt
// received a response whose status is contained in ss.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(r *request.Result) bool {
		for _, s := range ss2 {
			if r.StatusCode == s {
				return true
			}
		}
		return false
	}
}

// Accept reports whether a result is accepted by the engine's success
// policy: the attempt produced a response (no transport error) with a
// status below 500. Both executors finalize accepted results
// immediately.
func Accept(r *request.Result) bool {
	return !serverErr(r)
}

func serverErr(r *request.Result) bool {
	return r.Err != nil || r.StatusCode >= 500
}

func budget(r *request.Result) bool {
	return r.Attempt < r.Spec.Retries
}
