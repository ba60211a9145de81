// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gofrost/fetchx/request"
)

// A Policy controls if and how retries are done during the execution of
// a request Spec. After every attempt the Policy decides whether a
// retry should be done and, if so, how long to wait before the next
// attempt.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
//
// A Policy is composed of the Decider and Waiter interfaces. Use one of
// the built-in policies, DefaultPolicy or Never, or compose your own
// with NewPolicy.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy applies the engine's standard triage: retry on
// transport errors and server error statuses while the Spec's retry
// budget lasts, with no wait between attempts.
var DefaultPolicy Policy = policy{DefaultDecider, DefaultWaiter}

// Never is a policy that never retries, whatever the Spec's budget
// says. It is useful if you want the rest of the client's behavior but
// no retries.
var Never Policy = policy{Times(0), DefaultWaiter}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a retry Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(r *request.Result) bool {
	return p.decider.Decide(r)
}

func (p policy) Wait(r *request.Result) time.Duration {
	return p.waiter.Wait(r)
}
