// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"sync"

	"github.com/gofrost/fetchx/request"
)

// A Queue accumulates request Specs for a batch run. The zero value is
// an empty queue ready for use.
//
// A Queue is owned by a single caller: it must not be mutated while a
// DoBatch call is draining it. A Spec may be enqueued into at most one
// in-flight Queue at a time.
type Queue struct {
	specs []*request.Spec
}

// Add appends a Spec to the queue. The Spec keeps the position it is
// enqueued at; its eventual Result carries that position as Index.
func (q *Queue) Add(s *request.Spec) {
	if s == nil {
		panic("fetchx: nil spec")
	}
	q.specs = append(q.specs, s)
}

// Len returns the number of Specs currently enqueued.
func (q *Queue) Len() int {
	return len(q.specs)
}

// drain empties the queue and transfers ownership of its contents to
// the caller.
func (q *Queue) drain() []*request.Spec {
	specs := q.specs
	q.specs = nil
	return specs
}

// entry pairs a pending Spec with its attempt record for the duration
// of one batch run. The attempt counter lives here, never on the Spec,
// and is only ever touched by the coordinating goroutine between
// rounds, so no two concurrent calls mutate the same record.
type entry struct {
	spec    *request.Spec
	index   int
	attempt int
	res     *request.Result
}

// DoBatch drains the queue and executes all of its Specs, retrying
// rejected ones independently, until every Spec has been finalized.
//
// Execution proceeds in rounds. Each round runs the before hook of
// every pending Spec, then performs all of the round's transport calls
// concurrently over a pool of at most Concurrency workers, and joins
// before evaluating any outcome: no call ever spans rounds. After the
// barrier, each after hook runs and the result is triaged: a Spec is
// re-queued into the next round if its attempt was rejected (transport
// error or status >= 500) and its retry budget is not yet exhausted;
// otherwise its Result joins the output. The rounds repeat until no
// Spec remains pending.
//
// Unlike Send, DoBatch does not report budget exhaustion as an error: a
// Spec whose attempts are all rejected contributes its final failing
// Result to the output. Examine each Result's StatusCode and Err to
// classify it.
//
// The returned slice is in arrival order (round-completion order,
// flattened across rounds), not enqueue order. Every Result carries the
// Index its Spec was enqueued at, so callers needing positional
// correspondence can reorder.
//
// A non-nil error from any hook aborts the batch immediately and is
// returned unmodified; the queue is left drained and no results are
// returned. Running DoBatch on an empty (or nil) queue performs zero
// rounds and returns an empty output.
func (c *Client) DoBatch(ctx context.Context, q *Queue) ([]*request.Result, error) {
	if q == nil {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	doer := c.doer()
	policy := c.retryPolicy()

	specs := q.drain()
	pending := make([]*entry, len(specs))
	for i, s := range specs {
		pending[i] = &entry{spec: s, index: i}
	}

	var out []*request.Result
	for len(pending) > 0 {
		for _, en := range pending {
			if err := en.spec.Hooks.RunBefore(en.spec); err != nil {
				return nil, err
			}
		}

		c.runRound(ctx, doer, pending)

		var next []*entry
		for _, en := range pending {
			if err := en.spec.Hooks.RunAfter(en.res); err != nil {
				return nil, err
			}
			if policy.Decide(en.res) {
				en.attempt++
				en.res = nil
				next = append(next, en)
			} else {
				out = append(out, en.res)
			}
		}
		pending = next
	}
	return out, nil
}

// runRound performs every pending transport call of one round
// concurrently and returns only when all of them have completed. The
// WaitGroup join is the round barrier; the coordinating goroutine
// sleeps in it rather than polling.
func (c *Client) runRound(ctx context.Context, doer HTTPDoer, round []*entry) {
	workers := c.concurrency()
	if workers > len(round) {
		workers = len(round)
	}

	jobs := make(chan *entry)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for en := range jobs {
				res := &request.Result{
					Spec:    en.spec,
					Attempt: en.attempt,
					Index:   en.index,
				}
				sendAndReceive(doer, en.spec.NewRequest(ctx), en.spec, res)
				en.res = res
			}
		}()
	}

	for _, en := range round {
		jobs <- en
	}
	close(jobs)
	wg.Wait()
}
