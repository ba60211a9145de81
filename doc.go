// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetchx provides a fluent HTTP client with per-request retry
budgets and concurrent batch execution with independent retry triage.

Create a Client to begin making requests. Its zero value works out of
the box:

	client := &fetchx.Client{}
	res, err := client.Get(ctx, "https://www.example.com")
	...
	res, err := client.PostJSON(ctx, "https://www.example.com/items",
		map[string]string{"name": "widget"})

For anything beyond the convenience methods, build a request Spec
fluently with package request and send it:

	spec, err := request.New("GET", "https://api.example.com/items").
		Header("Authorization", "Bearer "+token).
		Query("page", "2").
		Retries(3).
		Build()
	...
	res, err := client.Send(ctx, spec)

Send retries rejected attempts (transport errors and 5xx statuses)
sequentially until the Spec's budget runs out, then returns the final
Result together with an *ExhaustedError. A status below 500, including
4xx, is terminal and returned immediately.

To execute many Specs concurrently, accumulate them in a Queue and run
them as a batch:

	var q fetchx.Queue
	q.Add(spec1)
	q.Add(spec2)
	results, err := client.DoBatch(ctx, &q)

DoBatch runs all pending Specs in concurrent rounds and re-queues only
the rejected ones, each with its own attempt count, until every Spec is
finalized. Budget exhaustion is not an error in batch mode: the final
failing Result is returned alongside the successful ones. Output is in
arrival order; each Result's Index field records its enqueue position.

Hooks installed on a Spec observe and extend execution: the before hook
runs ahead of every attempt and the after hook runs once per attempt
result. Hook errors abort the execution and propagate. Package logging
provides ready-made zerolog hooks.

For control over retry decisions and timing, compose a custom policy
from package retry:

	client := &fetchx.Client{
		RetryPolicy: retry.NewPolicy(
			retry.Budget.And(retry.ServerErr.Or(retry.StatusCode(429))),
			retry.NewExpWaiter(50*time.Millisecond, time.Second, time.Now()),
		),
	}

Mechanics of the individual HTTP exchange, such as redirects, connection
pooling, TLS, and timeouts, belong to the HTTPDoer, which defaults to
http.DefaultClient and can be any implementation of the standard
http.Client Do contract.
*/
package fetchx
