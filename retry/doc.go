// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry implements the retry triage shared by the fetchx
// executors, as composable Decider (should we retry?) and Waiter (how
// long until the next attempt?) components combined into a Policy.
//
// The default policy retries on transport errors and on server error
// statuses (>= 500) while the request Spec's retry budget lasts, and
// waits zero time between attempts. Anything below 500, including 4xx,
// is terminal.
package retry
