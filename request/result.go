// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"net/http"
)

// A Result records the outcome of one request attempt: the HTTP status
// and buffered body if a response was received, or the transport error
// if the attempt never produced a response.
//
// A Result is created fresh for every attempt; no attempt ever sees a
// previous attempt's Result. The Result handed to after hooks, and the
// one ultimately returned by the executors, is the one belonging to the
// final attempt made.
//
// Hooks should treat a Result's fields as read-only.
type Result struct {
	// Spec is the request this Result belongs to. It is never nil.
	Spec *Spec

	// Attempt is the zero-based number of the attempt that produced
	// this Result: zero for the initial attempt, one for the first
	// retry, and so on.
	Attempt int

	// Index is the position the Spec held in the batch queue when it
	// was enqueued. Batch output is in arrival order, not enqueue
	// order; Index lets callers that need positional correspondence
	// reorder the output. It is zero outside batch execution.
	Index int

	// StatusCode is the HTTP status of the response, or zero if the
	// attempt ended in a transport error.
	StatusCode int

	// Header contains the response headers, or nil if the attempt
	// ended in a transport error.
	Header http.Header

	// Body is the fully buffered response body. It is nil if the
	// attempt ended in a transport error, and may be non-nil but
	// incomplete if the error occurred while reading the body.
	Body []byte

	// Err is the transport-level error of the attempt, wrapped in a
	// *url.Error. It is nil whenever a complete response was received,
	// regardless of status code.
	Err error
}

// Attempts returns the total number of attempts made up to and
// including the one that produced this Result.
func (r *Result) Attempts() int {
	return r.Attempt + 1
}

// JSON decodes the response body as JSON and returns the decoded value.
// A body that is not well-formed JSON yields nil rather than an error;
// callers that need the decode error should use Unmarshal.
func (r *Result) JSON() interface{} {
	var v interface{}
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil
	}
	return v
}

// Unmarshal decodes the response body as JSON into v.
func (r *Result) Unmarshal(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}
