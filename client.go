// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/gofrost/fetchx/request"
	"github.com/gofrost/fetchx/retry"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the Go
	// standard library http.Client from the net/http package. It must
	// be safe for concurrent use, as batch execution issues many
	// outstanding calls through the same HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

// A Client executes request Specs with retry support, one at a time via
// Send or concurrently via DoBatch. Its zero value is a valid
// configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, retry.DefaultPolicy as the retry policy, and a batch
// concurrency of GOMAXPROCS.
//
// Client's HTTPDoer typically has internal state (cached TCP
// connections), so Client instances should be reused instead of created
// as needed. Client is safe for concurrent use by multiple goroutines,
// with the exception that a Queue may only be driven by one DoBatch
// call at a time.
//
// A Client is higher-level than an HTTPDoer. The HTTPDoer is
// responsible for all details of sending one HTTP request and receiving
// its response (redirects, connection reuse, TLS); Client layers the
// retry engine, hook invocation, and batch multiplexing on top. The
// engine deliberately owns no timeout or cancellation behavior: set
// timeouts on the HTTPDoer, or attach a context to the outgoing
// requests through Send/DoBatch, whose deadline the HTTPDoer enforces.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer

	// RetryPolicy decides when rejected attempts are retried and how
	// long to wait before retrying.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used: retry on
	// transport errors and 5xx statuses while the Spec's budget lasts,
	// with no wait between attempts.
	RetryPolicy retry.Policy

	// Concurrency bounds the number of in-flight requests during one
	// batch round. If Concurrency is zero or negative, GOMAXPROCS is
	// used.
	Concurrency int
}

// Send executes one request Spec to completion, applying the retry
// policy, and returns the Result of the final attempt.
//
// Attempts run sequentially on the calling goroutine. Each attempt
// invokes the Spec's before hook, performs the transport call, and then
// invokes the Spec's after hook, exactly once per attempt, whatever
// the outcome. An attempt is accepted if the transport call reported no
// error and the response status is below 500; any status below 500,
// including 4xx, is a terminal success from the engine's perspective.
// Acceptance returns the Result immediately with a nil error.
//
// If every attempt allowed by the retry policy is rejected, Send
// returns the final attempt's Result together with an *ExhaustedError
// carrying the Spec's retry budget. A non-nil error from a hook aborts
// the execution and is returned unmodified, with a nil Result.
//
// The context is attached to each outgoing http.Request; the engine
// itself imposes no deadline.
func (c *Client) Send(ctx context.Context, s *request.Spec) (*request.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	doer := c.doer()
	policy := c.retryPolicy()

	for attempt := 0; ; attempt++ {
		res := &request.Result{Spec: s, Attempt: attempt}
		if err := s.Hooks.RunBefore(s); err != nil {
			return nil, err
		}
		sendAndReceive(doer, s.NewRequest(ctx), s, res)
		if err := s.Hooks.RunAfter(res); err != nil {
			return nil, err
		}
		if policy.Decide(res) {
			if wait := policy.Wait(res); wait > 0 {
				time.Sleep(wait)
			}
			continue
		}
		if retry.Accept(res) {
			return res, nil
		}
		return res, &ExhaustedError{Retries: s.Retries}
	}
}

// sendAndReceive performs one transport call and records its outcome on
// res. A transport error, including a failure while reading the body,
// leaves res.Err set; otherwise the status, headers, and fully buffered
// body are recorded.
func sendAndReceive(doer HTTPDoer, r *http.Request, s *request.Spec, res *request.Result) {
	resp, err := doer.Do(r)
	if err != nil {
		res.Err = urlErrorWrap(s, err)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	res.StatusCode = resp.StatusCode
	res.Header = resp.Header
	res.Body, err = io.ReadAll(resp.Body)
	if err != nil {
		res.Err = urlErrorWrap(s, err)
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Client) retryPolicy() retry.Policy {
	if c.RetryPolicy == nil {
		return retry.DefaultPolicy
	}
	return c.RetryPolicy
}

func (c *Client) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func urlErrorWrap(s *request.Spec, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(s.Method),
		URL: s.Target(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
