// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"net/http"

	"github.com/gofrost/fetchx/request"
)

// Sender is the interface that wraps the basic Send method.
//
// Send executes one request Spec to completion, applying retry policy,
// and returns the final attempt's Result (and error, if any). Client
// implements Sender, and any other implementation must behave
// substantially the same as Client.Send.
type Sender interface {
	Send(ctx context.Context, s *request.Spec) (*request.Result, error)
}

// BatchSender is the interface that wraps the basic DoBatch method.
//
// DoBatch drains a Queue and executes all of its Specs concurrently
// with per-Spec retry triage. Client implements BatchSender, and any
// other implementation must behave substantially the same as
// Client.DoBatch.
type BatchSender interface {
	DoBatch(ctx context.Context, q *Queue) ([]*request.Result, error)
}

// Executor is the interface that groups the Send and DoBatch methods.
type Executor interface {
	Sender
	BatchSender
}

// Get uses the specified Sender to issue a GET to the specified URL,
// with no retries beyond the Sender's policy defaults.
//
// For custom headers, query parameters, hooks, or a retry budget, build
// a Spec with request.New and use s.Send.
func Get(ctx context.Context, s Sender, url string) (*request.Result, error) {
	spec, err := request.New(http.MethodGet, url).Build()
	if err != nil {
		return nil, err
	}
	return s.Send(ctx, spec)
}

// Post uses the specified Sender to issue a POST to the specified URL.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes, namely: string; []byte;
// io.Reader; and io.ReadCloser.
//
// For custom headers, query parameters, hooks, or a retry budget, build
// a Spec with request.New and use s.Send.
func Post(ctx context.Context, s Sender, url, contentType string, body interface{}) (*request.Result, error) {
	spec, err := request.New(http.MethodPost, url).
		Header("Content-Type", contentType).
		Body(body).
		Build()
	if err != nil {
		return nil, err
	}
	return s.Send(ctx, spec)
}

// PostJSON uses the specified Sender to issue a POST to the specified
// URL with the JSON encoding of v as the request body and a
// Content-Type of application/json.
func PostJSON(ctx context.Context, s Sender, url string, v interface{}) (*request.Result, error) {
	spec, err := request.New(http.MethodPost, url).JSON(v).Build()
	if err != nil {
		return nil, err
	}
	return s.Send(ctx, spec)
}

// Get issues a GET to the specified URL, using the same policies
// followed by Send.
func (c *Client) Get(ctx context.Context, url string) (*request.Result, error) {
	return Get(ctx, c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Send.
//
// The body parameter may be any of the types supported by
// request.BodyBytes.
func (c *Client) Post(ctx context.Context, url, contentType string, body interface{}) (*request.Result, error) {
	return Post(ctx, c, url, contentType, body)
}

// PostJSON issues a POST with a JSON body to the specified URL, using
// the same policies followed by Send.
func (c *Client) PostJSON(ctx context.Context, url string, v interface{}) (*request.Result, error) {
	return PostJSON(ctx, c, url, v)
}
