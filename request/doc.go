// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request provides the value types the fetchx executors operate
on: the immutable request Spec and its fluent Builder, the per-attempt
Result, and the optional before/after hook capabilities.

Construct a Spec with the Builder:

	spec, err := request.New("GET", "https://api.example.com/items").
		Query("page", "2").
		Retries(3).
		Build()

Hooks attach to the Spec and are invoked once per attempt:

	spec, err := request.New("POST", url).
		JSON(payload).
		Before(request.BeforeHookFunc(func(s *request.Spec) error {
			return sign(s)
		})).
		Build()

A Spec is immutable once built and may be executed by fetchx.Client
either on its own or as part of a batch queue.
*/
package request
