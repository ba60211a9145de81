// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A BeforeHook is invoked before every attempt of a Spec, with the Spec
// as argument. A non-nil error aborts the attempt (and, in batch mode,
// the round it belongs to) and propagates to the executor's caller.
type BeforeHook interface {
	Before(s *Spec) error
}

// The BeforeHookFunc type is an adapter to allow the use of ordinary
// functions as before hooks.
type BeforeHookFunc func(s *Spec) error

// Before calls f(s).
func (f BeforeHookFunc) Before(s *Spec) error {
	return f(s)
}

// An AfterHook is invoked after every attempt of a Spec, with the
// attempt's Result as argument. It runs exactly once per attempt,
// whether or not the attempt was accepted. A non-nil error aborts the
// execution and propagates to the executor's caller.
type AfterHook interface {
	After(r *Result) error
}

// The AfterHookFunc type is an adapter to allow the use of ordinary
// functions as after hooks.
type AfterHookFunc func(r *Result) error

// After calls f(r).
func (f AfterHookFunc) After(r *Result) error {
	return f(r)
}

// Hooks bundles the optional before/after callbacks of a Spec and takes
// care of invoking them. The zero value has no hooks installed.
type Hooks struct {
	Before BeforeHook
	After  AfterHook
}

// RunBefore invokes the before hook, if any. Hook errors are returned
// unmodified, never suppressed.
func (h Hooks) RunBefore(s *Spec) error {
	if h.Before == nil {
		return nil
	}
	return h.Before.Before(s)
}

// RunAfter invokes the after hook, if any. Hook errors are returned
// unmodified, never suppressed.
func (h Hooks) RunAfter(r *Result) error {
	if h.After == nil {
		return nil
	}
	return h.After.After(r)
}
