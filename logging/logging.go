// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"github.com/rs/zerolog"

	"github.com/gofrost/fetchx/request"
)

// Before returns a before hook that logs every attempt of a Spec at
// debug level, tagged with the Spec's ID, method, and target.
func Before(l zerolog.Logger) request.BeforeHook {
	return request.BeforeHookFunc(func(s *request.Spec) error {
		l.Debug().
			Str("id", s.ID).
			Str("method", s.Method).
			Str("target", s.Target()).
			Msg("attempt starting")
		return nil
	})
}

// After returns an after hook that logs every attempt result. Accepted
// and terminal 4xx results log at debug level. Rejected results, that
// is transport errors and 5xx statuses, log at warn level with the
// zero-based attempt number so retry churn is visible.
func After(l zerolog.Logger) request.AfterHook {
	return request.AfterHookFunc(func(r *request.Result) error {
		evt := l.Debug()
		if r.Err != nil || r.StatusCode >= 500 {
			evt = l.Warn()
		}
		if r.Err != nil {
			evt = evt.Err(r.Err)
		}
		evt.
			Str("id", r.Spec.ID).
			Int("status", r.StatusCode).
			Int("attempt", r.Attempt).
			Msg("attempt finished")
		return nil
	})
}
