// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofrost/fetchx/request"
)

func testSpec(t *testing.T) *request.Spec {
	t.Helper()
	s, err := request.New("GET", "http://example.com/things").Build()
	require.NoError(t, err)
	return s
}

func TestBefore(t *testing.T) {
	var buf bytes.Buffer
	s := testSpec(t)

	err := Before(zerolog.New(&buf)).Before(s)

	require.NoError(t, err)
	line := buf.String()
	assert.Contains(t, line, `"level":"debug"`)
	assert.Contains(t, line, `"id":"`+s.ID+`"`)
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"target":"http://example.com/things"`)
	assert.Contains(t, line, `"message":"attempt starting"`)
}

func TestAfter(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var buf bytes.Buffer
		s := testSpec(t)
		r := &request.Result{Spec: s, Attempt: 0, StatusCode: 200}

		err := After(zerolog.New(&buf)).After(r)

		require.NoError(t, err)
		line := buf.String()
		assert.Contains(t, line, `"level":"debug"`)
		assert.Contains(t, line, `"id":"`+s.ID+`"`)
		assert.Contains(t, line, `"status":200`)
		assert.Contains(t, line, `"attempt":0`)
		assert.Contains(t, line, `"message":"attempt finished"`)
	})
	t.Run("terminal client error", func(t *testing.T) {
		var buf bytes.Buffer
		r := &request.Result{Spec: testSpec(t), StatusCode: 404}

		err := After(zerolog.New(&buf)).After(r)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"level":"debug"`)
	})
	t.Run("server error", func(t *testing.T) {
		var buf bytes.Buffer
		r := &request.Result{Spec: testSpec(t), Attempt: 2, StatusCode: 503}

		err := After(zerolog.New(&buf)).After(r)

		require.NoError(t, err)
		line := buf.String()
		assert.Contains(t, line, `"level":"warn"`)
		assert.Contains(t, line, `"status":503`)
		assert.Contains(t, line, `"attempt":2`)
	})
	t.Run("transport error", func(t *testing.T) {
		var buf bytes.Buffer
		r := &request.Result{Spec: testSpec(t), Err: errors.New("connection refused")}

		err := After(zerolog.New(&buf)).After(r)

		require.NoError(t, err)
		line := buf.String()
		assert.Contains(t, line, `"level":"warn"`)
		assert.Contains(t, line, `"error":"connection refused"`)
		assert.Contains(t, line, `"status":0`)
	})
}
