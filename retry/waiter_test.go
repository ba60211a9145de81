// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gofrost/fetchx/request"
)

func TestDefaultWaiter(t *testing.T) {
	t.Parallel()
	r := result(&request.Spec{Retries: 3}, 0, 500, nil)
	assert.Equal(t, time.Duration(0), DefaultWaiter.Wait(r))
}

func TestFixedWaiter(t *testing.T) {
	t.Parallel()
	w := NewFixedWaiter(250 * time.Millisecond)
	for attempt := 0; attempt < 4; attempt++ {
		r := result(&request.Spec{}, attempt, 500, nil)
		assert.Equal(t, 250*time.Millisecond, w.Wait(r))
	}
}

func TestExpWaiterPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewExpWaiter(0, time.Second, nil) })
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Millisecond, nil) })
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Second, "seed") })
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Second, (*rand.Rand)(nil)) })
}

func TestExpWaiterNoJitter(t *testing.T) {
	t.Parallel()
	w := NewExpWaiter(100*time.Millisecond, time.Second, nil)
	s := &request.Spec{}
	assert.Equal(t, 100*time.Millisecond, w.Wait(result(s, 0, 500, nil)))
	assert.Equal(t, 200*time.Millisecond, w.Wait(result(s, 1, 500, nil)))
	assert.Equal(t, 400*time.Millisecond, w.Wait(result(s, 2, 500, nil)))
	assert.Equal(t, 800*time.Millisecond, w.Wait(result(s, 3, 500, nil)))
	// Capped at max from here on, including overflow-prone attempts.
	assert.Equal(t, time.Second, w.Wait(result(s, 4, 500, nil)))
	assert.Equal(t, time.Second, w.Wait(result(s, 63, 500, nil)))
	assert.Equal(t, time.Second, w.Wait(result(s, 200, 500, nil)))
}

func TestExpWaiterJitter(t *testing.T) {
	t.Parallel()
	seeds := []interface{}{
		time.Now(),
		12345,
		int64(67890),
		rand.NewSource(1),
		rand.New(rand.NewSource(2)),
	}
	for _, seed := range seeds {
		w := NewExpWaiter(50*time.Millisecond, time.Second, seed)
		for attempt := 0; attempt < 10; attempt++ {
			d := w.Wait(result(&request.Spec{}, attempt, 500, nil))
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.Less(t, d, time.Second)
		}
	}
}
