// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import "fmt"

// An ExhaustedError is returned by Client.Send when every attempt
// allowed by the retry policy was rejected. It carries the Spec's
// configured retry budget for diagnostics.
//
// DoBatch never returns an ExhaustedError: in batch mode a Spec that
// exhausts its budget is finalized as a failing Result instead.
type ExhaustedError struct {
	// Retries is the retry budget the Spec was configured with, i.e.
	// the number of additional attempts that were allowed beyond the
	// first.
	Retries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("fetchx: retry budget of %d exhausted", e.Retries)
}
