// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logging provides ready-made zerolog request hooks for fetchx.
// Install them on a Spec to trace its attempts:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	spec, err := request.New("GET", url).
//		Before(logging.Before(logger)).
//		After(logging.After(logger)).
//		Build()
package logging
