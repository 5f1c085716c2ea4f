// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import "time"

// NewFixed constructs a Strategy that emits the given duration on every
// call, forever. The sequence is infinite; bound it externally, for
// example with Limit or with a retry session time budget, if the
// session must terminate on persistent failure.
//
// The duration may be zero, producing immediate retries. NewFixed
// panics if d is negative.
func NewFixed(d time.Duration) Strategy {
	if d < 0 {
		panic("backoff: fixed delay must not be negative")
	}
	return fixed(d)
}

type fixed time.Duration

func (f fixed) Next() (time.Duration, bool) {
	return time.Duration(f), true
}
