// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import "time"

// A Session represents the state of a single run of a retry loop. A
// fresh Session is created each time a Retry is run, and is discarded
// when the run resolves to success or terminal failure.
//
// Sessions exist so that event handlers installed on the Retry can
// observe the progress of the loop. Handlers receive the Session by
// pointer and may read any field; they should not modify it.
//
// A Session is exclusively owned by its retry loop and is not safe for
// concurrent use.
type Session struct {
	// Attempt is the 1-based number of the current attempt. It is zero
	// before the first attempt starts.
	Attempt int
	// Start is the time the session started, before the first attempt.
	Start time.Time
	// End is the time the session ended. It is the zero time until the
	// session resolves.
	End time.Time
	// Err is the error from the most recent attempt. It is nil before
	// the first attempt finishes, and nil after a successful attempt.
	Err error
	// Wait is the delay preceding the next attempt. It is set just
	// before the BeforeWait event fires, and is otherwise zero.
	Wait time.Duration
}

// Duration returns the elapsed wall-clock time of the session. While
// the session is running it measures from the start time to now; once
// the session has ended it measures to the end time.
func (s *Session) Duration() time.Duration {
	if s.End.IsZero() {
		return time.Since(s.Start)
	}
	return s.End.Sub(s.Start)
}
