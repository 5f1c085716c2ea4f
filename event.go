// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Retry to observe the progress
// of its sessions, for example to emit logs or metrics. The retry loop
// itself emits nothing.
type Event int

const (
	// BeforeSessionStart identifies the event that occurs before the
	// session's first attempt.
	//
	// When BeforeSessionStart fires, the session's start time is set
	// but no attempt has been made: the attempt number is zero and the
	// error is nil.
	BeforeSessionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual attempt.
	//
	// When BeforeAttempt fires, the session's attempt number has been
	// incremented to the attempt that is about to run.
	BeforeAttempt
	// AfterAttempt identifies the event that occurs after each
	// individual attempt, regardless of whether it succeeded.
	//
	// When AfterAttempt fires, the session's error field holds the
	// attempt's error, or nil if the attempt succeeded. AfterAttempt
	// fires before the retry condition, delay strategy, or time budget
	// are consulted.
	AfterAttempt
	// BeforeWait identifies the event that occurs after the session
	// has committed to another attempt, immediately before suspending
	// for the delay.
	//
	// When BeforeWait fires, the session's wait field holds the delay
	// about to be taken and its error field holds the error that
	// caused the retry.
	BeforeWait
	// AfterSessionEnd identifies the event that occurs after the
	// session resolves, whether to success or to terminal failure.
	//
	// When AfterSessionEnd fires, the session's end time is set and
	// its error field holds the error the session resolves with: nil
	// on success, and the last observed attempt error otherwise. If
	// the session was canceled mid-wait, the error field still holds
	// the last attempt error even though the session resolves with the
	// context's error.
	AfterSessionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeSessionStart",
	"BeforeAttempt",
	"AfterAttempt",
	"BeforeWait",
	"AfterSessionEnd",
}

// Events returns a slice containing all events which can occur during
// a retry session, in the order in which they would first occur.
func Events() []Event {
	return []Event{
		BeforeSessionStart,
		BeforeAttempt,
		AfterAttempt,
		BeforeWait,
		AfterSessionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
