// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

// A HandlerGroup is a group of event handler chains which can be
// installed in a Retry.
//
// Install handlers before running the Retry; a HandlerGroup must not
// be modified while a session that uses it is in flight.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("retry: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, s *Session) {
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, s)
		}
	}
}

// A Handler handles the occurrence of an event during a retry session.
//
// Handlers observe; they must not be relied on for the correctness of
// the session, and they must not modify the session they receive.
type Handler interface {
	Handle(Event, *Session)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Session)

// Handle calls f(evt, s).
func (f HandlerFunc) Handle(evt Event, s *Session) {
	f(evt, s)
}
