// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/runtime.go
// Summary: The single-threaded update/render loop. Events become messages
// through a user-supplied mapper, messages drain FIFO through Update, and
// only the frame diff reaches the driver.

package core

import "time"

// DefaultTick is the interval after which a TickEvent is synthesized when
// no terminal event arrives.
const DefaultTick = 250 * time.Millisecond

// EventMapper turns a runtime event into an application message. Returning
// false ignores the event: no update runs and nothing is redrawn.
type EventMapper[Msg any] func(Event) (Msg, bool)

// Option configures a Runtime.
type Option[Msg any] func(*runtimeConfig)

type runtimeConfig struct {
	driver Driver
	tick   time.Duration
}

// WithDriver replaces the default tcell driver, e.g. with a simulation
// driver in tests.
func WithDriver[Msg any](d Driver) Option[Msg] {
	return func(c *runtimeConfig) { c.driver = d }
}

// WithTick sets the tick interval. Values <= 0 fall back to DefaultTick.
func WithTick[Msg any](d time.Duration) Option[Msg] {
	return func(c *runtimeConfig) { c.tick = d }
}

// Runtime drives one application. Everything runs on the calling goroutine;
// the only suspension point is the driver's bounded wait for an event.
type Runtime[Msg any] struct {
	app    App[Msg]
	mapper EventMapper[Msg]
	driver Driver
	tick   time.Duration

	width, height int
	prev          *Frame
	quitting      bool
}

// New builds a runtime for app. The mapper decides which events reach
// Update; a nil mapper ignores every event, leaving only Init-seeded
// behavior.
func New[Msg any](app App[Msg], mapper EventMapper[Msg], opts ...Option[Msg]) *Runtime[Msg] {
	cfg := runtimeConfig{tick: DefaultTick}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tick <= 0 {
		cfg.tick = DefaultTick
	}
	return &Runtime[Msg]{
		app:    app,
		mapper: mapper,
		driver: cfg.driver,
		tick:   cfg.tick,
	}
}

// Run executes the loop until a Quit command is observed or the driver
// fails. The terminal is acquired before the first event and released on
// every exit path, normal, erroring, or panicking.
func (r *Runtime[Msg]) Run() error {
	if r.driver == nil {
		d, err := NewTcellDriver()
		if err != nil {
			return err
		}
		r.driver = d
	}
	if err := r.driver.Init(); err != nil {
		return err
	}
	defer r.driver.Fini()

	r.width, r.height = r.driver.Size()

	if r.runSeed(r.app.Init()) {
		return nil
	}
	if err := r.render(); err != nil {
		return err
	}

	for {
		ev, err := r.driver.Poll(r.tick)
		if err != nil {
			return err
		}
		if ev == nil {
			ev = TickEvent{}
		}

		resized := false
		if rz, ok := ev.(ResizeEvent); ok {
			r.width, r.height = rz.W, rz.H
			r.prev = nil // force a full repaint
			resized = true
		}

		msg, mapped := r.mapEvent(ev)
		if !mapped {
			if resized {
				if err := r.render(); err != nil {
					return err
				}
			}
			continue
		}
		if r.cycle(msg) {
			return nil
		}
		if err := r.render(); err != nil {
			return err
		}
	}
}

func (r *Runtime[Msg]) mapEvent(ev Event) (Msg, bool) {
	if r.mapper == nil {
		var zero Msg
		return zero, false
	}
	return r.mapper(ev)
}

// cycle drains one message cycle: the seed message runs through Update, its
// command is flattened and executed against the FIFO queue, and follow-up
// messages repeat the process. Returns true once Quit is observed; no
// further ops execute and no further messages pop.
//
// There is no built-in bound: an Update that always re-emits keeps the
// cycle running and starves rendering. Terminating is the application's
// responsibility.
func (r *Runtime[Msg]) cycle(seed Msg) bool {
	return r.drain([]Msg{seed})
}

// runSeed executes an Init command and drains any messages it emitted.
func (r *Runtime[Msg]) runSeed(cmd Command[Msg]) bool {
	var queue []Msg
	if r.exec(cmd, &queue) {
		r.quitting = true
		return true
	}
	return r.drain(queue)
}

func (r *Runtime[Msg]) drain(queue []Msg) bool {
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if r.exec(r.app.Update(msg), &queue) {
			r.quitting = true
			return true
		}
	}
	return false
}

func (r *Runtime[Msg]) exec(cmd Command[Msg], queue *[]Msg) bool {
	for _, op := range Flatten(cmd) {
		switch op.Kind {
		case OpEmit:
			*queue = append(*queue, op.Msg)
		case OpQuit:
			return true
		}
	}
	return false
}

// render paints a fresh frame through View and pushes only the diff against
// the previous frame to the driver.
func (r *Runtime[Msg]) render() error {
	cur := NewFrame(r.width, r.height)
	r.app.View(cur)
	updates := cur.Diff(r.prev)
	if len(updates) > 0 {
		r.driver.Apply(updates)
		if err := r.driver.Flush(); err != nil {
			return err
		}
	}
	r.prev = cur
	return nil
}

// Run builds and runs a runtime in one call.
func Run[Msg any](app App[Msg], mapper EventMapper[Msg], opts ...Option[Msg]) error {
	return New(app, mapper, opts...).Run()
}

// RunKeys is the compatibility entry point: only key events are mapped to
// messages, resizes still trigger a repaint, everything else is ignored.
func RunKeys[Msg any](app App[Msg], mapKey func(KeyEvent) (Msg, bool), opts ...Option[Msg]) error {
	mapper := func(ev Event) (Msg, bool) {
		if key, ok := ev.(KeyEvent); ok {
			return mapKey(key)
		}
		var zero Msg
		return zero, false
	}
	return New(app, mapper, opts...).Run()
}
