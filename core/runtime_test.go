package core

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// scriptDriver feeds a fixed sequence of events to the runtime. A nil entry
// simulates a poll timeout (the runtime synthesizes a tick). Running off
// the end of the script reports the driver as closed.
type scriptDriver struct {
	events  []Event
	polls   int
	inited  bool
	finied  bool
	applied [][]CellUpdate
}

func (d *scriptDriver) Init() error { d.inited = true; return nil }
func (d *scriptDriver) Fini()       { d.finied = true }

func (d *scriptDriver) Size() (int, int) { return 10, 4 }

func (d *scriptDriver) Poll(time.Duration) (Event, error) {
	if d.polls >= len(d.events) {
		return nil, ErrDriverClosed
	}
	ev := d.events[d.polls]
	d.polls++
	return ev, nil
}

func (d *scriptDriver) Apply(updates []CellUpdate) {
	d.applied = append(d.applied, updates)
}

func (d *scriptDriver) Flush() error { return nil }

type testMsg int

const (
	msgStart testMsg = iota
	msgStepA
	msgStepB
	msgBatchStart
	msgBatchNested
	msgQuit
)

type testApp struct {
	updates []testMsg
	initCmd Command[testMsg]
	text    string
}

func (a *testApp) Init() Command[testMsg] { return a.initCmd }

func (a *testApp) Update(msg testMsg) Command[testMsg] {
	a.updates = append(a.updates, msg)
	switch msg {
	case msgStart:
		return Emit(msgStepA)
	case msgStepA:
		return Emit(msgStepB)
	case msgBatchStart:
		return Batch(Emit(msgStepA), Emit(msgStepB), Emit(msgBatchNested))
	case msgBatchNested:
		return Batch(Emit(msgStepA), Emit(msgQuit))
	case msgQuit:
		return Quit[testMsg]()
	default:
		return None[testMsg]()
	}
}

func (a *testApp) View(f *Frame) {
	f.Print(0, 0, a.text, Style{})
}

func keyFor(msg testMsg) EventMapper[testMsg] {
	return func(ev Event) (testMsg, bool) {
		if _, ok := ev.(KeyEvent); ok {
			return msg, true
		}
		return 0, false
	}
}

func pressQ() Event {
	return KeyEvent{Key: tcell.KeyRune, Rune: 'q'}
}

func TestRunDrainsEmitChainFIFO(t *testing.T) {
	app := &testApp{}
	driver := &scriptDriver{events: []Event{pressQ(), pressQ()}}

	mapper := func(ev Event) (testMsg, bool) {
		if _, ok := ev.(KeyEvent); !ok {
			return 0, false
		}
		if driver.polls == 1 {
			return msgStart, true
		}
		return msgQuit, true
	}

	if err := Run(app, mapper, WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []testMsg{msgStart, msgStepA, msgStepB, msgQuit}
	if len(app.updates) != len(want) {
		t.Fatalf("updates = %v, want %v", app.updates, want)
	}
	for i := range want {
		if app.updates[i] != want[i] {
			t.Fatalf("updates = %v, want %v", app.updates, want)
		}
	}
}

func TestRunBatchKeepsFIFOOrderAndQuits(t *testing.T) {
	app := &testApp{}
	driver := &scriptDriver{events: []Event{pressQ()}}

	if err := Run(app, keyFor(msgBatchStart), WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []testMsg{msgBatchStart, msgStepA, msgStepB, msgBatchNested, msgStepB, msgStepA, msgQuit}
	if len(app.updates) != len(want) {
		t.Fatalf("updates = %v, want %v", app.updates, want)
	}
	for i := range want {
		if app.updates[i] != want[i] {
			t.Fatalf("updates = %v, want %v", app.updates, want)
		}
	}
}

func TestRunStopsPollingAfterQuit(t *testing.T) {
	app := &testApp{}
	driver := &scriptDriver{events: []Event{pressQ(), pressQ(), pressQ()}}

	if err := Run(app, keyFor(msgQuit), WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if driver.polls != 1 {
		t.Fatalf("polled %d times after quit, want 1", driver.polls)
	}
	if !driver.finied {
		t.Fatal("driver must be finalized on exit")
	}
}

func TestRunReleasesDriverOnError(t *testing.T) {
	app := &testApp{}
	driver := &scriptDriver{} // empty script: first poll errors

	err := Run(app, keyFor(msgQuit), WithDriver[testMsg](driver))
	if err != ErrDriverClosed {
		t.Fatalf("expected driver error to propagate, got %v", err)
	}
	if !driver.finied {
		t.Fatal("driver must be finalized on the error path")
	}
}

func TestRunIgnoresUnmappedEventsEntirely(t *testing.T) {
	app := &testApp{}
	// Two timeouts (ticks) the mapper refuses, then a quit key.
	driver := &scriptDriver{events: []Event{nil, nil, pressQ()}}

	if err := Run(app, keyFor(msgQuit), WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(app.updates) != 1 || app.updates[0] != msgQuit {
		t.Fatalf("ticks should not reach update: %v", app.updates)
	}
	// Initial render only; skipped cycles must not redraw.
	if len(driver.applied) != 1 {
		t.Fatalf("expected 1 render, got %d", len(driver.applied))
	}
}

func TestRunMapsTickEvents(t *testing.T) {
	app := &testApp{}
	driver := &scriptDriver{events: []Event{nil, pressQ()}}

	mapper := func(ev Event) (testMsg, bool) {
		switch ev.(type) {
		case TickEvent:
			return msgStepB, true
		case KeyEvent:
			return msgQuit, true
		}
		return 0, false
	}

	if err := Run(app, mapper, WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(app.updates) != 2 || app.updates[0] != msgStepB {
		t.Fatalf("synthesized tick not delivered: %v", app.updates)
	}
}

func TestRunRendersAfterUnmappedResize(t *testing.T) {
	app := &testApp{text: "hello"}
	driver := &scriptDriver{events: []Event{ResizeEvent{W: 6, H: 2}, pressQ()}}

	if err := Run(app, keyFor(msgQuit), WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(driver.applied) != 2 {
		t.Fatalf("expected initial render + resize repaint, got %d", len(driver.applied))
	}
	// The resize repaint is a full frame at the new size.
	if len(driver.applied[1]) != 6*2 {
		t.Fatalf("resize repaint has %d cells, want %d", len(driver.applied[1]), 12)
	}
}

func TestInitCommandSeedsMessagesBeforeFirstRender(t *testing.T) {
	app := &testApp{initCmd: Emit(msgStart)}
	driver := &scriptDriver{events: []Event{pressQ()}}

	if err := Run(app, keyFor(msgQuit), WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(app.updates) < 3 || app.updates[0] != msgStart {
		t.Fatalf("init chain not drained first: %v", app.updates)
	}
}

func TestInitQuitSkipsLoop(t *testing.T) {
	app := &testApp{initCmd: Quit[testMsg]()}
	driver := &scriptDriver{events: []Event{pressQ()}}

	if err := Run(app, keyFor(msgQuit), WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if driver.polls != 0 {
		t.Fatal("loop must not poll after init quit")
	}
	if !driver.finied {
		t.Fatal("driver must still be released")
	}
}

func TestRunKeysIgnoresNonKeyEvents(t *testing.T) {
	app := &testApp{}
	driver := &scriptDriver{events: []Event{nil, ResizeEvent{W: 3, H: 1}, pressQ()}}

	mapKey := func(KeyEvent) (testMsg, bool) { return msgQuit, true }
	if err := RunKeys(app, mapKey, WithDriver[testMsg](driver)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(app.updates) != 1 || app.updates[0] != msgQuit {
		t.Fatalf("non-key events leaked into update: %v", app.updates)
	}
}
