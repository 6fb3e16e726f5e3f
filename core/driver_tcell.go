// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/driver_tcell.go
// Summary: tcell-backed implementation of the Driver contract.

package core

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellDriver adapts a tcell.Screen to the Driver contract. tcell owns raw
// mode and the alternate screen between Init and Fini; an internal pump
// goroutine feeds events into a channel so Poll can time out.
type TcellDriver struct {
	screen    tcell.Screen
	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once

	// tcell style construction is not free; identical styles repeat on
	// almost every cell, so translations are cached.
	styles map[Style]tcell.Style
}

// NewTcellDriver allocates a driver on the process terminal.
func NewTcellDriver() (*TcellDriver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellDriverFor(screen), nil
}

// NewTcellDriverFor wraps an existing screen, e.g. a tcell simulation
// screen in tests.
func NewTcellDriverFor(screen tcell.Screen) *TcellDriver {
	return &TcellDriver{
		screen: screen,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
		styles: make(map[Style]tcell.Style),
	}
}

func (d *TcellDriver) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))
	d.screen.HideCursor()

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(d.events)
				return
			}
			select {
			case d.events <- ev:
			case <-d.done:
				return
			}
		}
	}()
	return nil
}

func (d *TcellDriver) Fini() {
	d.closeOnce.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDriver) Poll(timeout time.Duration) (Event, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		select {
		case raw, ok := <-d.events:
			if !ok {
				return nil, ErrDriverClosed
			}
			if ev := translateEvent(raw); ev != nil {
				return ev, nil
			}
		case <-deadline.C:
			return nil, nil
		}
	}
}

func (d *TcellDriver) Apply(updates []CellUpdate) {
	for _, u := range updates {
		if u.Cell.Rune == 0 {
			// Continuation column of a wide glyph; tcell occupies it
			// itself when the leading rune is set.
			continue
		}
		d.screen.SetContent(u.X, u.Y, u.Cell.Rune, nil, d.tcellStyle(u.Cell.Style))
	}
}

func (d *TcellDriver) Flush() error {
	d.screen.Show()
	return nil
}

func (d *TcellDriver) tcellStyle(style Style) tcell.Style {
	if cached, ok := d.styles[style]; ok {
		return cached
	}
	out := tcell.StyleDefault.
		Foreground(tcellColor(style.Fg)).
		Background(tcellColor(style.Bg)).
		Bold(style.Attrs.Has(AttrBold)).
		Dim(style.Attrs.Has(AttrDim)).
		Italic(style.Attrs.Has(AttrItalic)).
		Underline(style.Attrs.Has(AttrUnderline)).
		Reverse(style.Attrs.Has(AttrReverse)).
		Blink(style.Attrs.Has(AttrBlink))
	d.styles[style] = out
	return out
}

func tcellColor(c Color) tcell.Color {
	switch c.Kind {
	case ColorANSI:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorReset
	}
}

func translateEvent(raw tcell.Event) Event {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		return KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent{W: w, H: h}
	default:
		return nil
	}
}
