// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/logbook/main.go
// Summary: Persistent note taker. Type a note, Enter saves it to SQLite,
// the list above shows what came before.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelkit/core"
	"github.com/framegrace/texelkit/layout"
	"github.com/framegrace/texelkit/widgets"
)

const historyLimit = 500

type bookMsg struct {
	key  core.KeyEvent
	quit bool
}

type logbook struct {
	store *Store

	entries  []Entry
	selected int
	offset   int

	value  string
	cursor int
	status string
}

func newLogbook(store *Store) (*logbook, error) {
	entries, err := store.Recent(historyLimit)
	if err != nil {
		return nil, err
	}
	return &logbook{store: store, entries: entries}, nil
}

func (b *logbook) Init() core.Command[bookMsg] {
	return core.None[bookMsg]()
}

func (b *logbook) Update(m bookMsg) core.Command[bookMsg] {
	if m.quit {
		return core.Quit[bookMsg]()
	}
	b.status = ""

	switch m.key.Key {
	case tcell.KeyEnter:
		b.save()
	case tcell.KeyUp:
		if b.selected > 0 {
			b.selected--
		}
	case tcell.KeyDown:
		if b.selected < len(b.entries)-1 {
			b.selected++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.edit(widgets.Edit{Kind: widgets.EditBackspace})
	case tcell.KeyDelete:
		b.edit(widgets.Edit{Kind: widgets.EditDelete})
	case tcell.KeyLeft:
		b.edit(widgets.Edit{Kind: widgets.EditLeft})
	case tcell.KeyRight:
		b.edit(widgets.Edit{Kind: widgets.EditRight})
	case tcell.KeyHome:
		b.edit(widgets.Edit{Kind: widgets.EditHome})
	case tcell.KeyEnd:
		b.edit(widgets.Edit{Kind: widgets.EditEnd})
	case tcell.KeyRune:
		b.edit(widgets.InsertRune(m.key.Rune))
	}
	return core.None[bookMsg]()
}

func (b *logbook) edit(e widgets.Edit) {
	b.value, b.cursor = widgets.ApplyEdit(b.value, b.cursor, e)
}

func (b *logbook) save() {
	if b.value == "" {
		return
	}
	entry, err := b.store.Add(b.value)
	if err != nil {
		log.Printf("save failed: %v", err)
		b.status = "save failed"
		return
	}
	b.entries = append([]Entry{entry}, b.entries...)
	b.selected = 0
	b.value, b.cursor = "", 0
}

func (b *logbook) View(f *core.Frame) {
	w, h := f.Size()
	root := layout.Split(layout.Vertical,
		layout.Zone("history", layout.Fill()),
		layout.Zone("input", layout.Fixed(3)),
		layout.Zone("status", layout.Fixed(1)),
	)
	res, err := layout.Resolve(root, core.NewRect(0, 0, w, h))
	if err != nil {
		log.Printf("layout: %v", err)
		return
	}

	if area, ok := res.Area("history"); ok {
		block := widgets.Block{Title: "logbook", Border: widgets.BorderRounded}
		block.Render(f, area)
		inner := block.Inner(area)

		items := make([]string, len(b.entries))
		for i, e := range b.entries {
			items[i] = e.Created.Local().Format("2006-01-02 15:04") + "  " + e.Body
		}
		list := widgets.List{
			Items:         items,
			Selected:      b.selected,
			Offset:        b.offset,
			SelectedStyle: core.Style{Attrs: core.AttrReverse},
		}
		b.offset = list.ClampOffset(inner.H)
		list.Offset = b.offset
		list.Render(f, inner)
	}

	if area, ok := res.Area("input"); ok {
		block := widgets.Block{Title: "new entry"}
		block.Render(f, area)
		widgets.Input{
			Value:       b.value,
			Cursor:      b.cursor,
			Placeholder: "what happened?",
			Focused:     true,
		}.Render(f, block.Inner(area))
	}

	if area, ok := res.Area("status"); ok {
		right := fmt.Sprintf("%d entries", len(b.entries))
		if b.status != "" {
			right = b.status
		}
		widgets.StatusBar{
			Left:  "Enter: save  ↑/↓: browse  Esc: quit",
			Right: right,
			Style: core.Style{Attrs: core.AttrReverse},
		}.Render(f, area)
	}
}

func mapKey(key core.KeyEvent) (bookMsg, bool) {
	if key.Key == tcell.KeyEscape || key.Key == tcell.KeyCtrlC {
		return bookMsg{quit: true}, true
	}
	return bookMsg{key: key}, true
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := flag.String("db", "", "database file (default: user config dir)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("logbook requires a terminal")
	}

	logFile, err := os.OpenFile("logbook.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	path := *dbPath
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		dir := filepath.Join(configDir, "texelkit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		path = filepath.Join(dir, "logbook.db")
	}

	store, err := OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	app, err := newLogbook(store)
	if err != nil {
		return err
	}
	return core.RunKeys[bookMsg](app, mapKey)
}
