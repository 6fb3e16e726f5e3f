// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/demo/main.go
// Summary: Widget gallery. Exercises the layout resolver, every widget, and
// hot theme reloading; edit the theme file while it runs to see restyling.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelkit/core"
	"github.com/framegrace/texelkit/layout"
	"github.com/framegrace/texelkit/theme"
	"github.com/framegrace/texelkit/widgets"
)

const sample = `package main

import "fmt"

func main() {
	fmt.Println("hello from the code view")
}
`

type demoMsg int

const (
	msgQuit demoMsg = iota
	msgTick
	msgNextTab
	msgPrevItem
	msgNextItem
)

type demo struct {
	theme   *theme.Theme
	updates <-chan theme.Update

	tab      int
	selected int
	offset   int
	ratio    float64
	items    []string
}

func newDemo(th *theme.Theme, updates <-chan theme.Update) *demo {
	return &demo{
		theme:   th,
		updates: updates,
		items: []string{
			"block", "text", "paragraph", "list", "statusbar",
			"input", "tabs", "gauge", "codeview",
		},
	}
}

func (d *demo) Init() core.Command[demoMsg] {
	return core.None[demoMsg]()
}

func (d *demo) Update(m demoMsg) core.Command[demoMsg] {
	switch m {
	case msgQuit:
		return core.Quit[demoMsg]()
	case msgTick:
		d.ratio += 0.02
		if d.ratio > 1 {
			d.ratio = 0
		}
		d.pollTheme()
	case msgNextTab:
		d.tab = (d.tab + 1) % 2
	case msgPrevItem:
		if d.selected > 0 {
			d.selected--
		}
	case msgNextItem:
		if d.selected < len(d.items)-1 {
			d.selected++
		}
	}
	return core.None[demoMsg]()
}

// pollTheme drains at most one pending reload without blocking the loop.
func (d *demo) pollTheme() {
	if d.updates == nil {
		return
	}
	select {
	case u := <-d.updates:
		if u.Err == nil {
			d.theme = u.Theme
			log.Println("theme reloaded")
		}
	default:
	}
}

func (d *demo) View(f *core.Frame) {
	w, h := f.Size()
	root := layout.Split(layout.Vertical,
		layout.Zone("tabs", layout.Fixed(1)),
		layout.ZoneNode("body", layout.Fill(), layout.Split(layout.Horizontal,
			layout.Zone("sidebar", layout.Percent(30)),
			layout.Zone("content", layout.Fill()),
		)),
		layout.Zone("gauge", layout.Fixed(1)),
		layout.Zone("status", layout.Fixed(1)),
	)
	res, err := layout.Resolve(root, core.NewRect(0, 0, w, h))
	if err != nil {
		log.Printf("layout: %v", err)
		return
	}

	tabStyles := widgets.TabsStyleFromTheme(d.theme)
	if area, ok := res.Area("tabs"); ok {
		widgets.Tabs{
			Titles:      []string{"widgets", "code"},
			Active:      d.tab,
			Style:       tabStyles.Item,
			ActiveStyle: tabStyles.Active,
		}.Render(f, area)
	}

	if area, ok := res.Area("sidebar"); ok {
		d.renderSidebar(f, area)
	}
	if area, ok := res.Area("content"); ok {
		d.renderContent(f, area)
	}

	if area, ok := res.Area("gauge"); ok {
		widgets.Gauge{
			Ratio: d.ratio,
			Label: fmt.Sprintf("%3.0f%%", d.ratio*100),
		}.Render(f, area)
	}

	barStyles := widgets.StatusBarStyleFromTheme(d.theme)
	if area, ok := res.Area("status"); ok {
		widgets.StatusBar{
			Left:       "tab: next view  ↑/↓: select  q: quit",
			Right:      fmt.Sprintf("%d tokens themed", d.theme.Tokens()),
			Style:      barStyles.Base,
			LeftStyle:  barStyles.Left,
			RightStyle: barStyles.Right,
		}.Render(f, area)
	}
}

func (d *demo) renderSidebar(f *core.Frame, area core.Rect) {
	blockStyles := widgets.BlockStyleFromTheme(d.theme)
	block := widgets.Block{
		Title:      "widgets",
		Border:     widgets.BorderRounded,
		Style:      blockStyles.Border,
		TitleStyle: blockStyles.Title,
	}
	block.Render(f, area)

	listStyles := widgets.ListStyleFromTheme(d.theme)
	inner := block.Inner(area)
	list := widgets.List{
		Items:         d.items,
		Selected:      d.selected,
		Offset:        d.offset,
		Style:         listStyles.Item,
		SelectedStyle: listStyles.Selected,
	}
	d.offset = list.ClampOffset(inner.H)
	list.Offset = d.offset
	list.Render(f, inner)
}

func (d *demo) renderContent(f *core.Frame, area core.Rect) {
	blockStyles := widgets.BlockStyleFromTheme(d.theme)
	title := "gallery"
	if d.tab == 1 {
		title = "code"
	}
	block := widgets.Block{
		Title:      title,
		Border:     widgets.BorderPlain,
		Style:      blockStyles.Border,
		TitleStyle: blockStyles.Title,
	}
	block.Render(f, area)
	inner := block.Inner(area)

	if d.tab == 1 {
		widgets.CodeView{Source: sample, Language: "go"}.Render(f, inner)
		return
	}

	widgets.Paragraph{
		Content: "Selected: " + d.items[d.selected] + "\n\n" +
			"This pane word-wraps a paragraph to whatever width the layout " +
			"resolver hands it. Resize the terminal and the text reflows.",
		Wrap:    widgets.WrapWord,
		Padding: layout.PadSymmetric(0, 1),
	}.Render(f, inner)
}

func mapEvent(ev core.Event) (demoMsg, bool) {
	switch e := ev.(type) {
	case core.TickEvent:
		return msgTick, true
	case core.KeyEvent:
		switch e.Key {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return msgQuit, true
		case tcell.KeyTab:
			return msgNextTab, true
		case tcell.KeyUp:
			return msgPrevItem, true
		case tcell.KeyDown:
			return msgNextItem, true
		case tcell.KeyRune:
			if e.Rune == 'q' {
				return msgQuit, true
			}
		}
	}
	return 0, false
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	themePath := flag.String("theme", "", "theme file to load and watch (default: user config dir)")
	flag.Parse()

	logFile, err := os.OpenFile("demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	path := *themePath
	if path == "" {
		if path, err = theme.DefaultPath(); err != nil {
			return err
		}
	}

	// Missing theme files are fine; the widgets fall back to defaults.
	th, err := theme.Load(path)
	if err != nil {
		log.Printf("theme: %v", err)
		th = nil
	}

	var updates <-chan theme.Update
	watcher, err := theme.Watch(path)
	if err != nil {
		log.Printf("theme watch: %v", err)
	} else {
		defer watcher.Close()
		updates = watcher.Updates()
	}

	return core.Run[demoMsg](newDemo(th, updates), mapEvent)
}
