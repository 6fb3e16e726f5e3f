// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/counter/main.go
// Summary: Smallest complete texelkit program. A counter incremented and
// decremented from the keyboard; q quits.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelkit/core"
	"github.com/framegrace/texelkit/widgets"
)

type msg int

const (
	msgIncrement msg = iota
	msgDecrement
	msgQuit
)

type counter struct {
	count int
}

func (c *counter) Init() core.Command[msg] {
	return core.None[msg]()
}

func (c *counter) Update(m msg) core.Command[msg] {
	switch m {
	case msgIncrement:
		c.count++
	case msgDecrement:
		c.count--
	case msgQuit:
		return core.Quit[msg]()
	}
	return core.None[msg]()
}

func (c *counter) View(f *core.Frame) {
	w, h := f.Size()
	area := core.NewRect(0, 0, w, h)

	block := widgets.Block{Title: "counter", Border: widgets.BorderRounded}
	block.Render(f, area)

	widgets.Text{
		Content: fmt.Sprintf("count: %d\n\n+ / - to change, q to quit", c.count),
	}.Render(f, block.Inner(area))
}

func mapKey(key core.KeyEvent) (msg, bool) {
	if key.Key == tcell.KeyEscape || key.Key == tcell.KeyCtrlC {
		return msgQuit, true
	}
	if key.Key != tcell.KeyRune {
		return 0, false
	}
	switch key.Rune {
	case '+', '=':
		return msgIncrement, true
	case '-':
		return msgDecrement, true
	case 'q':
		return msgQuit, true
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
	logFile, err := os.OpenFile("counter.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("counter starting")

	if err := core.RunKeys[msg](&counter{}, mapKey); err != nil {
		return err
	}
	log.Println("counter stopped cleanly")
	return nil
}
