// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/command.go
// Summary: The post-update command tree and its flattening/lifting rules.

package core

type cmdKind uint8

const (
	cmdNone cmdKind = iota
	cmdEmit
	cmdBatch
	cmdQuit
)

// Command describes what should happen after an update: nothing, emit a
// follow-up message, run several commands in order, or stop the runtime.
// Commands are values interpreted by the runtime, never actions themselves.
// The zero value is None.
type Command[Msg any] struct {
	kind cmdKind
	msg  Msg
	sub  []Command[Msg]
}

// None is the do-nothing command.
func None[Msg any]() Command[Msg] {
	return Command[Msg]{}
}

// Emit queues msg for a later update in the same cycle.
func Emit[Msg any](msg Msg) Command[Msg] {
	return Command[Msg]{kind: cmdEmit, msg: msg}
}

// Batch runs the given commands in order. Batches nest arbitrarily.
func Batch[Msg any](cmds ...Command[Msg]) Command[Msg] {
	return Command[Msg]{kind: cmdBatch, sub: cmds}
}

// Quit stops the runtime loop.
func Quit[Msg any]() Command[Msg] {
	return Command[Msg]{kind: cmdQuit}
}

// OpKind tags a primitive operation produced by Flatten.
type OpKind uint8

const (
	OpEmit OpKind = iota
	OpQuit
)

// Op is one primitive operation of a flattened command.
type Op[Msg any] struct {
	Kind OpKind
	Msg  Msg
}

// Flatten linearizes a command tree into primitive ops via a pre-order,
// left-to-right traversal. A Quit anywhere truncates the traversal: the Quit
// op is the last element and everything that would follow it, across any
// batch boundary, is discarded. The traversal uses an explicit worklist so
// deeply nested batches cannot exhaust the call stack.
func Flatten[Msg any](cmd Command[Msg]) []Op[Msg] {
	var ops []Op[Msg]
	work := []Command[Msg]{cmd}
	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]
		switch c.kind {
		case cmdNone:
		case cmdEmit:
			ops = append(ops, Op[Msg]{Kind: OpEmit, Msg: c.msg})
		case cmdQuit:
			return append(ops, Op[Msg]{Kind: OpQuit})
		case cmdBatch:
			for i := len(c.sub) - 1; i >= 0; i-- {
				work = append(work, c.sub[i])
			}
		}
	}
	return ops
}

// Lift rewrites a child-typed command into a parent-typed one: every emitted
// message is wrapped, structure and order are preserved, None and Quit pass
// through unchanged.
func Lift[Child, Parent any](cmd Command[Child], wrap func(Child) Parent) Command[Parent] {
	switch cmd.kind {
	case cmdEmit:
		return Command[Parent]{kind: cmdEmit, msg: wrap(cmd.msg)}
	case cmdBatch:
		sub := make([]Command[Parent], len(cmd.sub))
		for i, c := range cmd.sub {
			sub[i] = Lift(c, wrap)
		}
		return Command[Parent]{kind: cmdBatch, sub: sub}
	case cmdQuit:
		return Command[Parent]{kind: cmdQuit}
	default:
		return Command[Parent]{}
	}
}

// Updater is the update half of the app contract, used for child
// composition.
type Updater[Msg any] interface {
	Update(Msg) Command[Msg]
}

// UpdateChild routes a message to a child component and lifts the resulting
// command into the parent's message type.
func UpdateChild[Child, Parent any](child Updater[Child], msg Child, wrap func(Child) Parent) Command[Parent] {
	return Lift(child.Update(msg), wrap)
}
