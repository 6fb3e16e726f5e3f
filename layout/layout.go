// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/layout.go
// Summary: Declarative constraint-based partition trees. A Node splits a
// rect into named zones; Resolve flattens the tree into a name→rect map.

package layout

import (
	"fmt"

	"github.com/framegrace/texelkit/core"
)

// Direction is the axis a node splits along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

type constraintKind uint8

const (
	kindFixed constraintKind = iota
	kindPercent
	kindFill
)

// Constraint governs one slot's extent along the split axis.
type Constraint struct {
	kind  constraintKind
	value int
}

// Fixed requests exactly n cells. Negative values count as zero.
func Fixed(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{kind: kindFixed, value: n}
}

// Percent requests floor(p% of the padded axis length). p is clamped to
// 0..100.
func Percent(p int) Constraint {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return Constraint{kind: kindPercent, value: p}
}

// Fill requests an even share of whatever Fixed and Percent slots leave
// over.
func Fill() Constraint {
	return Constraint{kind: kindFill}
}

// Padding shrinks a rect from each edge with saturating arithmetic:
// dimensions never go negative, over-padding collapses to an empty rect.
type Padding struct {
	Top, Right, Bottom, Left int
}

// PadAll pads every edge by v.
func PadAll(v int) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// PadSymmetric pads top/bottom by v and left/right by h.
func PadSymmetric(v, h int) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// Apply returns the padded rect.
func (p Padding) Apply(area core.Rect) core.Rect {
	w := max(area.W, 0)
	h := max(area.H, 0)
	left := min(max(p.Left, 0), w)
	right := min(max(p.Right, 0), w-left)
	top := min(max(p.Top, 0), h)
	bottom := min(max(p.Bottom, 0), h-top)
	return core.Rect{
		X: area.X + left,
		Y: area.Y + top,
		W: w - left - right,
		H: h - top - bottom,
	}
}

// Slot is one child of a split node: a zone name, the constraint that sizes
// it, and an optional nested node resolved inside the slot's rect.
type Slot struct {
	Name       string
	Constraint Constraint
	Child      *Node
}

// Zone is a named leaf slot.
func Zone(name string, c Constraint) Slot {
	return Slot{Name: name, Constraint: c}
}

// ZoneNode is a named slot that splits further.
func ZoneNode(name string, c Constraint, child *Node) Slot {
	return Slot{Name: name, Constraint: c, Child: child}
}

// Spacer is an anonymous slot: it occupies space but is never recorded.
func Spacer(c Constraint) Slot {
	return Slot{Constraint: c}
}

// Node is one level of the partition tree. Nodes are built fresh per view,
// never mutated after construction, and consumed by Resolve.
type Node struct {
	Dir      Direction
	Padding  Padding
	Children []Slot
}

// Split builds a node over the given slots.
func Split(dir Direction, slots ...Slot) *Node {
	return &Node{Dir: dir, Children: slots}
}

// WithPadding returns the node with padding applied before splitting.
func (n *Node) WithPadding(p Padding) *Node {
	n.Padding = p
	return n
}

// Resolved is the flat zone-name → rect mapping a tree resolves to.
type Resolved struct {
	zones map[string]core.Rect
	names []string
}

// Area returns the rect resolved for a zone name.
func (r *Resolved) Area(name string) (core.Rect, bool) {
	rect, ok := r.zones[name]
	return rect, ok
}

// Names lists the resolved zone names in resolution order.
func (r *Resolved) Names() []string {
	return r.names
}

// Resolve computes concrete rects for every named zone of the tree against
// the available rect. A zone name appearing more than once anywhere in the
// tree is an error; nothing is silently shadowed.
func Resolve(node *Node, available core.Rect) (*Resolved, error) {
	res := &Resolved{zones: make(map[string]core.Rect)}
	if node == nil {
		return res, nil
	}
	if err := resolveNode(node, available, res); err != nil {
		return nil, err
	}
	return res, nil
}

func resolveNode(node *Node, area core.Rect, res *Resolved) error {
	usable := node.Padding.Apply(area)

	total := usable.H
	if node.Dir == Horizontal {
		total = usable.W
	}
	sizes := splitSizes(total, node.Children)

	x, y := usable.X, usable.Y
	for i, slot := range node.Children {
		var rect core.Rect
		if node.Dir == Horizontal {
			rect = core.Rect{X: x, Y: usable.Y, W: sizes[i], H: usable.H}
			x += sizes[i]
		} else {
			rect = core.Rect{X: usable.X, Y: y, W: usable.W, H: sizes[i]}
			y += sizes[i]
		}

		if slot.Name != "" {
			if _, dup := res.zones[slot.Name]; dup {
				return fmt.Errorf("layout: duplicate zone name %q", slot.Name)
			}
			res.zones[slot.Name] = rect
			res.names = append(res.names, slot.Name)
		}
		if slot.Child != nil {
			if err := resolveNode(slot.Child, rect, res); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitSizes distributes the axis length over the slots. Fixed and Percent
// slots are honored in declared order, each clamped to what remains, so an
// over-constrained node deterministically zeroes the trailing slots rather
// than shrinking everyone. Fill slots share the remainder evenly, earlier
// slots taking the odd cells. With no Fill slot the leftover goes to the
// last slot so the split always tiles the area exactly.
func splitSizes(total int, slots []Slot) []int {
	sizes := make([]int, len(slots))
	remaining := total
	fills := 0

	for i, slot := range slots {
		switch slot.Constraint.kind {
		case kindFixed:
			size := min(slot.Constraint.value, remaining)
			sizes[i] = size
			remaining -= size
		case kindPercent:
			size := min(total*slot.Constraint.value/100, remaining)
			sizes[i] = size
			remaining -= size
		case kindFill:
			fills++
		}
	}

	if fills > 0 {
		base := remaining / fills
		extra := remaining % fills
		for i, slot := range slots {
			if slot.Constraint.kind != kindFill {
				continue
			}
			sizes[i] = base
			if extra > 0 {
				sizes[i]++
				extra--
			}
		}
		return sizes
	}

	if remaining > 0 && len(sizes) > 0 {
		sizes[len(sizes)-1] += remaining
	}
	return sizes
}
