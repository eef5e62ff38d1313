package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// nullToken is the literal for an absent node.
const nullToken = "null"

// Slot is an optional value within a level-order sequence. An invalid slot
// denotes an absent node.
type Slot[T any] struct {
	Val   T
	Valid bool
}

// Some creates a slot for a present node with value v.
func Some[T any](v T) Slot[T] {
	return Slot[T]{Val: v, Valid: true}
}

// Null creates a slot for an absent node.
func Null[T any]() Slot[T] {
	return Slot[T]{}
}

// Decode builds a tree from a level-order sequence of optional values.
//
// Entry 0 is the root. Then, level by level and from left to right, every
// present node takes the next two unconsumed entries as its left and right
// child. Absent entries take no children of their own. If the sequence runs
// out in the middle of a level, the remaining nodes stay leaves.
//
// An empty sequence yields the empty tree (nil); so does a sequence starting
// with an absent root. Entries remaining after the last level with a present
// node are ignored.
func Decode[T comparable](seq []Slot[T]) *Node[T] {
	if len(seq) == 0 {
		return nil
	}
	// first pass: allocate all nodes, unlinked
	nodes := make([]*Node[T], len(seq))
	for i, slot := range seq {
		if slot.Valid {
			nodes[i] = New(slot.Val)
		}
	}
	root := nodes[0]
	if root == nil {
		if len(nodes) > 1 {
			tracer().Debugf("level-order decode: root is null, ignoring %d entries", len(nodes)-1)
		}
		return nil
	}
	// second pass: link children breadth-first
	next := 1
	level := []*Node[T]{root}
	for next < len(nodes) {
		consumed := next
		children := make([]*Node[T], 0, 2*len(level))
		for _, parent := range level {
			if parent == nil {
				continue
			}
			if next < len(nodes) {
				parent.Left = nodes[next]
				children = append(children, parent.Left)
				next++
			}
			if next < len(nodes) {
				parent.Right = nodes[next]
				children = append(children, parent.Right)
				next++
			}
		}
		if next == consumed { // level without present nodes
			tracer().Debugf("level-order decode: no parent for %d trailing entries, ignoring them",
				len(nodes)-next)
			break
		}
		level = children
	}
	return root
}

// Render returns the canonical level-order literal for a tree, formatting
// values with their default format (as fmt.Sprint does).
// The empty tree renders as "[]".
func Render[T comparable](root *Node[T]) string {
	return renderLevelOrder(root, formatDefault[T])
}

// renderLevelOrder walks the tree breadth-first. Every present node emits its
// value and enqueues both of its child slots, absent or not; every absent slot
// emits a null placeholder and enqueues nothing. Placeholders after the last
// present node are padding and get trimmed.
func renderLevelOrder[T comparable](root *Node[T], format func(T) string) string {
	if root == nil {
		return "[]"
	}
	var tokens []string
	last := 0 // index of the last token for a present node
	queue := []*Node[T]{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == nil {
			tokens = append(tokens, nullToken)
			continue
		}
		last = len(tokens)
		tokens = append(tokens, format(node.Val))
		queue = append(queue, node.Left, node.Right)
	}
	return "[" + strings.Join(tokens[:last+1], ", ") + "]"
}

func formatDefault[T any](v T) string {
	return fmt.Sprint(v)
}
