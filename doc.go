/*
Package bintree builds binary-tree fixtures from level-order literals and
renders them back.

Level-Order Literals

Algorithm exercises usually describe a binary tree by its breadth-first
flattening, where missing children of present nodes are written as `null`:

	[3, 0, 4, null, 2, null, null, 1]

            3
          /   \
         0     4
          \
           2
          /
         1

Children are listed only for nodes which are present; once a node is absent
its (non-existent) subtree takes no further positions in the sequence. This
makes the literal compact for sparse trees, but it also means positions are
not heap-indexed: the i-th entry is not necessarily the child of entry (i-1)/2.

Package bintree converts between such literals, a sequence of optional values
(type Slot), and a tree of Nodes:

	tree, err := bintree.FromString("[1, null, 3]")   // parse and decode
	fmt.Println(bintree.Render(tree))                 // "[1, null, 3]"

Rendering is canonical: trailing `null` placeholders are trimmed, everything
else is kept. Decoding followed by rendering therefore normalizes a literal
without changing the shape of the tree it denotes.

Values are generic. A Codec bundles how values of a type are parsed from and
formatted to text; Ints, Int64s, Float64s and Strings are predefined.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bintree'.
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrFormat is flagged whenever a tree literal is malformed, i.e. it is not
// enclosed in brackets or one of its elements cannot be parsed as a value.
const ErrFormat = TreeError("malformed tree literal")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
