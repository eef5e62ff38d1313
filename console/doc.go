/*
Package console displays binary trees on a terminal.

Two views are offered. Outline prints one node per line, indented by depth,
with every child tagged as left (L) or right (R):

	1
	├── L: 2
	│   ├── L: null
	│   └── R: 5
	└── R: 3

Diagram draws the tree top down, one line per level, centering every node
above its children:

	      1
	    /  \
	   2     3
	   \
	    5

Diagram measures labels by their display width (east asian wide characters
take two columns) and refuses trees too wide for the available line width.
Print chooses between the two views according to the terminal's width.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bintree'.
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// ConsoleError is an error type for console output.
type ConsoleError string

func (e ConsoleError) Error() string {
	return string(e)
}

// ErrTooWide is flagged whenever a diagram would not fit into the line width.
const ErrTooWide = ConsoleError("tree diagram too wide")
