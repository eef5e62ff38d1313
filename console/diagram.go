package console

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// MaxDiagramHeight is the maximum number of levels Diagram will draw.
// The width of a diagram doubles with every level.
const MaxDiagramHeight = 10

var setupGraphemes sync.Once

// Diagram draws a tree top down, one line per level, with slashes connecting
// parents and children. format writes a value and may be nil.
//
// Every node gets a cell of the same width, derived from the widest label,
// and the bottom level is laid out as a complete level. If the resulting
// lines exceed opts.LineWidth, or the tree is higher than MaxDiagramHeight,
// ErrTooWide is returned.
func Diagram[T comparable](root *bintree.Node[T], format func(T) string, opts *Options) (string, error) {
	p := newPainter(format, opts)
	if root == nil {
		return p.null("<empty>") + "\n", nil
	}
	levels := collectLevels(root)
	if len(levels) > MaxDiagramHeight {
		return "", fmt.Errorf("%w: %d levels", ErrTooWide, len(levels))
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	widths := make(map[*bintree.Node[T]]int)
	cell := 0
	for _, level := range levels {
		for _, node := range level {
			if node == nil {
				continue
			}
			label := p.format(node.Val)
			widths[node] = displayWidth(label, p.context)
			if widths[node] > cell {
				cell = widths[node]
			}
		}
	}
	cell += 2
	linewidth := cell * len(levels[len(levels)-1])
	if opts != nil && opts.LineWidth > 0 && linewidth > opts.LineWidth {
		return "", fmt.Errorf("%w: needs %d positions, have %d", ErrTooWide, linewidth, opts.LineWidth)
	}
	tracer().Debugf("tree diagram: %d levels, cell width %d, line width %d", len(levels), cell, linewidth)
	center := func(depth, i int) int {
		return (2*i + 1) * linewidth / (2 << depth)
	}
	var b strings.Builder
	for depth, level := range levels {
		col := 0
		for i, node := range level {
			if node == nil {
				continue
			}
			start := center(depth, i) - widths[node]/2
			if start < col {
				start = col
			}
			b.WriteString(strings.Repeat(" ", start-col))
			b.WriteString(p.value(node.Val))
			col = start + widths[node]
		}
		b.WriteByte('\n')
		if depth+1 == len(levels) {
			break
		}
		col = 0
		for i, node := range level {
			if node == nil {
				continue
			}
			for k, child := range []*bintree.Node[T]{node.Left, node.Right} {
				if child == nil {
					continue
				}
				pos := (center(depth, i) + center(depth+1, 2*i+k)) / 2
				if pos < col {
					pos = col
				}
				b.WriteString(strings.Repeat(" ", pos-col))
				b.WriteString(p.edge([...]string{"/", "\\"}[k]))
				col = pos + 1
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// displayWidth returns the number of fixed-width positions label occupies.
// ASCII runs count one position per byte; uax11 classes the digits as emoji
// keycap bases and would measure them 2 wide. Everything else is measured
// by uax11 in the given context.
func displayWidth(label string, context *uax11.Context) int {
	width, start := 0, 0
	for start < len(label) {
		end := start
		for end < len(label) && label[end] < utf8.RuneSelf {
			end++
		}
		width += end - start
		if start = end; start == len(label) {
			break
		}
		for end < len(label) && label[end] >= utf8.RuneSelf {
			end++
		}
		width += uax11.StringWidth(grapheme.StringFromString(label[start:end]), context)
		start = end
	}
	return width
}

// collectLevels lays out a tree as complete levels: level d holds 2^d slots,
// the children of slot i being slots 2i and 2i+1 of level d+1. Levels end
// with the deepest present node.
func collectLevels[T comparable](root *bintree.Node[T]) [][]*bintree.Node[T] {
	levels := [][]*bintree.Node[T]{{root}}
	for {
		last := levels[len(levels)-1]
		next := make([]*bintree.Node[T], 2*len(last))
		present := false
		for i, node := range last {
			if node == nil {
				continue
			}
			next[2*i], next[2*i+1] = node.Left, node.Right
			present = present || node.Left != nil || node.Right != nil
		}
		if !present || len(levels) > MaxDiagramHeight {
			return levels
		}
		levels = append(levels, next)
	}
}

// Print writes a tree to w. If w is a terminal, the line width is taken from
// the terminal. A diagram is drawn if it fits, otherwise an outline.
func Print[T comparable](w io.Writer, root *bintree.Node[T], format func(T) string, opts *Options) error {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.LineWidth <= 0 {
		o.LineWidth = LineWidthFor(w)
	}
	out, err := Diagram(root, format, &o)
	if err != nil {
		tracer().Infof("console: %s, printing outline instead", err.Error())
		out = Outline(root, format, &o)
	}
	_, err = io.WriteString(w, out)
	return err
}

// LineWidthFor is a simple heuristic for the usable line width of w.
// If w is a terminal, its width is read; otherwise 80 positions are assumed.
func LineWidthFor(w io.Writer) int {
	width := 80
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 10 {
			width = tw
		}
	}
	tracer().P("console", "width").Debugf("setting line length to %d en", width)
	return width
}
