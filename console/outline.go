package console

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
)

// Options configures tree output to a console.
type Options struct {
	Color     bool           // colorize node values
	LineWidth int            // maximum line width in fixed-width positions; 0 means unlimited
	Context   *uax11.Context // context for display width; nil means uax11.LatinContext
}

// Palette holds the colors for tree output.
type Palette struct {
	Value *color.Color
	Null  *color.Color
	Edge  *color.Color
}

// DefaultPalette is used if Options.Color is set.
var DefaultPalette = Palette{
	Value: color.New(color.FgBlue, color.Bold),
	Null:  color.New(color.FgHiBlack),
	Edge:  color.New(color.FgYellow),
}

// Outline returns an indented outline of a tree, one node per line. Children
// of inner nodes are tagged with L or R; a missing child of an inner node is
// listed as null. format writes a value and may be nil.
func Outline[T comparable](root *bintree.Node[T], format func(T) string, opts *Options) string {
	p := newPainter(format, opts)
	if root == nil {
		return p.null("<empty>") + "\n"
	}
	tree := treeprint.NewWithRoot(p.value(root.Val))
	addChildren(tree, root, p)
	return tree.String()
}

func addChildren[T comparable](tree treeprint.Tree, node *bintree.Node[T], p *painter[T]) {
	if node.IsLeaf() {
		return
	}
	for i, child := range []*bintree.Node[T]{node.Left, node.Right} {
		tag := p.edge([...]string{"L:", "R:"}[i])
		if child == nil {
			tree.AddNode(tag + " " + p.null("null"))
			continue
		}
		label := tag + " " + p.value(child.Val)
		if child.IsLeaf() {
			tree.AddNode(label)
		} else {
			addChildren(tree.AddBranch(label), child, p)
		}
	}
}

// painter formats and colorizes labels.
type painter[T comparable] struct {
	format  func(T) string
	palette *Palette
	context *uax11.Context
}

func newPainter[T comparable](format func(T) string, opts *Options) *painter[T] {
	p := &painter[T]{format: format, context: uax11.LatinContext}
	if p.format == nil {
		p.format = func(v T) string { return fmt.Sprint(v) }
	}
	if opts != nil {
		if opts.Color {
			p.palette = DefaultPalette.enabled()
		}
		if opts.Context != nil {
			p.context = opts.Context
		}
	}
	return p
}

func (p *painter[T]) value(v T) string {
	return p.paint(p.format(v), func(pal *Palette) *color.Color { return pal.Value })
}

func (p *painter[T]) null(s string) string {
	return p.paint(s, func(pal *Palette) *color.Color { return pal.Null })
}

func (p *painter[T]) edge(s string) string {
	return p.paint(s, func(pal *Palette) *color.Color { return pal.Edge })
}

func (p *painter[T]) paint(s string, pick func(*Palette) *color.Color) string {
	if p.palette == nil {
		return s
	}
	c := pick(p.palette)
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// enabled returns a copy of pal with color forced on, overriding color.NoColor
// for non-terminal writers. pal itself is left untouched.
func (pal Palette) enabled() *Palette {
	on := func(c *color.Color) *color.Color {
		if c == nil {
			return nil
		}
		cc := *c
		cc.EnableColor()
		return &cc
	}
	return &Palette{Value: on(pal.Value), Null: on(pal.Null), Edge: on(pal.Edge)}
}
