/*
Package htmltree renders binary trees as nested HTML lists.

A tree

	[1, null, 3]

is rendered as

	<ul class="bintree"><li><span class="value">1</span><ul><li class="null">null</li><li><span class="value">3</span></li></ul></li></ul>

Leaves have no nested list; an inner node always lists both of its child
slots, a missing child as an item of class "null". The output can be styled
with CSS to draw a tree diagram in a browser.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package htmltree

import (
	"fmt"
	"io"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'bintree'.
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// ListClass is the class attribute of the outermost list element.
const ListClass = "bintree"

// Render writes a tree as a nested HTML list to w. format writes a value and
// may be nil. The empty tree is rendered as an empty list.
func Render[T comparable](root *bintree.Node[T], format func(T) string, w io.Writer) error {
	if w == nil {
		return bintree.ErrIllegalArguments
	}
	return html.Render(w, Fragment(root, format))
}

// Fragment builds the HTML node tree for a tree, without rendering it.
// format writes a value and may be nil.
func Fragment[T comparable](root *bintree.Node[T], format func(T) string) *html.Node {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	ul := element(atom.Ul)
	ul.Attr = []html.Attribute{{Key: "class", Val: ListClass}}
	if root != nil {
		ul.AppendChild(item(root, format))
	}
	return ul
}

func item[T comparable](node *bintree.Node[T], format func(T) string) *html.Node {
	li := element(atom.Li)
	span := element(atom.Span)
	span.Attr = []html.Attribute{{Key: "class", Val: "value"}}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: format(node.Val)})
	li.AppendChild(span)
	if node.IsLeaf() {
		return li
	}
	ul := element(atom.Ul)
	for _, child := range []*bintree.Node[T]{node.Left, node.Right} {
		if child == nil {
			null := element(atom.Li)
			null.Attr = []html.Attribute{{Key: "class", Val: "null"}}
			null.AppendChild(&html.Node{Type: html.TextNode, Data: "null"})
			ul.AppendChild(null)
			continue
		}
		ul.AppendChild(item(child, format))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// Values extracts node values in document order from an HTML fragment
// produced by Render. It is the inverse of Render for the values, but not
// for the tree shape, and is intended for checking rendered output.
func Values(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, err
	}
	var values []string
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Span && hasClass(n, "value") {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				values = append(values, n.FirstChild.Data)
			} else {
				values = append(values, "")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for _, n := range nodes {
		collect(n)
	}
	tracer().Debugf("htmltree: extracted %d values", len(values))
	return values, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && a.Val == class {
			return true
		}
	}
	return false
}
