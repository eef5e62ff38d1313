package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T comparable] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T comparable]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Values are labelled with their default format.
//
// Missing children of inner nodes are drawn as small empty circles, keeping
// left and right children visually apart.
func ToDot[T comparable](root *Node[T], w io.Writer) error {
	return writeDot(root, formatDefault[T], w)
}

// ToDot outputs the structure of a tree in Graphviz DOT format, labelling
// values with the codec's format.
func (c *Codec[T]) ToDot(root *Node[T], w io.Writer) error {
	if c == nil || c.Format == nil {
		return writeDot(root, formatDefault[T], w)
	}
	return writeDot(root, c.Format, w)
}

func writeDot[T comparable](root *Node[T], format func(T) string, w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilid := 0
	queue := []*Node[T]{root}
	if root == nil {
		queue = nil
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		label := labelEscaper.Replace(format(node.Val))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, styles)
		if node.IsLeaf() {
			continue
		}
		for _, child := range []*Node[T]{node.Left, node.Right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			childID := ids.alloc(child)
			assert(childID != ID, "tree node is its own child")
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, childID)
			queue = append(queue, child)
		}
	}
	tracer().Debugf("tree DOT: %d nodes, %d placeholders", ids.max-1, -nilid)
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("tree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func emptyNode() string {
	return "[label=\"\",color=gray,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
