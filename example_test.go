package bintree_test

import (
	"fmt"

	"github.com/npillmayer/bintree"
)

// isSameTree is a typical solution under test: it compares two trees node by
// node.
func isSameTree(p, q *bintree.Node[int]) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.Val == q.Val && isSameTree(p.Left, q.Left) && isSameTree(p.Right, q.Right)
}

func Example() {
	cases := [][2]string{
		{"[1]", "[1]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[1, 2]", "[1, null, 2]"},
		{"[1, 2, 1]", "[1, 1, 2]"},
	}
	for _, c := range cases {
		p, q := bintree.MustFromString(c[0]), bintree.MustFromString(c[1])
		got := isSameTree(p, q)
		fmt.Printf("%s vs %s: %v (expected %v)\n", p, q, got, bintree.Equal(p, q))
	}
	// Output:
	// [1] vs [1]: true (expected true)
	// [1, 2, 3] vs [1, 2, 3]: true (expected true)
	// [1, 2] vs [1, null, 2]: false (expected false)
	// [1, 2, 1] vs [1, 1, 2]: false (expected false)
}

func ExampleFromString() {
	root, err := bintree.FromString("[3,0,4,null,2,null,null,1]")
	if err != nil {
		panic(err)
	}
	fmt.Println(root.Left.Right.Left.Val)
	fmt.Println(bintree.Render(root))
	_, err = bintree.FromString("1, 2, 3")
	fmt.Println(err)
	// Output:
	// 1
	// [3, 0, 4, null, 2, null, null, 1]
	// malformed tree literal: missing enclosing brackets
}

func ExampleCodec_ParseText() {
	seq, _ := bintree.Strings.ParseText(`[root, "left, with comma", null, leaf]`)
	for _, slot := range seq {
		fmt.Printf("%q %v\n", slot.Val, slot.Valid)
	}
	fmt.Println(bintree.Strings.Render(bintree.Decode(seq)))
	// Output:
	// "root" true
	// "left, with comma" true
	// "" false
	// "leaf" true
	// [root, "left, with comma", null, leaf]
}
