package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Node is a vertex of a binary tree.
//
// Trees are plain pointer structures: a nil *Node denotes an absent child or
// an empty tree. Nodes may be held by any number of clients at once. Child
// links are set exactly once, by the decoder, before a tree is handed out;
// afterwards clients are expected to treat a tree as read-only.
type Node[T comparable] struct {
	Val   T
	Left  *Node[T]
	Right *Node[T]
}

// New creates a leaf node carrying value v.
func New[T comparable](v T) *Node[T] {
	return &Node[T]{Val: v}
}

// IsLeaf returns true if node has neither a left nor a right child.
// A nil node is not a leaf.
func (node *Node[T]) IsLeaf() bool {
	return node != nil && node.Left == nil && node.Right == nil
}

// String returns the canonical level-order literal of the tree rooted at node.
func (node *Node[T]) String() string {
	return Render(node)
}

// Equal reports whether two trees are structurally equal: their roots carry
// equal values and their left and right subtrees are equal in turn.
// An absent tree is equal only to another absent tree.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return a.Val == b.Val && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
