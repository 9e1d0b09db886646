// Package bptree provides a dynamic ordinal tree encoded as a
// balanced-parenthesis sequence inside one bitvec.Vector.
//
// The DFS encoding writes '(' (a 1-bit) when a node is entered and ')'
// (a 0-bit) when it is left; a node is identified by the position of its
// opening bit, and the root's own pair is stored, so a root with two
// leaf children is (()()) and Root() is position 0. Every operation is
// expressed through the vector's rank, select, insert, delete and
// matching-parenthesis primitives; the tree holds no storage of its own
// beyond the vector it references, and destroying or mutating the vector
// elsewhere invalidates all derived node positions.
//
// A Tree is not safe for concurrent use.
package bptree
