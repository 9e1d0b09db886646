package bptree

import (
	"errors"
	"strings"

	"github.com/dshills/succinct/internal/bitvec"
)

// Tree is an ordinal tree stored as a balanced-parenthesis sequence in a
// dynamic bit vector. Node values are opening-bit positions and shift
// under mutation; callers must not hold positions across mutating calls.
type Tree struct {
	vec *bitvec.Vector
}

// New creates a tree holding a single root node.
func New(opts ...bitvec.Option) (*Tree, error) {
	vec, err := bitvec.New(opts...)
	if err != nil {
		return nil, err
	}
	if vec.Len() != 0 {
		return nil, ErrMalformed
	}
	vec.Push(true)
	vec.Push(false)
	return &Tree{vec: vec}, nil
}

// FromString creates a tree from a full parenthesis encoding such as
// "(()())". The sequence must be balanced and describe a single tree.
func FromString(s string, opts ...bitvec.Option) (*Tree, error) {
	vec, err := bitvec.New(opts...)
	if err != nil {
		return nil, err
	}
	excess := 0
	for i, c := range s {
		switch c {
		case '(':
			excess++
		case ')':
			excess--
		default:
			return nil, ErrMalformed
		}
		if excess < 0 || (excess == 0 && i != len(s)-1) {
			return nil, ErrMalformed
		}
		vec.Push(c == '(')
	}
	if excess != 0 || vec.Len() == 0 {
		return nil, ErrMalformed
	}
	return &Tree{vec: vec}, nil
}

// Vector returns the underlying bit vector. The tree's invariants only
// hold as long as the vector is not mutated directly.
func (t *Tree) Vector() *bitvec.Vector {
	return t.vec
}

// Root returns the position of the root node, or -1 for an empty tree.
func (t *Tree) Root() int {
	if t.vec.Len() == 0 {
		return -1
	}
	return 0
}

// Size returns the number of nodes.
func (t *Tree) Size() int {
	return t.vec.Ones()
}

// checkNode verifies that v is an opening-bit position.
func (t *Tree) checkNode(v int) error {
	b, err := t.vec.Access(v)
	if err != nil || !b {
		return ErrInvalidNode
	}
	return nil
}

// Parent returns the position of v's parent node.
func (t *Tree) Parent(v int) (int, error) {
	if err := t.checkNode(v); err != nil {
		return 0, err
	}
	p, err := t.vec.Enclose(v)
	if errors.Is(err, bitvec.ErrNoMatch) {
		return 0, ErrHasNoParent
	}
	if err != nil {
		return 0, err
	}
	return p, nil
}

// Child returns the position of v's i-th (1-indexed) child, found by
// hopping across the matched pairs directly inside v's span.
func (t *Tree) Child(v, i int) (int, error) {
	if err := t.checkNode(v); err != nil {
		return 0, err
	}
	if i < 1 {
		return 0, ErrOutOfRange
	}
	c, err := t.vec.FindClose(v)
	if err != nil {
		return 0, err
	}
	pos := v + 1
	for n := 1; ; n++ {
		if pos >= c {
			return 0, ErrOutOfRange
		}
		if n == i {
			return pos, nil
		}
		cc, err := t.vec.FindClose(pos)
		if err != nil {
			return 0, err
		}
		pos = cc + 1
	}
}

// ChildCount returns the number of children of v.
func (t *Tree) ChildCount(v int) (int, error) {
	if err := t.checkNode(v); err != nil {
		return 0, err
	}
	c, err := t.vec.FindClose(v)
	if err != nil {
		return 0, err
	}
	count := 0
	for pos := v + 1; pos < c; count++ {
		cc, err := t.vec.FindClose(pos)
		if err != nil {
			return 0, err
		}
		pos = cc + 1
	}
	return count, nil
}

// SubtreeSize returns the number of nodes in v's subtree, v included.
func (t *Tree) SubtreeSize(v int) (int, error) {
	if err := t.checkNode(v); err != nil {
		return 0, err
	}
	c, err := t.vec.FindClose(v)
	if err != nil {
		return 0, err
	}
	below, err := t.vec.Rank(true, c+1)
	if err != nil {
		return 0, err
	}
	above, err := t.vec.Rank(true, v)
	if err != nil {
		return 0, err
	}
	return below - above, nil
}

// DeleteNode removes v, splicing its children under v's former parent at
// v's former position. Deleting the root is only allowed while it has at
// most one child; re-parenting several new roots would be ambiguous.
// All validation happens before the first vector mutation.
func (t *Tree) DeleteNode(v int) error {
	if err := t.checkNode(v); err != nil {
		return err
	}
	if _, err := t.vec.Enclose(v); errors.Is(err, bitvec.ErrNoMatch) {
		n, err := t.ChildCount(v)
		if err != nil {
			return err
		}
		if n > 1 {
			return ErrAmbiguousReparent
		}
	}
	c, err := t.vec.FindClose(v)
	if err != nil {
		return err
	}
	// Higher position first so the lower one stays valid.
	if err := t.vec.Delete(c); err != nil {
		return err
	}
	return t.vec.Delete(v)
}

// InsertChild inserts k new leaf nodes as children i..i+k-1 of v,
// shifting the existing children at and after position i rightward.
// i may be childCount+1 to append.
func (t *Tree) InsertChild(v, i, k int) error {
	if err := t.checkNode(v); err != nil {
		return err
	}
	if i < 1 || k < 0 {
		return ErrOutOfRange
	}
	c, err := t.vec.FindClose(v)
	if err != nil {
		return err
	}
	pos := v + 1
	for n := 1; n < i; n++ {
		if pos >= c {
			return ErrOutOfRange
		}
		cc, err := t.vec.FindClose(pos)
		if err != nil {
			return err
		}
		pos = cc + 1
	}
	for j := 0; j < k; j++ {
		if err := t.vec.Insert(pos+2*j, true); err != nil {
			return err
		}
		if err := t.vec.Insert(pos+2*j+1, false); err != nil {
			return err
		}
	}
	return nil
}

// String renders the parenthesis encoding. Use sparingly for large trees.
func (t *Tree) String() string {
	bits := t.vec.String()
	var sb strings.Builder
	sb.Grow(len(bits))
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			sb.WriteByte('(')
		} else {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
