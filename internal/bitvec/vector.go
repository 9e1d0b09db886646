package bitvec

import "strings"

// Vector is a dynamic bit vector handle. It exclusively owns its index
// tree and all blocks; see the package documentation for the operation
// cost model and the (single-threaded) concurrency contract.
type Vector struct {
	nodes   []node
	free    []int32
	root    int32
	capBits int

	// path and inner are scratch space for mutation descents.
	path  []pathStep
	inner []int32
}

// pathStep records one fork visited on the way down to a leaf.
type pathStep struct {
	idx      int32
	wentLeft bool
}

// New creates a vector, empty unless seeded via options. Capacity
// options must precede content options.
func New(opts ...Option) (*Vector, error) {
	v := &Vector{root: nilNode, capBits: DefaultCapacity}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// MustNew is New for option sets known to be valid; it panics otherwise.
// Intended for tests and literals.
func MustNew(opts ...Option) *Vector {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// ensureRoot materializes the permitted-empty root block on first use.
func (v *Vector) ensureRoot() {
	if v.root == nilNode {
		v.root = v.allocLeaf(newBlock(v.capBits))
	}
}

// Len returns the number of bits held.
func (v *Vector) Len() int {
	if v.root == nilNode {
		return 0
	}
	return v.nodes[v.root].sum.Bits
}

// Ones returns the number of 1-bits held.
func (v *Vector) Ones() int {
	if v.root == nilNode {
		return 0
	}
	return v.nodes[v.root].sum.Ones
}

// Capacity returns the fixed per-block capacity in bits.
func (v *Vector) Capacity() int {
	return v.capBits
}

// Access returns the bit at position i.
func (v *Vector) Access(i int) (bool, error) {
	if i < 0 || i >= v.Len() {
		return false, ErrOutOfRange
	}
	idx := v.root
	for v.nodes[idx].kind == kindFork {
		left := v.nodes[idx].left
		if lb := v.nodes[left].sum.Bits; i < lb {
			idx = left
		} else {
			i -= lb
			idx = v.nodes[idx].right
		}
	}
	return v.nodes[idx].blk.bit(i), nil
}

// Rank returns the number of occurrences of bit in [0, i).
// i may equal Len(), giving the total count.
func (v *Vector) Rank(bit bool, i int) (int, error) {
	if i < 0 || i > v.Len() {
		return 0, ErrOutOfRange
	}
	if i == 0 {
		return 0, nil
	}
	acc := 0
	idx := v.root
	for v.nodes[idx].kind == kindFork {
		left := v.nodes[idx].left
		if lb := v.nodes[left].sum.Bits; i < lb {
			idx = left
		} else {
			if bit {
				acc += v.nodes[left].sum.Ones
			} else {
				acc += v.nodes[left].sum.Zeros()
			}
			i -= lb
			idx = v.nodes[idx].right
		}
	}
	return acc + v.nodes[idx].blk.rank(bit, i), nil
}

// Select returns the position of the j-th (1-indexed) occurrence of bit.
func (v *Vector) Select(bit bool, j int) (int, error) {
	if j < 1 {
		return 0, ErrNotFound
	}
	total := v.Ones()
	if !bit {
		total = v.Len() - total
	}
	if j > total {
		return 0, ErrNotFound
	}
	pos := 0
	idx := v.root
	for v.nodes[idx].kind == kindFork {
		left := v.nodes[idx].left
		count := v.nodes[left].sum.Ones
		if !bit {
			count = v.nodes[left].sum.Zeros()
		}
		if j <= count {
			idx = left
		} else {
			j -= count
			pos += v.nodes[left].sum.Bits
			idx = v.nodes[idx].right
		}
	}
	return pos + v.nodes[idx].blk.selectBit(bit, j), nil
}

// Push appends a bit at the end.
func (v *Vector) Push(bit bool) {
	// Insert only fails on a bad position; Len() is always valid.
	_ = v.Insert(v.Len(), bit)
}

// Height returns the height of the index tree (a single block is 1).
func (v *Vector) Height() int {
	if v.root == nilNode {
		return 0
	}
	return int(v.nodes[v.root].height) + 1
}

// BlockCount returns the number of leaf blocks.
func (v *Vector) BlockCount() int {
	if v.root == nilNode {
		return 0
	}
	return v.countLeaves(v.root)
}

func (v *Vector) countLeaves(idx int32) int {
	if v.nodes[idx].kind == kindLeaf {
		return 1
	}
	return v.countLeaves(v.nodes[idx].left) + v.countLeaves(v.nodes[idx].right)
}

// SpaceBits estimates the occupied storage in bits: full block capacity
// per leaf plus four words of metadata per arena slot.
func (v *Vector) SpaceBits() int {
	live := len(v.nodes) - len(v.free)
	return v.BlockCount()*v.capBits + live*4*64
}

// String renders the vector's bits. Use sparingly for large vectors.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.Len())
	v.appendTo(&sb, v.root)
	return sb.String()
}

func (v *Vector) appendTo(sb *strings.Builder, idx int32) {
	if idx == nilNode {
		return
	}
	if v.nodes[idx].kind == kindLeaf {
		sb.WriteString(v.nodes[idx].blk.String())
		return
	}
	v.appendTo(sb, v.nodes[idx].left)
	v.appendTo(sb, v.nodes[idx].right)
}
