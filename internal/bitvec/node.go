package bitvec

// nodeKind tags the two node shapes of the index tree.
type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindFork
)

// nilNode marks an absent arena reference.
const nilNode = int32(-1)

// node is one slot in the index arena: either a leaf owning a block or a
// fork owning exactly two children. Nodes carry no parent references;
// mutation walks record an explicit path stack instead.
type node struct {
	kind   nodeKind
	height uint8 // 0 for leaves
	left   int32 // fork children; nilNode on leaves
	right  int32
	sum    Summary
	blk    *block // leaf payload; nil on forks
}

// alloc returns a free arena slot, reusing merged-away slots first.
func (v *Vector) alloc() int32 {
	if n := len(v.free); n > 0 {
		idx := v.free[n-1]
		v.free = v.free[:n-1]
		return idx
	}
	v.nodes = append(v.nodes, node{})
	return int32(len(v.nodes) - 1)
}

func (v *Vector) allocLeaf(blk *block) int32 {
	idx := v.alloc()
	v.nodes[idx] = node{kind: kindLeaf, left: nilNode, right: nilNode, blk: blk, sum: blk.summary()}
	return idx
}

func (v *Vector) allocFork(left, right int32) int32 {
	idx := v.alloc()
	v.nodes[idx] = node{kind: kindFork, left: left, right: right}
	v.refresh(idx)
	return idx
}

// release returns a slot to the free list.
func (v *Vector) release(idx int32) {
	v.nodes[idx] = node{left: nilNode, right: nilNode}
	v.free = append(v.free, idx)
}

// refresh recomputes a node's cached summary (and height, for forks)
// from its immediate children or block. O(1) for forks given the
// children's cached summaries.
func (v *Vector) refresh(idx int32) {
	n := &v.nodes[idx]
	if n.kind == kindLeaf {
		n.sum = n.blk.summary()
		n.height = 0
		return
	}
	l, r := &v.nodes[n.left], &v.nodes[n.right]
	n.sum = l.sum.Add(r.sum)
	n.height = max(l.height, r.height) + 1
}

// balanceFactor returns height(right) - height(left) for a fork.
func (v *Vector) balanceFactor(idx int32) int {
	n := &v.nodes[idx]
	return int(v.nodes[n.right].height) - int(v.nodes[n.left].height)
}

// rotateLeft rotates the subtree rooted at slot p so its right child
// becomes the subtree root. Slot p keeps addressing the subtree root, so
// the parent's reference stays valid; the freed arrangement reuses the
// old right child's slot for the new left child.
func (v *Vector) rotateLeft(p int32) {
	r := v.nodes[p].right
	pn := v.nodes[p]
	rn := v.nodes[r]
	pn.right = rn.left
	v.nodes[r] = pn
	rn.left = r
	v.nodes[p] = rn
	v.refresh(r)
	v.refresh(p)
}

// rotateRight is the mirror of rotateLeft.
func (v *Vector) rotateRight(p int32) {
	l := v.nodes[p].left
	pn := v.nodes[p]
	ln := v.nodes[l]
	pn.left = ln.right
	v.nodes[l] = pn
	ln.right = l
	v.nodes[p] = ln
	v.refresh(l)
	v.refresh(p)
}

// rebalance restores the AVL invariant at slot idx after its summary and
// height have been refreshed. Double rotations recompute summaries for
// every touched node, so a rotation chain stays O(log n) overall.
func (v *Vector) rebalance(idx int32) {
	if v.nodes[idx].kind != kindFork {
		return
	}
	bf := v.balanceFactor(idx)
	switch {
	case bf > 1:
		if v.nodes[v.nodes[idx].right].kind == kindFork && v.balanceFactor(v.nodes[idx].right) < 0 {
			v.rotateRight(v.nodes[idx].right)
		}
		v.rotateLeft(idx)
	case bf < -1:
		if v.nodes[v.nodes[idx].left].kind == kindFork && v.balanceFactor(v.nodes[idx].left) > 0 {
			v.rotateLeft(v.nodes[idx].left)
		}
		v.rotateRight(idx)
	}
}
