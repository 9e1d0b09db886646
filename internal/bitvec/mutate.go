package bitvec

// descend walks from the root to the leaf covering position i, recording
// every fork on v.path, and returns the leaf slot and the position
// relative to its block. Exact subtree boundaries resolve to the right
// child, so i == Len() lands past the last bit of the rightmost block.
func (v *Vector) descend(i int) (int32, int) {
	v.path = v.path[:0]
	idx := v.root
	for v.nodes[idx].kind == kindFork {
		left := v.nodes[idx].left
		if lb := v.nodes[left].sum.Bits; i < lb {
			v.path = append(v.path, pathStep{idx: idx, wentLeft: true})
			idx = left
		} else {
			i -= lb
			v.path = append(v.path, pathStep{idx: idx, wentLeft: false})
			idx = v.nodes[idx].right
		}
	}
	return idx, i
}

// repairPath refreshes and rebalances every fork recorded on v.path,
// bottom-up. O(1) per node given the children's cached summaries.
func (v *Vector) repairPath() {
	for k := len(v.path) - 1; k >= 0; k-- {
		p := v.path[k].idx
		v.refresh(p)
		v.rebalance(p)
	}
}

// Insert places bit so it becomes position i, shifting [i, Len()) right
// by one. i may equal Len() (append).
func (v *Vector) Insert(i int, bit bool) error {
	if i < 0 || i > v.Len() {
		return ErrOutOfRange
	}
	v.ensureRoot()
	idx, rel := v.descend(i)
	blk := v.nodes[idx].blk

	if !blk.full() {
		blk.insert(rel, bit)
		v.refresh(idx)
		v.repairPath()
		return nil
	}

	// Block at capacity: split it in half and turn the leaf slot into a
	// fork over the two halves, then insert into the covering half.
	rightBlk := blk.split()
	leftLeaf := v.allocLeaf(blk)
	rightLeaf := v.allocLeaf(rightBlk)
	v.nodes[idx] = node{kind: kindFork, left: leftLeaf, right: rightLeaf}

	if lb := v.nodes[leftLeaf].sum.Bits; rel <= lb {
		v.nodes[leftLeaf].blk.insert(rel, bit)
		v.refresh(leftLeaf)
	} else {
		v.nodes[rightLeaf].blk.insert(rel-lb, bit)
		v.refresh(rightLeaf)
	}
	v.refresh(idx)
	v.repairPath()
	return nil
}

// Delete removes the bit at position i, shifting (i, Len()) left by one.
func (v *Vector) Delete(i int) error {
	if i < 0 || i >= v.Len() {
		return ErrOutOfRange
	}
	idx, rel := v.descend(i)
	blk := v.nodes[idx].blk
	blk.remove(rel)
	v.refresh(idx)

	if len(v.path) > 0 && blk.length < v.capBits/2 {
		v.repairUnderflow(idx)
	}
	v.repairPath()
	return nil
}

// Flip toggles the bit at position i in place. The tree structure is
// unchanged; only the one-counts and excess extrema on the path need
// refreshing.
func (v *Vector) Flip(i int) error {
	if i < 0 || i >= v.Len() {
		return ErrOutOfRange
	}
	idx, rel := v.descend(i)
	v.nodes[idx].blk.flip(rel)
	v.refresh(idx)
	for k := len(v.path) - 1; k >= 0; k-- {
		v.refresh(v.path[k].idx)
	}
	return nil
}

// repairUnderflow restores block occupancy after a delete left leafIdx
// below half capacity. The donor is the adjacent edge leaf inside the
// AVL sibling subtree: merge when the combined bits fit in one block,
// otherwise redistribute toward equal halves. The sibling-internal path
// only needs summary refreshes; its structure is untouched.
func (v *Vector) repairUnderflow(leafIdx int32) {
	parentStep := v.path[len(v.path)-1]
	parent := parentStep.idx
	weLeft := parentStep.wentLeft

	sib := v.nodes[parent].left
	if weLeft {
		sib = v.nodes[parent].right
	}

	v.inner = v.inner[:0]
	edge := sib
	for v.nodes[edge].kind == kindFork {
		v.inner = append(v.inner, edge)
		if weLeft {
			edge = v.nodes[edge].left
		} else {
			edge = v.nodes[edge].right
		}
	}

	my := v.nodes[leafIdx].blk
	eb := v.nodes[edge].blk
	combined := my.length + eb.length

	if combined <= v.capBits {
		// Merge: move every bit into the edge leaf in sequence order,
		// then splice our leaf out by promoting the sibling into the
		// parent slot.
		if weLeft {
			moveTail(my, eb, my.length)
		} else {
			moveHead(my, eb, my.length)
		}
		v.refresh(edge)
		for k := len(v.inner) - 1; k >= 0; k-- {
			v.refresh(v.inner[k])
		}
		v.nodes[parent] = v.nodes[sib]
		v.release(sib)
		v.release(leafIdx)
		return
	}

	// Redistribute: pull bits from the donor's adjacent end until both
	// blocks are at least half full, never draining the donor below
	// half. A leaf may stay marginally underfull when the donor has
	// nothing to spare; occupancy remains Θ(capacity).
	want := combined/2 - my.length
	if avail := eb.length - v.capBits/2; avail < want {
		want = avail
	}
	if want <= 0 {
		return
	}
	if weLeft {
		moveHead(eb, my, want)
	} else {
		moveTail(eb, my, want)
	}
	v.refresh(leafIdx)
	v.refresh(edge)
	for k := len(v.inner) - 1; k >= 0; k-- {
		v.refresh(v.inner[k])
	}
}
