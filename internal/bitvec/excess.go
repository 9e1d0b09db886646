package bitvec

// Parenthesis-matching searches. The vector interprets 1-bits as '(' and
// 0-bits as ')'; E(i) denotes the running ones-minus-zeros excess over
// the prefix [0, i). The searches below prune whole subtrees using the
// cached MinExcess/MaxExcess aggregates, so they run in O(log n) plus
// one block scan per visited leaf.
//
// The cached extrema cover prefix boundaries k = 0..len of a subtree,
// i.e. they include the values shared with both neighbouring regions. A
// pruning test can therefore pass on a boundary value alone, in which
// case the descent finds nothing and the search resumes where it left
// off; the shared value was already examined in the adjacent region, so
// no hit is ever missed.

// searchFrame is one pending subtree in an excess search.
type searchFrame struct {
	idx int32
	pos int // absolute position of the subtree's first bit
	e   int // E(pos)
}

// ExcessAt returns E(i), the excess of the prefix [0, i).
func (v *Vector) ExcessAt(i int) (int, error) {
	r, err := v.Rank(true, i)
	if err != nil {
		return 0, err
	}
	return 2*r - i, nil
}

// FindClose returns the position of the ')' matching the '(' at o.
func (v *Vector) FindClose(o int) (int, error) {
	if o < 0 || o >= v.Len() {
		return 0, ErrOutOfRange
	}
	if b, _ := v.Access(o); !b {
		return 0, ErrNoMatch
	}
	t, _ := v.ExcessAt(o)
	c := v.fwdSearch(o+1, t)
	if c < 0 {
		return 0, ErrNoMatch
	}
	return c, nil
}

// FindOpen returns the position of the '(' matching the ')' at c.
func (v *Vector) FindOpen(c int) (int, error) {
	if c < 0 || c >= v.Len() {
		return 0, ErrOutOfRange
	}
	if b, _ := v.Access(c); b {
		return 0, ErrNoMatch
	}
	t, _ := v.ExcessAt(c)
	o := v.bwdSearch(c, t-1)
	if o < 0 {
		return 0, ErrNoMatch
	}
	return o, nil
}

// Enclose returns the position of the nearest '(' strictly enclosing the
// node opened at position o, i.e. the opening bit of its parent in the
// encoded ordinal tree. ErrNoMatch means o opens the outermost pair.
func (v *Vector) Enclose(o int) (int, error) {
	if o < 0 || o >= v.Len() {
		return 0, ErrOutOfRange
	}
	if b, _ := v.Access(o); !b {
		return 0, ErrNoMatch
	}
	t, _ := v.ExcessAt(o)
	p := v.bwdSearch(o, t-1)
	if p < 0 {
		return 0, ErrNoMatch
	}
	return p, nil
}

// queryDescend walks to the leaf covering position i, recording forks on
// v.path, and returns the leaf slot, the leaf's start position and
// E(start).
func (v *Vector) queryDescend(i int) (idx int32, start, e int) {
	v.path = v.path[:0]
	idx = v.root
	for v.nodes[idx].kind == kindFork {
		left := v.nodes[idx].left
		if lb := v.nodes[left].sum.Bits; i-start < lb {
			v.path = append(v.path, pathStep{idx: idx, wentLeft: true})
			idx = left
		} else {
			start += lb
			e += v.nodes[left].sum.Excess()
			v.path = append(v.path, pathStep{idx: idx, wentLeft: false})
			idx = v.nodes[idx].right
		}
	}
	return idx, start, e
}

// fwdSearch returns the smallest j >= from with E(j+1) == t, or -1.
func (v *Vector) fwdSearch(from, t int) int {
	if from >= v.Len() {
		return -1
	}
	leaf, start, e := v.queryDescend(from)
	blk := v.nodes[leaf].blk

	// Scan the remainder of the covering leaf.
	rel := from - start
	val := e + 2*blk.rank1(rel) - rel // E(from)
	for k := rel; k < blk.length; k++ {
		if blk.bit(k) {
			val++
		} else {
			val--
		}
		if val == t {
			return start + k
		}
	}

	// Unwind: examine each right sibling of the path in order.
	cur := val // E at the end of the searched region
	pos := start + blk.length
	stack := make([]searchFrame, 0, 64)
	for k := len(v.path) - 1; k >= 0; k-- {
		if !v.path[k].wentLeft {
			continue
		}
		sib := v.nodes[v.path[k].idx].right
		sum := v.nodes[sib].sum
		if t >= cur+sum.MinExcess && t <= cur+sum.MaxExcess {
			if j := v.closeIn(&stack, sib, pos, cur, t); j >= 0 {
				return j
			}
		}
		cur += sum.Excess()
		pos += sum.Bits
	}
	return -1
}

// closeIn finds the smallest j in the subtree with E(j+1) == t.
func (v *Vector) closeIn(stack *[]searchFrame, idx int32, pos, e, t int) int {
	s := (*stack)[:0]
	s = append(s, searchFrame{idx: idx, pos: pos, e: e})
	for len(s) > 0 {
		f := s[len(s)-1]
		s = s[:len(s)-1]
		n := &v.nodes[f.idx]
		if n.kind == kindLeaf {
			val := f.e
			for k := 0; k < n.blk.length; k++ {
				if n.blk.bit(k) {
					val++
				} else {
					val--
				}
				if val == t {
					return f.pos + k
				}
			}
			continue
		}
		ls := v.nodes[n.left].sum
		// Right is pushed first so the left region is explored first.
		s = append(s, searchFrame{idx: n.right, pos: f.pos + ls.Bits, e: f.e + ls.Excess()})
		if t >= f.e+ls.MinExcess && t <= f.e+ls.MaxExcess {
			s = append(s, searchFrame{idx: n.left, pos: f.pos, e: f.e})
		}
	}
	return -1
}

// bwdSearch returns the largest j < from with E(j) == t, or -1.
func (v *Vector) bwdSearch(from, t int) int {
	if from <= 0 {
		return -1
	}
	leaf, start, e := v.queryDescend(from - 1)
	blk := v.nodes[leaf].blk

	// Scan the covered leaf backward from position from-1.
	rel := from - start // first excluded relative position, in [1, len]
	if rel > blk.length {
		rel = blk.length
	}
	val := e + 2*blk.rank1(rel) - rel // E(start + rel)
	for k := rel - 1; k >= 0; k-- {
		if blk.bit(k) {
			val--
		} else {
			val++
		}
		// val is now E(start + k)
		if val == t {
			return start + k
		}
	}

	// Unwind: examine each left sibling of the path, rightmost first.
	cur := val // E at the start of the searched region
	pos := start
	stack := make([]searchFrame, 0, 64)
	for k := len(v.path) - 1; k >= 0; k-- {
		if v.path[k].wentLeft {
			continue
		}
		sib := v.nodes[v.path[k].idx].left
		sum := v.nodes[sib].sum
		sibE := cur - sum.Excess()
		if t >= sibE+sum.MinExcess && t <= sibE+sum.MaxExcess {
			if j := v.openIn(&stack, sib, pos-sum.Bits, sibE, t); j >= 0 {
				return j
			}
		}
		cur = sibE
		pos -= sum.Bits
	}
	return -1
}

// openIn finds the largest j in the subtree with E(j) == t.
func (v *Vector) openIn(stack *[]searchFrame, idx int32, pos, e, t int) int {
	s := (*stack)[:0]
	s = append(s, searchFrame{idx: idx, pos: pos, e: e})
	for len(s) > 0 {
		f := s[len(s)-1]
		s = s[:len(s)-1]
		n := &v.nodes[f.idx]
		if n.kind == kindLeaf {
			val := f.e + 2*n.blk.ones() - n.blk.length // E at leaf end
			for k := n.blk.length - 1; k >= 0; k-- {
				if n.blk.bit(k) {
					val--
				} else {
					val++
				}
				if val == t {
					return f.pos + k
				}
			}
			continue
		}
		ls := v.nodes[n.left].sum
		rs := v.nodes[n.right].sum
		// Left is pushed first so the right region is explored first.
		s = append(s, searchFrame{idx: n.left, pos: f.pos, e: f.e})
		re := f.e + ls.Excess()
		if t >= re+rs.MinExcess && t <= re+rs.MaxExcess {
			s = append(s, searchFrame{idx: n.right, pos: f.pos + ls.Bits, e: re})
		}
	}
	return -1
}
