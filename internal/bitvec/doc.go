// Package bitvec provides a dynamic succinct bit vector supporting
// access, insert, delete, flip, rank and select in O(log n) time.
//
// Bits are stored in fixed-capacity word-packed blocks at the leaves of a
// height-balanced (AVL) index tree. Every node caches a Summary of its
// subtree (bit count, one count, and parenthesis-excess extrema), so
// queries descend by comparing the target against the left child's
// summary instead of scanning. Mutations repair summaries bottom-up along
// the descent path; blocks split when full and merge or redistribute with
// a neighbour when they fall below half capacity.
//
// The excess extrema make the vector usable as the storage layer for a
// balanced-parenthesis tree encoding: FindClose, FindOpen and Enclose
// locate matching parentheses by skipping whole subtrees whose cached
// excess range cannot contain the target.
//
// A Vector is not safe for concurrent use. Callers that share an instance
// across goroutines must provide their own synchronization.
//
// Basic usage:
//
//	v := bitvec.MustNew()
//	v.Push(true)
//	v.Push(false)
//	_ = v.Insert(1, true)      // 110
//	r, _ := v.Rank(true, 2)    // 2
//	p, _ := v.Select(false, 1) // 2
package bitvec
