package bitvec

import (
	"math/bits"
	"strings"
)

// Block capacity bounds in bits. Capacity is fixed per vector instance;
// it trades block-scan cost against index-tree height.
const (
	MinCapacity     = 64
	MaxCapacity     = 4096
	DefaultCapacity = 512
)

// block is the leaf storage unit: a bounded word-packed run of bits.
// Bit i lives in words[i/64] at offset i%64 (LSB first). Bits at or
// above length are kept zero so whole-word popcounts stay valid.
type block struct {
	words  []uint64
	length int
}

func newBlock(capBits int) *block {
	return &block{words: make([]uint64, capBits/64)}
}

func (b *block) capacity() int {
	return len(b.words) * 64
}

func (b *block) full() bool {
	return b.length == b.capacity()
}

func (b *block) bit(i int) bool {
	return b.words[i/64]>>(uint(i)%64)&1 == 1
}

func (b *block) flip(i int) {
	b.words[i/64] ^= 1 << (uint(i) % 64)
}

// append adds a bit at the end. Caller ensures spare capacity.
func (b *block) append(bit bool) {
	if bit {
		b.words[b.length/64] |= 1 << (uint(b.length) % 64)
	}
	b.length++
}

// insert places bit at position i, shifting [i, length) up by one.
// Caller ensures spare capacity.
func (b *block) insert(i int, bit bool) {
	w, off := i/64, uint(i)%64
	mask := uint64(1)<<off - 1

	carry := b.words[w] >> 63
	b.words[w] = b.words[w]&mask | (b.words[w]&^mask)<<1
	if bit {
		b.words[w] |= 1 << off
	}

	// b.length is still the old length; the new last bit index is
	// b.length, living in word b.length/64.
	last := b.length / 64
	for k := w + 1; k <= last; k++ {
		next := b.words[k] >> 63
		b.words[k] = b.words[k]<<1 | carry
		carry = next
	}
	b.length++
}

// remove deletes the bit at position i, shifting (i, length) down by one,
// and returns the removed value.
func (b *block) remove(i int) bool {
	old := b.bit(i)
	w, off := i/64, uint(i)%64
	mask := uint64(1)<<off - 1

	var borrow uint64
	last := (b.length - 1) / 64
	for k := last; k > w; k-- {
		next := b.words[k] & 1
		b.words[k] = b.words[k]>>1 | borrow<<63
		borrow = next
	}
	b.words[w] = b.words[w]&mask | (b.words[w]>>1)&^mask | borrow<<63
	b.length--
	b.clearTail()
	return old
}

// clearTail zeroes every bit at or above length.
func (b *block) clearTail() {
	w, off := b.length/64, uint(b.length)%64
	if w >= len(b.words) {
		return
	}
	b.words[w] &= uint64(1)<<off - 1
	for k := w + 1; k < len(b.words); k++ {
		b.words[k] = 0
	}
}

// ones returns the 1-bit count of the whole block.
func (b *block) ones() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// rank1 returns the number of 1-bits in [0, i).
func (b *block) rank1(i int) int {
	w, off := i/64, uint(i)%64
	n := 0
	for k := 0; k < w; k++ {
		n += bits.OnesCount64(b.words[k])
	}
	if off > 0 {
		n += bits.OnesCount64(b.words[w] & (uint64(1)<<off - 1))
	}
	return n
}

// rank returns the number of occurrences of bit in [0, i).
func (b *block) rank(bit bool, i int) int {
	r1 := b.rank1(i)
	if bit {
		return r1
	}
	return i - r1
}

// selectBit returns the position of the j-th (1-indexed) occurrence of
// bit, or -1 if the block holds fewer than j occurrences.
func (b *block) selectBit(bit bool, j int) int {
	for w := 0; w*64 < b.length; w++ {
		word := b.words[w]
		limit := b.length - w*64
		if limit > 64 {
			limit = 64
		}
		count := bits.OnesCount64(word)
		if !bit {
			count = limit - bits.OnesCount64(word&(selectMask(limit)))
		}
		if j > count {
			j -= count
			continue
		}
		for k := 0; k < limit; k++ {
			if word>>uint(k)&1 == 1 == bit {
				j--
				if j == 0 {
					return w*64 + k
				}
			}
		}
	}
	return -1
}

// selectMask returns a mask covering the low limit bits.
func selectMask(limit int) uint64 {
	if limit >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(limit) - 1
}

// summary recomputes the block's aggregate from scratch.
func (b *block) summary() Summary {
	s := Summary{Bits: b.length, Ones: b.ones()}
	excess := 0
	for i := 0; i < b.length; i++ {
		if b.bit(i) {
			excess++
		} else {
			excess--
		}
		if excess < s.MinExcess {
			s.MinExcess = excess
		}
		if excess > s.MaxExcess {
			s.MaxExcess = excess
		}
	}
	return s
}

// split moves the upper half of the block into a new block of the same
// capacity and truncates the receiver to the lower half.
func (b *block) split() *block {
	mid := b.length / 2
	right := newBlock(b.capacity())
	for i := mid; i < b.length; i++ {
		right.append(b.bit(i))
	}
	b.length = mid
	b.clearTail()
	return right
}

// moveHead removes the first k bits of src and appends them to dst.
func moveHead(src, dst *block, k int) {
	for i := 0; i < k; i++ {
		dst.append(src.bit(i))
	}
	for i := 0; i < k; i++ {
		src.remove(0)
	}
}

// moveTail removes the last k bits of src and prepends them to dst,
// preserving order.
func moveTail(src, dst *block, k int) {
	start := src.length - k
	for i := 0; i < k; i++ {
		dst.insert(i, src.bit(start+i))
	}
	src.length = start
	src.clearTail()
}

// String renders the block's bits for debugging.
func (b *block) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		if b.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
