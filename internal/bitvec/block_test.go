package bitvec

import (
	"strings"
	"testing"
)

// blockFromString builds a block seeded with the given '0'/'1' content.
func blockFromString(t *testing.T, capBits int, s string) *block {
	t.Helper()
	if len(s) > capBits {
		t.Fatalf("seed %q longer than capacity %d", s, capBits)
	}
	b := newBlock(capBits)
	for _, c := range s {
		b.append(c == '1')
	}
	return b
}

func TestBlockInsert(t *testing.T) {
	tests := []struct {
		name string
		seed string
		pos  int
		bit  bool
		want string
	}{
		{"into empty", "", 0, true, "1"},
		{"front", "010", 0, true, "1010"},
		{"middle", "010", 1, true, "0110"},
		{"end", "010", 3, true, "0101"},
		{"zero front", "111", 0, false, "0111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := blockFromString(t, 64, tt.seed)
			b.insert(tt.pos, tt.bit)
			if got := b.String(); got != tt.want {
				t.Errorf("insert(%d, %v) = %q, want %q", tt.pos, tt.bit, got, tt.want)
			}
		})
	}
}

func TestBlockInsertWordBoundary(t *testing.T) {
	// A 1 at position 63 must carry into the second word when a bit is
	// inserted below it.
	b := newBlock(128)
	for i := 0; i < 64; i++ {
		b.append(i == 63)
	}
	b.insert(0, true)
	if b.length != 65 {
		t.Fatalf("length = %d, want 65", b.length)
	}
	if !b.bit(0) || !b.bit(64) {
		t.Errorf("bits 0 and 64 should be set: %q", b.String())
	}
	if got := b.ones(); got != 2 {
		t.Errorf("ones = %d, want 2", got)
	}
}

func TestBlockRemove(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		pos     int
		removed bool
		want    string
	}{
		{"only bit", "1", 0, true, ""},
		{"front", "101", 0, true, "01"},
		{"middle", "101", 1, false, "11"},
		{"end", "101", 2, true, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := blockFromString(t, 64, tt.seed)
			if got := b.remove(tt.pos); got != tt.removed {
				t.Errorf("remove(%d) returned %v, want %v", tt.pos, got, tt.removed)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("after remove(%d): %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}

func TestBlockRemoveBorrow(t *testing.T) {
	// Removing from the first word pulls the low bit of the second word
	// across the boundary.
	b := newBlock(128)
	for i := 0; i < 65; i++ {
		b.append(i == 64)
	}
	b.remove(0)
	if b.length != 64 {
		t.Fatalf("length = %d, want 64", b.length)
	}
	if !b.bit(63) {
		t.Errorf("bit 63 should hold the borrowed 1: %q", b.String())
	}
	if got := b.ones(); got != 1 {
		t.Errorf("ones = %d, want 1", got)
	}
	// Cleared tail must not pollute popcounts.
	if b.words[1] != 0 {
		t.Errorf("tail word not cleared: %#x", b.words[1])
	}
}

func TestBlockRankSelect(t *testing.T) {
	seed := "1101001110"
	b := blockFromString(t, 64, seed)

	for i := 0; i <= len(seed); i++ {
		wantOnes := strings.Count(seed[:i], "1")
		if got := b.rank(true, i); got != wantOnes {
			t.Errorf("rank(1, %d) = %d, want %d", i, got, wantOnes)
		}
		if got := b.rank(false, i); got != i-wantOnes {
			t.Errorf("rank(0, %d) = %d, want %d", i, got, i-wantOnes)
		}
	}

	onePositions := []int{0, 1, 3, 6, 7, 8}
	for j, want := range onePositions {
		if got := b.selectBit(true, j+1); got != want {
			t.Errorf("select(1, %d) = %d, want %d", j+1, got, want)
		}
	}
	zeroPositions := []int{2, 4, 5, 9}
	for j, want := range zeroPositions {
		if got := b.selectBit(false, j+1); got != want {
			t.Errorf("select(0, %d) = %d, want %d", j+1, got, want)
		}
	}
	if got := b.selectBit(true, 7); got != -1 {
		t.Errorf("select past total = %d, want -1", got)
	}
}

func TestBlockSelectAcrossWords(t *testing.T) {
	b := newBlock(192)
	for i := 0; i < 130; i++ {
		b.append(i%3 == 0) // ones at 0, 3, 6, ...
	}
	if got := b.selectBit(true, 25); got != 72 {
		t.Errorf("select(1, 25) = %d, want 72", got)
	}
	if got := b.selectBit(false, 50); got != 74 {
		t.Errorf("select(0, 50) = %d, want 74", got)
	}
}

func TestBlockSummary(t *testing.T) {
	tests := []struct {
		seed string
		want Summary
	}{
		{"", Summary{}},
		{"10", Summary{Bits: 2, Ones: 1, MinExcess: 0, MaxExcess: 1}},
		{"1100", Summary{Bits: 4, Ones: 2, MinExcess: 0, MaxExcess: 2}},
		{"0011", Summary{Bits: 4, Ones: 2, MinExcess: -2, MaxExcess: 0}},
		{"101100", Summary{Bits: 6, Ones: 3, MinExcess: 0, MaxExcess: 2}},
	}
	for _, tt := range tests {
		b := blockFromString(t, 64, tt.seed)
		if got := b.summary(); got != tt.want {
			t.Errorf("summary(%q) = %+v, want %+v", tt.seed, got, tt.want)
		}
	}
}

func TestBlockSplit(t *testing.T) {
	seed := strings.Repeat("10", 32) // 64 bits
	b := blockFromString(t, 64, seed)
	right := b.split()

	if got := b.String() + right.String(); got != seed {
		t.Fatalf("split lost content: %q + %q", b.String(), right.String())
	}
	if b.length != 32 || right.length != 32 {
		t.Errorf("split lengths = %d, %d, want 32, 32", b.length, right.length)
	}
	if right.capacity() != 64 {
		t.Errorf("right capacity = %d, want 64", right.capacity())
	}
}

func TestBlockMove(t *testing.T) {
	t.Run("moveHead", func(t *testing.T) {
		src := blockFromString(t, 64, "110010")
		dst := blockFromString(t, 64, "01")
		moveHead(src, dst, 3)
		if got := dst.String(); got != "01110" {
			t.Errorf("dst = %q, want %q", got, "01110")
		}
		if got := src.String(); got != "010" {
			t.Errorf("src = %q, want %q", got, "010")
		}
	})
	t.Run("moveTail", func(t *testing.T) {
		src := blockFromString(t, 64, "110010")
		dst := blockFromString(t, 64, "01")
		moveTail(src, dst, 3)
		if got := dst.String(); got != "01001" {
			t.Errorf("dst = %q, want %q", got, "01001")
		}
		if got := src.String(); got != "110" {
			t.Errorf("src = %q, want %q", got, "110")
		}
	})
}
