package bitvec

import "testing"

func TestSummaryAdd(t *testing.T) {
	// "1100" followed by "0011".
	left := Summary{Bits: 4, Ones: 2, MinExcess: 0, MaxExcess: 2}
	right := Summary{Bits: 4, Ones: 2, MinExcess: -2, MaxExcess: 0}

	got := left.Add(right)
	want := Summary{Bits: 8, Ones: 4, MinExcess: -2, MaxExcess: 2}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
	if got.Excess() != 0 {
		t.Errorf("Excess = %d, want 0", got.Excess())
	}
	if got.Zeros() != 4 {
		t.Errorf("Zeros = %d, want 4", got.Zeros())
	}
}

func TestSummaryAddIdentity(t *testing.T) {
	s := Summary{Bits: 3, Ones: 1, MinExcess: -1, MaxExcess: 1}
	zero := Summary{}.Zero()
	if got := s.Add(zero); got != s {
		t.Errorf("s.Add(zero) = %+v, want %+v", got, s)
	}
	if got := zero.Add(s); got != s {
		t.Errorf("zero.Add(s) = %+v, want %+v", got, s)
	}
	if !zero.IsZero() || s.IsZero() {
		t.Error("IsZero misclassifies")
	}
}

func TestSummaryAddAssociative(t *testing.T) {
	spans := []string{"11", "010", "0011", "1", "000"}
	sums := make([]Summary, len(spans))
	for i, s := range spans {
		b := blockFromString(t, 64, s)
		sums[i] = b.summary()
	}
	leftFold := sums[0]
	for _, s := range sums[1:] {
		leftFold = leftFold.Add(s)
	}
	rightFold := sums[len(sums)-1]
	for i := len(sums) - 2; i >= 0; i-- {
		rightFold = sums[i].Add(rightFold)
	}
	if leftFold != rightFold {
		t.Errorf("fold order changed result: %+v vs %+v", leftFold, rightFold)
	}

	// Both folds must agree with a flat recompute.
	flat := blockFromString(t, 64, "11"+"010"+"0011"+"1"+"000")
	if want := flat.summary(); leftFold != want {
		t.Errorf("folded = %+v, flat = %+v", leftFold, want)
	}
}
