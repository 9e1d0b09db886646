package bitvec

// Summary holds aggregated metrics for a bit span.
// This is the cached per-subtree value that makes rank, select and
// parenthesis matching sub-linear; it forms a monoid under Add.
type Summary struct {
	// Bits is the number of bits in the span.
	Bits int

	// Ones is the number of 1-bits in the span.
	Ones int

	// MinExcess is the minimum of the running (ones minus zeros) prefix
	// sum over the span, taken at every boundary k = 0..Bits. It is
	// always <= 0 because the k = 0 boundary is included.
	MinExcess int

	// MaxExcess is the corresponding maximum, always >= 0.
	MaxExcess int
}

// Excess returns the total ones-minus-zeros delta of the span.
func (s Summary) Excess() int {
	return 2*s.Ones - s.Bits
}

// Zeros returns the number of 0-bits in the span.
func (s Summary) Zeros() int {
	return s.Bits - s.Ones
}

// Add combines two adjacent spans (monoid operation).
// The right span's excess extrema are shifted by the left span's total
// excess before merging, because its prefix sums start where the left
// span ends.
func (s Summary) Add(other Summary) Summary {
	if s.Bits == 0 {
		return other
	}
	if other.Bits == 0 {
		return s
	}

	e := s.Excess()
	return Summary{
		Bits:      s.Bits + other.Bits,
		Ones:      s.Ones + other.Ones,
		MinExcess: min(s.MinExcess, e+other.MinExcess),
		MaxExcess: max(s.MaxExcess, e+other.MaxExcess),
	}
}

// Zero returns the identity element for the summary monoid.
func (Summary) Zero() Summary {
	return Summary{}
}

// IsZero returns true if this is the zero/identity summary.
func (s Summary) IsZero() bool {
	return s.Bits == 0
}
