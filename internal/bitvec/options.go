package bitvec

// Option configures a Vector during creation.
type Option func(*Vector) error

// WithCapacity fixes the block capacity in bits for the vector's
// lifetime. It must be a multiple of 64 in [MinCapacity, MaxCapacity].
func WithCapacity(capBits int) Option {
	return func(v *Vector) error {
		if capBits < MinCapacity || capBits > MaxCapacity || capBits%64 != 0 {
			return ErrBadCapacity
		}
		if v.root != nilNode {
			// Capacity is fixed once blocks exist; order capacity
			// options before content options.
			return ErrBadCapacity
		}
		v.capBits = capBits
		return nil
	}
}

// WithBitString seeds the vector with the given '0'/'1' content.
func WithBitString(s string) Option {
	return func(v *Vector) error {
		for _, c := range s {
			switch c {
			case '0':
				v.Push(false)
			case '1':
				v.Push(true)
			default:
				return ErrBadBitString
			}
		}
		return nil
	}
}
