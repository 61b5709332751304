package rng

// Seed is a 32-bit linear-congruential generator state. The zero value is
// not a valid seed for drawing numbers — use Reseed to derive one.
type Seed uint32

// Tunable parameters of the generator and the weighted-selection kernel,
// fixed by the numerical contract in spec §4.1.
const (
	// Modulus is the LCG group size.
	Modulus uint64 = 2147483647
	// MulMix scales the caller-supplied mix-in term.
	MulMix uint64 = 16807
	// MulState scales the previous state.
	MulState uint64 = 48271
	// InitSeed is the starting state used by Reseed before any mix-ins are applied.
	InitSeed Seed = 418

	// BaseILF is the additive constant in the ideal-load-factor formula.
	BaseILF = 1.75
	// ILFCoeff scales the mean neighbor imbalance in the ideal-load-factor formula.
	ILFCoeff = 0.5
	// WeightCoeff scales the load-vs-ILF deviation inside the weight formula.
	WeightCoeff = 0.4

	// BinarySearchCutoff is the bucket-count threshold below which weighted
	// selection falls back to a linear scan instead of continuing to bisect.
	BinarySearchCutoff = 4
)
