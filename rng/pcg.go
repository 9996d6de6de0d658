package rng

import (
	"math"
	"math/bits"
)

// pcgMultiplier is the 64-bit LCG multiplier used by the reference PCG
// family (Knuth's MMIX constant).
const pcgMultiplier uint64 = 6364136223846793005

// PRNG is a single counter-style pseudo-random stream: a 64-bit LCG
// state with a PCG XSH-RR output permutation to 32 bits. PRNG is not
// safe for concurrent use by multiple goroutines; each stream (tree,
// shadow column, permutation, ...) gets its own PRNG from Factory.
type PRNG struct {
	state     uint64
	increment uint64
}

// New constructs a PRNG stream from seed and increment. increment must
// be strictly positive; two streams are independent as long as their
// increments differ. The initial state is (seed + salt + increment),
// advanced by one LCG step before the first output is drawn.
func New(seed, increment uint64) (*PRNG, error) {
	if increment == 0 {
		return nil, ErrZeroIncrement
	}
	p := &PRNG{increment: increment}
	p.state = seed + salt + increment
	p.state = p.state*pcgMultiplier + p.increment
	return p, nil
}

// pcgOutput permutes the raw 64-bit LCG state into a 32-bit output via
// the XSH-RR (xorshift, random rotate) transform.
func pcgOutput(state uint64) uint32 {
	xorshifted := uint32(((state >> 18) ^ state) >> 27)
	rot := uint32(state >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}

// step advances the LCG and returns the pre-advance state, which is
// what pcgOutput is applied to.
func (p *PRNG) step() uint64 {
	old := p.state
	p.state = old*pcgMultiplier + p.increment
	return old
}

// NextU32 returns the next 32-bit output in the stream.
func (p *PRNG) NextU32() uint32 {
	return pcgOutput(p.step())
}

// NextU64 concatenates two NextU32 draws, high word first.
func (p *PRNG) NextU64() uint64 {
	hi := uint64(p.NextU32())
	lo := uint64(p.NextU32())
	return (hi << 32) | lo
}

// NextUsize returns a uniform random value in [0, upTo) using Lemire's
// unbiased bounded-multiplication method over 32-bit draws. upTo == 0
// always returns 0.
func (p *PRNG) NextUsize(upTo uint32) uint32 {
	if upTo == 0 {
		return 0
	}
	x := p.NextU32()
	m := uint64(x) * uint64(upTo)
	l := uint32(m)
	if l < upTo {
		threshold := uint32((uint64(1) << 32) % uint64(upTo))
		for l < threshold {
			x = p.NextU32()
			m = uint64(x) * uint64(upTo)
			l = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// RandUni returns a uniform float64 in (0, 1]; the rejection loop
// excludes exactly zero so callers can safely take logarithms of the
// result (used by Algorithm L in Sample).
func (p *PRNG) RandUni() float64 {
	const mantissaBits = 53
	const maxMantissa = (uint64(1) << mantissaBits) - 1
	for {
		candidate := p.NextU64() >> (64 - mantissaBits)
		if candidate != 0 {
			return float64(candidate) / float64(maxMantissa)
		}
	}
}

// Shuffle performs an in-place Fisher-Yates shuffle of a.
func (p *PRNG) Shuffle(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := int(p.NextUsize(uint32(i + 1)))
		a[i], a[j] = a[j], a[i]
	}
}

// Sample draws k distinct indices from [0, n) using Algorithm L
// reservoir sampling. Every k-subset of [0, n) is equally likely. The
// returned slice has length exactly k and is NOT sorted (callers that
// need sorted output, e.g. mask.New, sort it themselves). k > n is a
// Configuration error.
func (p *PRNG) Sample(n, k int) ([]int, error) {
	if n < 0 || k < 0 {
		return nil, ErrNegativeSize
	}
	if k > n {
		return nil, ErrSampleTooLarge
	}
	if k == 0 {
		return []int{}, nil
	}

	reservoir := make([]int, k)
	for i := 0; i < k; i++ {
		reservoir[i] = i
	}
	if k == n {
		return reservoir, nil
	}

	w := math.Exp(math.Log(p.RandUni()) / float64(k))
	i := k - 1
	for i < n-1 {
		i += int(math.Floor(math.Log(p.RandUni())/math.Log(1-w))) + 1
		if i < n {
			j := int(p.NextUsize(uint32(k)))
			reservoir[j] = i
		}
		w *= math.Exp(math.Log(p.RandUni()) / float64(k))
	}
	return reservoir, nil
}
