// Package response implements YBool, the boolean response vector every
// tree in the forest is grown against: class queries over a masked row
// subset, majority-vote tie-breaking via a caller-supplied PRNG, and
// Hamming-distance error counting against an aligned prediction vector.
package response
