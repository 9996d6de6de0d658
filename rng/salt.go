package rng

// salt is mixed into every PRNG's initial state. It is the module's
// sole package-level value, fixed before any PRNG is constructed and
// never mutated afterward (see the "Global state" design note).
//
// Ordinary consumption of this module -- `go build`, `go get`, any
// caller importing rng without special test machinery -- compiles only
// this file and gets the non-zero value below, so a library consumer
// never accidentally depends on the exact output sequence for a given
// seed. salt_test.go overrides this to 0 via init(), but only inside
// this package's own test binary (`go test ./rng/...`): _test.go files
// are never linked into any other package's build, so every other
// package's tests -- and every real caller -- see the production salt.
// That is what keeps this package's bit-exact test vectors reproducible
// without leaking a predictable seed->output mapping into production.
var salt uint64 = 0x9e3779b97f4a7c15
