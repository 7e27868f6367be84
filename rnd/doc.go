// Package rnd is the randomness source behind every sx generator.
//
// A Stream owns one PCG pseudo-random engine. Streams are cheap, are NOT safe
// for concurrent use, and are meant to be owned by exactly one goroutine for
// their whole life: create one per worker and hand it to the generators that
// worker samples.
//
// Seeds come from a single process-wide counter. The counter starts at a value
// drawn from OS entropy and every call to Next takes the following value
// atomically, so two streams never share a seed. The counter is the only
// synchronised state in the package:
//
//	rnd.SetCounter(42)    // reproducible runs
//	a, b := rnd.Next(), rnd.Next()
//	// a.Seed() == 43, b.Seed() == 44
//
// Re-running with the same counter value and the same stream creation order
// reproduces every draw. Streams(n) allocates n streams in index order, which
// keeps concurrent workers reproducible regardless of goroutine scheduling.
package rnd
