// Package prng provides the uniform random source consumed by lvgrad.
//
// What:
//
//   - Source: the two primitives the engine needs, a uniform uint32 and a
//     uniform float32 in [0,1) derived from it.
//   - PCG: a seeded, deterministic Source backed by math/rand/v2's PCG.
//   - Sequence: a replaying Source for tests and golden fixtures.
//
// Why:
//
//	There is no process-wide generator. Every consumer (Dense.FillRand, the
//	trainer's per-epoch shuffle, model initialisation) receives a Source
//	handle explicitly, so a run is reproducible whenever the same seed is
//	injected and the handle is consumed in the same order.
//
// Concurrency:
//
//	Sources are stateful and NOT safe for concurrent use. Callers sharing a
//	Source across goroutines must serialise access themselves.
package prng
