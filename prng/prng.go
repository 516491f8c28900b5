// SPDX-License-Identifier: MIT

package prng

import (
	"math/rand/v2"
	"time"
)

// goldenGamma decorrelates the second PCG word from the seed.
const goldenGamma = 0x9e3779b97f4a7c15

// float32Scale maps the top 24 bits of a uint32 onto [0,1) exactly.
const float32Scale = 1.0 / (1 << 24)

// Source is the uniform random generator consumed by the engine.
type Source interface {
	// Uint32 returns a uniformly distributed 32-bit value.
	Uint32() uint32

	// Float32 returns a uniform value in [0,1) derived from Uint32.
	Float32() float32
}

// PCG is a deterministic Source. The zero value is not usable; use New.
type PCG struct {
	r *rand.Rand
}

// Compile-time assertion.
var _ Source = (*PCG)(nil)

// New returns a PCG seeded with seed. Equal seeds yield equal streams.
func New(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, seed^goldenGamma))}
}

// NewFromTime returns a PCG seeded from the wall clock, for runs that do
// not need to be reproducible.
func NewFromTime() *PCG {
	return New(uint64(time.Now().UnixNano()))
}

// Uint32 returns the next 32 bits of the stream.
func (p *PCG) Uint32() uint32 { return p.r.Uint32() }

// Float32 returns a value in [0,1) built from one Uint32 draw.
func (p *PCG) Float32() float32 { return unitFloat(p.Uint32()) }

// unitFloat keeps the 24 most significant bits so the result is exactly
// representable and strictly below 1.
func unitFloat(u uint32) float32 {
	return float32(u>>8) * float32Scale
}
