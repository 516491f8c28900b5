// SPDX-License-Identifier: MIT

package prng

// Sequence replays a fixed list of uint32 values, wrapping around at the end.
// It is intended for tests that must pin the exact draws a consumer sees.
type Sequence struct {
	values []uint32
	next   int
}

var _ Source = (*Sequence)(nil)

// NewSequence returns a Sequence over values. An empty list yields zeros.
func NewSequence(values ...uint32) *Sequence {
	cp := make([]uint32, len(values))
	copy(cp, values)

	return &Sequence{values: cp}
}

// Uint32 returns the next replayed value.
func (s *Sequence) Uint32() uint32 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)

	return v
}

// Float32 maps the next replayed value onto [0,1).
func (s *Sequence) Float32() float32 { return unitFloat(s.Uint32()) }

// Draws reports how many values have been consumed modulo the list length.
func (s *Sequence) Draws() int { return s.next }
