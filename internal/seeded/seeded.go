// Package seeded provides deterministic random sources for dataset
// generation. Each generator owns its own Source with its own seed, so one
// generator changing its draw count never perturbs another generator's
// output — that isolation is what keeps cross-references between
// independently generated collections stable across runs.
package seeded

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source is a reproducible stream of random values. It is not safe for
// concurrent use; generation is single-threaded by design.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with n. Two Sources with the same seed produce
// identical draw sequences.
func New(n int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(n))}
}

// Read fills p from the stream. Implements io.Reader so the Source can feed
// uuid.NewRandomFromReader.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// UUID returns a version-4 UUID string drawn from the stream, making ids
// themselves reproducible for a fixed seed.
func (s *Source) UUID() string {
	u, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}
	return u.String()
}

// IntBetween returns a uniform integer in [min, max] inclusive.
func (s *Source) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64Between returns a uniform float in [min, max).
func (s *Source) Float64Between(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// FloatBetween returns a uniform float in [min, max) rounded to the given
// number of fraction digits.
func (s *Source) FloatBetween(min, max float64, digits int) float64 {
	return Round(s.Float64Between(min, max), digits)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// Recent returns a uniform time within the last days before now.
func (s *Source) Recent(now time.Time, days int) time.Time {
	return s.Between(now.Add(-time.Duration(days)*24*time.Hour), now)
}

// Past returns a uniform time within the last years before now.
func (s *Source) Past(now time.Time, years int) time.Time {
	return s.Between(now.AddDate(-years, 0, 0), now)
}

// Between returns a uniform time in [from, to].
func (s *Source) Between(from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from
	}
	return from.Add(time.Duration(s.rng.Int63n(int64(span))))
}

const (
	alphaNumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digitChars    = "0123456789"
)

// AlphaNum returns n uppercase alphanumeric characters (SKU-style codes).
func (s *Source) AlphaNum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumChars[s.rng.Intn(len(alphaNumChars))]
	}
	return string(b)
}

// Digits returns n decimal digit characters (order-number-style codes).
func (s *Source) Digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = digitChars[s.rng.Intn(len(digitChars))]
	}
	return string(b)
}

// Round rounds x to the given number of fraction digits.
func Round(x float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(x*p) / p
}

// Pick returns a uniform element of items. Items must be non-empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// PickN returns n distinct elements of items, sampled without replacement.
// If n >= len(items) a shuffled copy of the whole list is returned.
func PickN[T any](s *Source, items []T, n int) []T {
	cp := make([]T, len(items))
	copy(cp, items)
	if n > len(cp) {
		n = len(cp)
	}
	// Partial Fisher-Yates: the first n slots end up uniformly sampled.
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:n]
}

// Choice pairs a candidate value with its selection weight.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Weighted returns one value with probability proportional to its weight.
func Weighted[T any](s *Source, choices []Choice[T]) T {
	total := 0
	for _, c := range choices {
		total += c.Weight
	}
	n := s.rng.Intn(total)
	for _, c := range choices {
		n -= c.Weight
		if n < 0 {
			return c.Value
		}
	}
	// Unreachable with positive weights.
	return choices[len(choices)-1].Value
}
