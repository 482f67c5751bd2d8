// Package synth draws the randomized figures for a sales dataset.
package synth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"salesgen/internal/core"
)

// Profile describes the dataset to synthesize: the month range, the
// product catalog, and the bounds every draw stays within. Bounds are
// inclusive on both ends.
type Profile struct {
	Start       time.Time
	End         time.Time
	Products    []string
	PriceMin    core.Money
	PriceMax    core.Money
	QuantityMin int
	QuantityMax int
	Seed        uint64 // 0 seeds from the global generator
}

// Synthesizer generates datasets from a profile using a per-instance
// random source.
type Synthesizer struct {
	profile Profile
	rng     *rand.Rand
}

func New(profile Profile) *Synthesizer {
	return &Synthesizer{
		profile: profile,
		rng:     newSource(profile.Seed),
	}
}

// newSource builds the per-run random source. A zero seed draws the PCG
// state from the auto-seeded global generator, so separate runs produce
// different figures; any other seed makes runs reproducible.
func newSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate lays out one record per (month, product) pair, months outer and
// products inner, with a fresh price and quantity draw for every pair.
func (s *Synthesizer) Generate() core.Dataset {
	months := core.MonthSequence(s.profile.Start, s.profile.End)
	records := make([]core.Record, 0, len(months)*len(s.profile.Products))
	for _, month := range months {
		for _, product := range s.profile.Products {
			price := s.drawPrice()
			quantity := s.drawQuantity()
			records = append(records, core.NewRecord(month, product, price, quantity))
		}
	}
	return core.Dataset{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Records:     records,
	}
}

// drawPrice picks a uniform price between the profile bounds and rounds it
// to whole cents.
func (s *Synthesizer) drawPrice() core.Money {
	lo := s.profile.PriceMin.Float64()
	hi := s.profile.PriceMax.Float64()
	return core.RoundToCents(lo + s.rng.Float64()*(hi-lo))
}

// drawQuantity picks a uniform integer between the profile bounds,
// inclusive on both ends.
func (s *Synthesizer) drawQuantity() int {
	span := s.profile.QuantityMax - s.profile.QuantityMin + 1
	return s.profile.QuantityMin + s.rng.IntN(span)
}

// ProductNames returns the default catalog: "Product 1" through
// "Product n".
func ProductNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Product %d", i+1)
	}
	return names
}
