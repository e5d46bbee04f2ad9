package data

import (
	"github.com/brianvoe/gofakeit/v7"
)

// Faker is a seeded source of fake values. A fixed nonzero seed makes the
// sequence reproducible across runs; seed 0 picks a time-based seed.
type Faker struct {
	*gofakeit.Faker
	seed uint64
}

func NewFaker(seed uint64) *Faker {
	return &Faker{Faker: gofakeit.New(seed), seed: seed}
}

// Seed returns the seed this Faker was last seeded with.
func (f *Faker) Seed() uint64 { return f.seed }

// Reseed restarts the sequence. Two Fakers reseeded with the same nonzero
// value produce identical sequences, which is how a failing run's data can be
// reproduced.
func (f *Faker) Reseed(seed uint64) {
	f.Faker = gofakeit.New(seed)
	f.seed = seed
}
