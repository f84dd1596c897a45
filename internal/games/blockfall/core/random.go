package core

import (
	"fmt"
	"math/rand"
)

// Randomizer draws the next piece kind.
type Randomizer interface {
	Next() Kind
}

// Randomizer policy names.
const (
	RandomUniform = "uniform"
	RandomBag     = "bag"
)

// UniformRandomizer draws each kind independently with equal probability.
// Streaks and droughts are possible; there is no fairness guarantee.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a uniform randomizer over rng.
func NewUniformRandomizer(rng *rand.Rand) *UniformRandomizer {
	return &UniformRandomizer{rng: rng}
}

// Next implements Randomizer.
func (u *UniformRandomizer) Next() Kind {
	return AllKinds[u.rng.Intn(NumKinds)]
}

// BagRandomizer deals all seven kinds in shuffled order before reshuffling,
// so every run of seven consecutive bag draws holds each kind exactly once.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagRandomizer creates a 7-bag randomizer over rng.
func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	return &BagRandomizer{rng: rng}
}

// Next implements Randomizer.
func (b *BagRandomizer) Next() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

func (b *BagRandomizer) refill() {
	b.bag = make([]Kind, NumKinds)
	copy(b.bag, AllKinds[:])
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
}

// NewRandomizer creates the randomizer for a policy name.
func NewRandomizer(policy string, rng *rand.Rand) (Randomizer, error) {
	switch policy {
	case "", RandomUniform:
		return NewUniformRandomizer(rng), nil
	case RandomBag:
		return NewBagRandomizer(rng), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", policy)
	}
}

// SequenceRandomizer replays a fixed list of kinds, cycling when exhausted.
// Intended for tests and scripted demos.
type SequenceRandomizer struct {
	kinds []Kind
	pos   int
}

// NewSequenceRandomizer creates a randomizer that yields kinds in order.
func NewSequenceRandomizer(kinds ...Kind) *SequenceRandomizer {
	return &SequenceRandomizer{kinds: kinds}
}

// Next implements Randomizer.
func (s *SequenceRandomizer) Next() Kind {
	if len(s.kinds) == 0 {
		return KindO
	}
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}
