package strategy

import (
	"math/rand"
	"time"

	"github.com/tirasundara/change-service/internal/domain"
)

// RandomizedStrategy shuffles the denomination order, then runs the same
// reduction as GreedyStrategy over the permuted list
type RandomizedStrategy struct {
	currencies domain.CurrencyRepository
}

// NewRandomizedStrategy creates a new RandomizedStrategy
func NewRandomizedStrategy(currencies domain.CurrencyRepository) *RandomizedStrategy {
	return &RandomizedStrategy{
		currencies: currencies,
	}
}

// Name implements the ChangeStrategy interface
func (s *RandomizedStrategy) Name() string {
	return "randomized"
}

// Calculate implements the ChangeStrategy interface. When opts.RandomSeed is
// set the permutation is fully deterministic for that seed; otherwise each
// call draws a fresh time-derived seed.
func (s *RandomizedStrategy) Calculate(changeAmount int64, opts domain.Options) ([]domain.ChangeItem, error) {
	if changeAmount == 0 {
		return []domain.ChangeItem{}, nil
	}

	denoms, err := s.currencies.Resolve(opts)
	if err != nil {
		return nil, err
	}

	// A strategy-local source keeps seeded runs reproducible and never
	// touches the shared global RNG, so concurrent callers cannot race
	seed := time.Now().UnixNano()
	if opts.RandomSeed != nil {
		seed = *opts.RandomSeed
	}
	rng := rand.New(rand.NewSource(seed))

	shuffled := make([]domain.Denomination, len(denoms))
	copy(shuffled, denoms)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return reduce(changeAmount, shuffled)
}
