package strategy

import (
	"github.com/tirasundara/change-service/internal/domain"
)

// GreedyStrategy consumes denominations in their given order, which the
// registry keeps largest value first
type GreedyStrategy struct {
	currencies domain.CurrencyRepository
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(currencies domain.CurrencyRepository) *GreedyStrategy {
	return &GreedyStrategy{
		currencies: currencies,
	}
}

// Name implements the ChangeStrategy interface
func (s *GreedyStrategy) Name() string {
	return "greedy"
}

// Calculate implements the ChangeStrategy interface
func (s *GreedyStrategy) Calculate(changeAmount int64, opts domain.Options) ([]domain.ChangeItem, error) {
	if changeAmount == 0 {
		return []domain.ChangeItem{}, nil
	}

	denoms, err := s.currencies.Resolve(opts)
	if err != nil {
		return nil, err
	}

	return reduce(changeAmount, denoms)
}

// reduce walks the denomination list in its given order, taking as many of
// each denomination as fit into the remaining amount. A nonzero residue after
// the single pass means the set cannot resolve the amount exactly.
//
// Greedy does not guarantee a minimum item count for arbitrary sets; standard
// currency sets are canonical, where greedy is optimal.
func reduce(changeAmount int64, denoms []domain.Denomination) ([]domain.ChangeItem, error) {
	remaining := changeAmount
	items := make([]domain.ChangeItem, 0, len(denoms))

	for _, d := range denoms {
		if d.Value <= 0 {
			// Malformed entry; skipping avoids a divide-by-zero panic
			continue
		}

		count := remaining / d.Value
		if count == 0 {
			continue
		}

		remaining -= count * d.Value
		items = append(items, domain.ChangeItem{
			DenominationID: d.ID,
			Count:          count,
			Singular:       d.Singular,
			Plural:         d.Plural,
		})
	}

	if remaining != 0 {
		return nil, domain.CannotMakeExactChangeError{Remaining: remaining, ChangeAmount: changeAmount}
	}

	return items, nil
}
