package rules

import (
	"github.com/tirasundara/change-service/internal/domain"
)

// DefaultDivisor is used when a call does not supply a divisor option
const DefaultDivisor = 3

// NewDivisorRule returns the built-in selection rule: when the change amount
// divides evenly by the configured divisor, the randomized strategy handles
// the transaction.
//
// The rule tests the CHANGE amount, not the owed amount. Earlier revisions of
// this behavior tested owed; change is the agreed final operand, pending
// product sign-off (see DESIGN.md).
func NewDivisorRule(randomized domain.ChangeStrategy) domain.SelectionRule {
	return func(ctx domain.SelectionContext, opts domain.Options) domain.RuleResult {
		divisor := opts.Divisor
		if divisor == 0 {
			divisor = DefaultDivisor
		}
		if divisor < 0 {
			return domain.RuleError(domain.InvalidDivisorError{Divisor: divisor})
		}

		if ctx.Change%int64(divisor) == 0 {
			return domain.MatchWithMetadata(randomized, map[string]any{
				"divisor": divisor,
				"rule":    "divisor_match",
			})
		}

		return domain.NoMatch()
	}
}
