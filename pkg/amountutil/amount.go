// Package amountutil converts decimal currency text into integer minor units.
// All conversion goes through decimal arithmetic; float multiplication would
// lose cents on inputs like "2.12".
package amountutil

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/change-service/internal/domain"
)

// DefaultMaxAmount caps parsed amounts (in minor units) when no cap is configured
const DefaultMaxAmount int64 = 10_000_000

// AmountParser converts amount strings and transaction lines into minor units
type AmountParser struct {
	MaxAmount int64
}

// NewAmountParser creates an AmountParser with the given cap in minor units.
// A non-positive cap falls back to DefaultMaxAmount.
func NewAmountParser(maxAmount int64) *AmountParser {
	if maxAmount <= 0 {
		maxAmount = DefaultMaxAmount
	}

	return &AmountParser{
		MaxAmount: maxAmount,
	}
}

// ParseAmount converts text like "2.12" into minor units (212).
// Rejected inputs: negatives, more than two decimal places, a bare trailing
// decimal point, and amounts above the configured cap.
func (p *AmountParser) ParseAmount(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, domain.InvalidAmountError{Input: input, Reason: "empty amount"}
	}
	if strings.HasSuffix(trimmed, ".") {
		return 0, domain.InvalidAmountError{Input: input, Reason: "trailing decimal point"}
	}
	if _, frac, ok := strings.Cut(trimmed, "."); ok && len(frac) > 2 {
		return 0, domain.InvalidAmountError{Input: input, Reason: "more than two decimal places"}
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, domain.InvalidAmountError{Input: input, Reason: "not a decimal number"}
	}
	if d.IsNegative() {
		return 0, domain.InvalidAmountError{Input: input, Reason: "negative amount"}
	}

	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, domain.InvalidAmountError{Input: input, Reason: "more than two decimal places"}
	}

	units := minor.IntPart()
	if units > p.MaxAmount {
		return 0, domain.InvalidAmountError{
			Input:  input,
			Reason: fmt.Sprintf("exceeds maximum of %d minor units", p.MaxAmount),
		}
	}

	return units, nil
}

// ParseTransactionLine splits one input line into owed and paid minor units.
// Two comma-separated fields is decimal-point format ("2.12,3.00"); four is
// the decimal-comma layout ("2,12,3,00"). Field count alone disambiguates the
// two layouts.
func (p *AmountParser) ParseTransactionLine(line string) (owed, paid int64, err error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var owedText, paidText string
	switch len(fields) {
	case 2:
		owedText, paidText = fields[0], fields[1]
	case 4:
		owedText = fields[0] + "." + fields[1]
		paidText = fields[2] + "." + fields[3]
	default:
		return 0, 0, domain.InvalidLineError{Input: line}
	}

	owed, err = p.ParseAmount(owedText)
	if err != nil {
		return 0, 0, err
	}

	paid, err = p.ParseAmount(paidText)
	if err != nil {
		return 0, 0, err
	}

	return owed, paid, nil
}
