package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tirasundara/change-service/internal/domain"
)

// BreakdownParser recovers a change breakdown from its display text. It is
// the inverse of FormatBreakdown: Parse(FormatBreakdown(x)) == x for any
// valid x whose denomination ids exist in the registry.
type BreakdownParser struct {
	currencies domain.CurrencyRepository
}

// NewBreakdownParser creates a new BreakdownParser
func NewBreakdownParser(currencies domain.CurrencyRepository) *BreakdownParser {
	return &BreakdownParser{
		currencies: currencies,
	}
}

// Parse converts display text back into a change breakdown. An empty string
// or the literal "no change" yields an empty list.
func (p *BreakdownParser) Parse(s string) ([]domain.ChangeItem, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == NoChangeText {
		return []domain.ChangeItem{}, nil
	}

	segments := strings.Split(s, ",")
	items := make([]domain.ChangeItem, 0, len(segments))
	for _, segment := range segments {
		item, err := p.parseSegment(strings.TrimSpace(segment))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// parseSegment handles one "count name..." segment: the first token is the
// count, the remainder is the display-name phrase
func (p *BreakdownParser) parseSegment(segment string) (domain.ChangeItem, error) {
	fields := strings.Fields(segment)
	if len(fields) < 2 {
		return domain.ChangeItem{}, domain.InvalidFormatError{
			Segment: segment,
			Reason:  "expected a count followed by a denomination name",
		}
	}

	count, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || count <= 0 {
		return domain.ChangeItem{}, domain.InvalidFormatError{
			Segment: segment,
			Reason:  "count must be a positive integer",
		}
	}

	phrase := strings.Join(fields[1:], " ")
	denom, ok := p.lookupDenomination(singularize(phrase))
	if !ok {
		return domain.ChangeItem{}, domain.InvalidFormatError{
			Segment: segment,
			Reason:  fmt.Sprintf("unknown denomination %q", phrase),
		}
	}

	return domain.ChangeItem{
		DenominationID: denom.ID,
		Count:          count,
		Singular:       denom.Singular,
		Plural:         denom.Plural,
	}, nil
}

// lookupDenomination searches every registered currency for a denomination
// with the given singular name
func (p *BreakdownParser) lookupDenomination(singular string) (domain.Denomination, bool) {
	for _, code := range p.currencies.Supported() {
		denoms, err := p.currencies.Denominations(code)
		if err != nil {
			continue
		}
		for _, d := range denoms {
			if strings.EqualFold(d.Singular, singular) {
				return d, true
			}
		}
	}

	return domain.Denomination{}, false
}

// singularize maps a display-name phrase back to a singular denomination name
func singularize(phrase string) string {
	name := strings.ToLower(strings.TrimSpace(phrase))

	// "half dollar coins" and friends carry a redundant coin suffix
	name = strings.TrimSuffix(name, " coins")
	name = strings.TrimSuffix(name, " coin")

	if name == "pennies" {
		return "penny"
	}

	return strings.TrimSuffix(name, "s")
}
