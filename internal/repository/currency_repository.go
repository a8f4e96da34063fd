package repository

import (
	"sort"

	"github.com/tirasundara/change-service/internal/domain"
)

// DefaultCurrencyCode is used when a repository is created without one
const DefaultCurrencyCode = "USD"

// builtinCurrencies returns the currencies every repository is seeded with
func builtinCurrencies() []domain.Currency {
	return []domain.Currency{
		{
			Code:   "USD",
			Name:   "United States dollar",
			Symbol: "$",
			Denominations: []domain.Denomination{
				{ID: "dollar", Value: 100, Singular: "dollar", Plural: "dollars"},
				{ID: "quarter", Value: 25, Singular: "quarter", Plural: "quarters"},
				{ID: "dime", Value: 10, Singular: "dime", Plural: "dimes"},
				{ID: "nickel", Value: 5, Singular: "nickel", Plural: "nickels"},
				{ID: "penny", Value: 1, Singular: "penny", Plural: "pennies"},
			},
		},
		{
			Code:   "EUR",
			Name:   "Euro",
			Symbol: "€",
			Denominations: []domain.Denomination{
				{ID: "euro", Value: 100, Singular: "euro", Plural: "euros"},
				{ID: "cent", Value: 1, Singular: "cent", Plural: "cents"},
			},
		},
	}
}

// InMemoryCurrencyRepository implements the CurrencyRepository interface with
// a static in-process table. The table is built once at startup and never
// mutated, so it is safe for concurrent readers without locking.
type InMemoryCurrencyRepository struct {
	defaultCode string
	currencies  map[string]domain.Currency
}

// NewInMemoryCurrencyRepository creates a repository seeded with the built-in
// currencies plus any extras. Extras with a known code replace the built-in
// definition.
func NewInMemoryCurrencyRepository(defaultCode string, extras ...domain.Currency) *InMemoryCurrencyRepository {
	if defaultCode == "" {
		defaultCode = DefaultCurrencyCode
	}

	currencies := make(map[string]domain.Currency)
	for _, c := range builtinCurrencies() {
		currencies[c.Code] = c
	}
	for _, c := range extras {
		currencies[c.Code] = c
	}

	return &InMemoryCurrencyRepository{
		defaultCode: defaultCode,
		currencies:  currencies,
	}
}

// Denominations returns the denomination list for a currency code, largest value first
func (r *InMemoryCurrencyRepository) Denominations(code string) ([]domain.Denomination, error) {
	c, ok := r.currencies[code]
	if !ok {
		return nil, domain.UnknownCurrencyError{Code: code}
	}
	return c.Denominations, nil
}

// Supported returns the registered currency codes in sorted order
func (r *InMemoryCurrencyRepository) Supported() []string {
	codes := make([]string, 0, len(r.currencies))
	for code := range r.currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Resolve picks the denomination list for one call. An explicit override in
// the options wins, then the options' currency code, then the default
// currency the repository was created with.
func (r *InMemoryCurrencyRepository) Resolve(opts domain.Options) ([]domain.Denomination, error) {
	if len(opts.Denominations) > 0 {
		return opts.Denominations, nil
	}
	if opts.Currency != "" {
		return r.Denominations(opts.Currency)
	}
	return r.Denominations(r.defaultCode)
}
