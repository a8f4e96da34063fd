package domain

// Currency represents a currency and its denominations.
// Denominations are ordered largest value first.
type Currency struct {
	Code          string // ISO-style code, e.g. "USD"
	Name          string
	Symbol        string
	Denominations []Denomination
}
