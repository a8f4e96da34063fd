package domain

// Options carries the per-call knobs recognized by the calculator, the
// strategies and the selection rules. The zero value asks for defaults
// everywhere.
type Options struct {
	// Divisor is read by the built-in divisor rule. Zero means the default.
	Divisor int

	// Currency selects the denomination set when Denominations is empty.
	// Empty means the process-wide default currency.
	Currency string

	// Denominations overrides currency resolution entirely when non-empty.
	// The list is consumed in the order given.
	Denominations []Denomination

	// Rules replaces the default selection rule list for this call when
	// non-empty.
	Rules []SelectionRule

	// RandomSeed makes the randomized strategy reproducible when set.
	RandomSeed *int64
}
