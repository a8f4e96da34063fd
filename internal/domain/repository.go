package domain

// CurrencyRepository defines the interface for accessing the static currency
// table. Implementations are loaded at startup and must be safe for unlimited
// concurrent readers.
type CurrencyRepository interface {
	// Denominations returns the denomination list for a currency code,
	// largest value first
	Denominations(code string) ([]Denomination, error)

	// Supported returns the registered currency codes in sorted order
	Supported() []string

	// Resolve picks the denomination list for one call: an explicit override
	// in the options wins, then the options' currency code, then the
	// process-wide default currency
	Resolve(opts Options) ([]Denomination, error)
}

// TransactionRepository defines the interface for reading transaction inputs
type TransactionRepository interface {
	GetTransactions() ([]TransactionInput, error)
}
