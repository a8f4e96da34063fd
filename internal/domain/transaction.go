package domain

// TransactionInput is one owed/paid pair awaiting change calculation
type TransactionInput struct {
	Line int   // 1-based position in the source file, for error reporting
	Owed int64 // minor units
	Paid int64 // minor units
}
