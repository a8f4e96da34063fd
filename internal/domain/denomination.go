package domain

// Denomination represents a single coin or bill type within a currency
type Denomination struct {
	ID       string
	Value    int64 // face value in minor units, always positive
	Singular string
	Plural   string
}
