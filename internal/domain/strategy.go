package domain

// SelectionContext is the read-only transaction view that selection rules evaluate against
type SelectionContext struct {
	Owed   int64
	Paid   int64
	Change int64
}

// ChangeStrategy defines the interface for computing a denomination breakdown
// of a change amount
type ChangeStrategy interface {
	// Name identifies the strategy in telemetry events
	Name() string

	// Calculate breaks changeAmount (minor units) into an ordered list of
	// change items. A zero changeAmount always yields an empty list.
	Calculate(changeAmount int64, opts Options) ([]ChangeItem, error)
}

// StrategySelector defines the interface for picking the strategy that should
// handle a transaction
type StrategySelector interface {
	Select(ctx SelectionContext, opts Options) (ChangeStrategy, error)
}
