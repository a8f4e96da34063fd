package domain

import "time"

// TransactionStartedEvent is emitted before a transaction is validated
type TransactionStartedEvent struct {
	CorrelationID string
	Owed          int64
	Paid          int64
	Currency      string
}

// TransactionFinishedEvent is emitted once a transaction attempt completes
type TransactionFinishedEvent struct {
	CorrelationID string
	Duration      time.Duration
	Success       bool
	ErrorCategory string // empty on success
}

// StrategySelectedEvent is emitted when the rules pipeline reaches a final outcome
type StrategySelectedEvent struct {
	Context  SelectionContext
	Strategy string // empty when the pipeline aborted with a rule error
	Rule     string
	Metadata map[string]any
}

// TelemetrySink receives fire-and-forget notifications from the core.
// The core never depends on a sink's outcome; implementations must not block.
type TelemetrySink interface {
	TransactionStarted(e TransactionStartedEvent)
	TransactionFinished(e TransactionFinishedEvent)
	StrategySelected(e StrategySelectedEvent)
}
