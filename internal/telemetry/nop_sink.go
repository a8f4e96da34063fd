package telemetry

import "github.com/tirasundara/change-service/internal/domain"

// NopSink implements the TelemetrySink interface and discards every event
type NopSink struct{}

// NewNopSink creates a NopSink
func NewNopSink() *NopSink {
	return &NopSink{}
}

// TransactionStarted implements the TelemetrySink interface
func (NopSink) TransactionStarted(domain.TransactionStartedEvent) {}

// TransactionFinished implements the TelemetrySink interface
func (NopSink) TransactionFinished(domain.TransactionFinishedEvent) {}

// StrategySelected implements the TelemetrySink interface
func (NopSink) StrategySelected(domain.StrategySelectedEvent) {}
