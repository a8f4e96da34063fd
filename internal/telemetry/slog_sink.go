package telemetry

import (
	"log/slog"

	"github.com/tirasundara/change-service/internal/domain"
)

// SlogSink implements the TelemetrySink interface on top of a structured logger
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a SlogSink. A nil logger falls back to slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogSink{
		logger: logger,
	}
}

// TransactionStarted implements the TelemetrySink interface
func (s *SlogSink) TransactionStarted(e domain.TransactionStartedEvent) {
	s.logger.Info("transaction started",
		slog.String("correlation_id", e.CorrelationID),
		slog.Int64("owed", e.Owed),
		slog.Int64("paid", e.Paid),
		slog.String("currency", e.Currency),
	)
}

// TransactionFinished implements the TelemetrySink interface
func (s *SlogSink) TransactionFinished(e domain.TransactionFinishedEvent) {
	if e.Success {
		s.logger.Info("transaction finished",
			slog.String("correlation_id", e.CorrelationID),
			slog.Duration("duration", e.Duration),
			slog.Bool("success", true),
		)
		return
	}

	s.logger.Warn("transaction finished",
		slog.String("correlation_id", e.CorrelationID),
		slog.Duration("duration", e.Duration),
		slog.Bool("success", false),
		slog.String("error_category", e.ErrorCategory),
	)
}

// StrategySelected implements the TelemetrySink interface
func (s *SlogSink) StrategySelected(e domain.StrategySelectedEvent) {
	s.logger.Info("strategy selected",
		slog.String("strategy", e.Strategy),
		slog.String("rule", e.Rule),
		slog.Int64("owed", e.Context.Owed),
		slog.Int64("paid", e.Context.Paid),
		slog.Int64("change", e.Context.Change),
		slog.Any("metadata", e.Metadata),
	)
}
