package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tirasundara/change-service/internal/domain"
	"github.com/tirasundara/change-service/internal/report"
)

// ChangeService orchestrates one change calculation: amount validation,
// strategy selection, then the selected strategy's reduction
type ChangeService struct {
	selector domain.StrategySelector
	sink     domain.TelemetrySink
}

// NewChangeService creates a new ChangeService. A nil sink disables telemetry.
func NewChangeService(selector domain.StrategySelector, sink domain.TelemetrySink) *ChangeService {
	return &ChangeService{
		selector: selector,
		sink:     sink,
	}
}

// MakeChange computes the change breakdown for one transaction. Amounts are
// minor units. Each step short-circuits on failure; every attempt emits
// started/finished telemetry with a generated correlation id.
func (s *ChangeService) MakeChange(owed, paid int64, opts domain.Options) ([]domain.ChangeItem, error) {
	correlationID := uuid.NewString()
	startedAt := time.Now()

	if s.sink != nil {
		s.sink.TransactionStarted(domain.TransactionStartedEvent{
			CorrelationID: correlationID,
			Owed:          owed,
			Paid:          paid,
			Currency:      opts.Currency,
		})
	}

	items, err := s.makeChange(owed, paid, opts)

	if s.sink != nil {
		s.sink.TransactionFinished(domain.TransactionFinishedEvent{
			CorrelationID: correlationID,
			Duration:      time.Since(startedAt),
			Success:       err == nil,
			ErrorCategory: domain.ErrorCategory(err),
		})
	}

	return items, err
}

// MakeChangeFormatted computes change and renders the breakdown as display text
func (s *ChangeService) MakeChangeFormatted(owed, paid int64, opts domain.Options) (string, error) {
	items, err := s.MakeChange(owed, paid, opts)
	if err != nil {
		return "", err
	}
	return report.FormatBreakdown(items), nil
}

func (s *ChangeService) makeChange(owed, paid int64, opts domain.Options) ([]domain.ChangeItem, error) {
	if owed < 0 || paid < 0 {
		return nil, domain.NegativeAmountError{Owed: owed, Paid: paid}
	}
	if paid < owed {
		return nil, domain.InsufficientPaymentError{Owed: owed, Paid: paid}
	}

	change := paid - owed
	if change == 0 {
		// Exact payment: no rules, no strategy
		return []domain.ChangeItem{}, nil
	}

	ctx := domain.SelectionContext{Owed: owed, Paid: paid, Change: change}
	strategy, err := s.selector.Select(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("selecting strategy: %w", err)
	}

	items, err := strategy.Calculate(change, opts)
	if err != nil {
		return nil, fmt.Errorf("calculating change: %w", err)
	}

	return items, nil
}
