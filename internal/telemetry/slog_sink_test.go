package telemetry_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tirasundara/change-service/internal/domain"
	"github.com/tirasundara/change-service/internal/telemetry"
)

func TestSlogSink_LogsEvents(t *testing.T) {
	var buf bytes.Buffer
	sink := telemetry.NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	sink.TransactionStarted(domain.TransactionStartedEvent{
		CorrelationID: "corr-123",
		Owed:          212,
		Paid:          300,
		Currency:      "USD",
	})

	sink.StrategySelected(domain.StrategySelectedEvent{
		Context:  domain.SelectionContext{Owed: 212, Paid: 300, Change: 88},
		Strategy: "greedy",
		Rule:     "default",
	})

	sink.TransactionFinished(domain.TransactionFinishedEvent{
		CorrelationID: "corr-123",
		Duration:      3 * time.Millisecond,
		Success:       true,
	})

	out := buf.String()
	for _, want := range []string{"corr-123", "owed=212", "paid=300", "strategy=greedy", "rule=default", "success=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSlogSink_FailureLogsCategory(t *testing.T) {
	var buf bytes.Buffer
	sink := telemetry.NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	sink.TransactionFinished(domain.TransactionFinishedEvent{
		CorrelationID: "corr-456",
		Duration:      time.Millisecond,
		Success:       false,
		ErrorCategory: domain.CategoryValidation,
	})

	out := buf.String()
	if !strings.Contains(out, "error_category=validation") {
		t.Errorf("Expected log output to contain the error category, got:\n%s", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("Expected failures to log at warn level, got:\n%s", out)
	}
}
