package report_test

import (
	"testing"

	"github.com/tirasundara/change-service/internal/domain"
	"github.com/tirasundara/change-service/internal/report"
)

func TestFormatBreakdown(t *testing.T) {
	items := []domain.ChangeItem{
		{DenominationID: "quarter", Count: 3, Singular: "quarter", Plural: "quarters"},
		{DenominationID: "dime", Count: 1, Singular: "dime", Plural: "dimes"},
		{DenominationID: "penny", Count: 3, Singular: "penny", Plural: "pennies"},
	}

	got := report.FormatBreakdown(items)
	want := "3 quarters,1 dime,3 pennies"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatBreakdown_Empty(t *testing.T) {
	if got := report.FormatBreakdown([]domain.ChangeItem{}); got != "no change" {
		t.Errorf("Expected 'no change' for empty breakdown, got %q", got)
	}
	if got := report.FormatBreakdown(nil); got != "no change" {
		t.Errorf("Expected 'no change' for nil breakdown, got %q", got)
	}
}

func TestFormatBreakdown_SingularForCountOfOne(t *testing.T) {
	items := []domain.ChangeItem{
		{DenominationID: "euro", Count: 1, Singular: "euro", Plural: "euros"},
	}

	if got := report.FormatBreakdown(items); got != "1 euro" {
		t.Errorf("Expected '1 euro', got %q", got)
	}
}

func TestFormatBreakdown_PreservesInputOrder(t *testing.T) {
	// A randomized breakdown may consume small denominations first; the
	// formatter must not reorder it
	items := []domain.ChangeItem{
		{DenominationID: "penny", Count: 13, Singular: "penny", Plural: "pennies"},
		{DenominationID: "quarter", Count: 3, Singular: "quarter", Plural: "quarters"},
	}

	got := report.FormatBreakdown(items)
	want := "13 pennies,3 quarters"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
