package report

import (
	"fmt"
	"strings"

	"github.com/tirasundara/change-service/internal/domain"
)

// NoChangeText is the rendering of an empty breakdown
const NoChangeText = "no change"

// FormatBreakdown renders a change breakdown as display text, e.g.
// "3 quarters,1 dime,3 pennies". Input order is preserved; the singular name
// is used for a count of one.
func FormatBreakdown(items []domain.ChangeItem) string {
	if len(items) == 0 {
		return NoChangeText
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%d %s", item.Count, item.DisplayName()))
	}

	return strings.Join(parts, ",")
}
