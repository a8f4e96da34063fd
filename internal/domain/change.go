package domain

// ChangeItem represents how many units of one denomination to hand back.
// A list of ChangeItems, in the order the denominations were consumed,
// constitutes a change breakdown. An empty list means exact payment.
type ChangeItem struct {
	DenominationID string
	Count          int64
	Singular       string
	Plural         string
}

// DisplayName returns the singular name if the count is one, otherwise the plural
func (ci ChangeItem) DisplayName() string {
	if ci.Count == 1 {
		return ci.Singular
	}
	return ci.Plural
}
