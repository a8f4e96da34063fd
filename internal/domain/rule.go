package domain

// RuleResult is the outcome of evaluating a single selection rule.
// A non-nil Err aborts the pipeline; a non-nil Strategy is a match;
// the zero value means "no match, try the next rule".
type RuleResult struct {
	Strategy ChangeStrategy
	Metadata map[string]any
	Err      error
}

// SelectionRule decides whether a particular strategy should handle the given
// transaction. Rules are plain function values so callers can inject custom
// selection policy without touching the core.
type SelectionRule func(ctx SelectionContext, opts Options) RuleResult

// Match returns a matching RuleResult for the given strategy
func Match(s ChangeStrategy) RuleResult {
	return RuleResult{Strategy: s}
}

// MatchWithMetadata returns a matching RuleResult carrying rule-specific details
func MatchWithMetadata(s ChangeStrategy, metadata map[string]any) RuleResult {
	return RuleResult{Strategy: s, Metadata: metadata}
}

// NoMatch returns a RuleResult that advances the pipeline to the next rule
func NoMatch() RuleResult {
	return RuleResult{}
}

// RuleError returns a RuleResult that aborts the pipeline
func RuleError(err error) RuleResult {
	return RuleResult{Err: err}
}
