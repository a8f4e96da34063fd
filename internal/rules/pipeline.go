package rules

import (
	"github.com/tirasundara/change-service/internal/domain"
)

// Pipeline implements the StrategySelector interface: an ordered list of
// selection rules evaluated first-match-wins, with a fallback strategy when
// every rule passes
type Pipeline struct {
	rules    []domain.SelectionRule
	fallback domain.ChangeStrategy
	sink     domain.TelemetrySink
}

// NewPipeline creates a Pipeline with the given rules. The fallback strategy
// handles transactions no rule claims. A nil sink disables telemetry.
func NewPipeline(fallback domain.ChangeStrategy, sink domain.TelemetrySink, ruleList ...domain.SelectionRule) *Pipeline {
	return &Pipeline{
		rules:    ruleList,
		fallback: fallback,
		sink:     sink,
	}
}

// Select walks the rule list in order. The first match or rule error is the
// final outcome; exhausting the list selects the fallback strategy. A
// non-empty opts.Rules replaces the pipeline's own list for this call.
func (p *Pipeline) Select(ctx domain.SelectionContext, opts domain.Options) (domain.ChangeStrategy, error) {
	ruleList := p.rules
	if len(opts.Rules) > 0 {
		ruleList = opts.Rules
	}

	for _, rule := range ruleList {
		result := rule(ctx, opts)

		if result.Err != nil {
			p.emit(domain.StrategySelectedEvent{
				Context:  ctx,
				Rule:     ruleName(result.Metadata),
				Metadata: result.Metadata,
			})
			return nil, result.Err
		}

		if result.Strategy != nil {
			p.emit(domain.StrategySelectedEvent{
				Context:  ctx,
				Strategy: result.Strategy.Name(),
				Rule:     ruleName(result.Metadata),
				Metadata: result.Metadata,
			})
			return result.Strategy, nil
		}
	}

	p.emit(domain.StrategySelectedEvent{
		Context:  ctx,
		Strategy: p.fallback.Name(),
		Rule:     "default",
	})
	return p.fallback, nil
}

// emit notifies the sink of the final outcome; the notification never feeds
// back into control flow
func (p *Pipeline) emit(e domain.StrategySelectedEvent) {
	if p.sink == nil {
		return
	}
	p.sink.StrategySelected(e)
}

// ruleName extracts a rule's self-reported name from its metadata. Rules
// are anonymous function values, so the metadata is the only place a name
// can travel.
func ruleName(metadata map[string]any) string {
	if name, ok := metadata["rule"].(string); ok {
		return name
	}
	return "custom"
}
