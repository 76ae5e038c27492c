package reconcile

import (
	"context"
	"fmt"
	"slices"

	"search-manager/core/engine"
)

// PlanIndexes inspects the given indexes and reports how they differ from
// their desired state. It never writes to the engine.
func PlanIndexes(ctx context.Context, client engine.Client, specs []IndexSpec) (*ReconcilePlan, error) {
	plan := &ReconcilePlan{Indexes: make([]IndexPlan, 0, len(specs))}

	for _, spec := range specs {
		indexPlan, err := planIndex(ctx, client, spec)
		if err != nil {
			return nil, err
		}
		plan.Indexes = append(plan.Indexes, *indexPlan)
	}

	plan.Summary = summarize(plan.Indexes)
	return plan, nil
}

func planIndex(ctx context.Context, client engine.Client, spec IndexSpec) (*IndexPlan, error) {
	p := &IndexPlan{Index: spec.Name, UID: spec.UID, Drift: []Drift{}}
	desired := map[AttributeKind][]string{
		KindSearchable: spec.Searchable,
		KindFilterable: spec.Filterable,
	}

	exists, err := client.IndexExists(ctx, spec.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s index: %w", spec.Name, err)
	}

	if !exists {
		// A fresh index starts out with the engine defaults.
		p.Missing = true
		defaults := map[AttributeKind][]string{
			KindSearchable: slices.Clone(DefaultSearchable),
			KindFilterable: slices.Clone(DefaultFilterable),
		}
		for _, kind := range []AttributeKind{KindSearchable, KindFilterable} {
			if !slices.Equal(defaults[kind], desired[kind]) {
				p.Drift = append(p.Drift, Drift{Kind: kind, Current: defaults[kind], Desired: desired[kind]})
			}
		}
		return p, nil
	}

	for _, attr := range attributesOf(client.Index(spec.UID)) {
		current, err := attr.get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s attributes of %s index: %w", attr.kind, spec.Name, err)
		}
		if !slices.Equal(current, desired[attr.kind]) {
			p.Drift = append(p.Drift, Drift{Kind: attr.kind, Current: current, Desired: desired[attr.kind]})
		}
	}

	return p, nil
}

func summarize(plans []IndexPlan) PlanSummary {
	s := PlanSummary{TotalIndexes: len(plans)}
	for _, p := range plans {
		if p.Missing {
			s.MissingIndexes++
		}
		if len(p.Drift) > 0 {
			s.DriftingIndexes++
		}
		s.PendingUpdates += len(p.Drift)
	}
	return s
}
