package reconcile

import (
	"context"
	"fmt"
	"slices"

	"search-manager/core/engine"

	"go.uber.org/zap"
)

// attribute binds an attribute kind to its getter and setter on an index.
type attribute struct {
	kind AttributeKind
	get  func(context.Context) ([]string, error)
	set  func(context.Context, []string) error
}

func attributesOf(index engine.Index) []attribute {
	return []attribute{
		{KindSearchable, index.GetSearchableAttributes, index.UpdateSearchableAttributes},
		{KindFilterable, index.GetFilterableAttributes, index.UpdateFilterableAttributes},
	}
}

// LazySetSpecialAttributes sets the searchable and filterable attributes of
// index, but only those that are not already set to exactly the desired list.
// indexName is only used for diagnostics.
//
// The first failing read or write aborts. The result is returned along with
// the error and lists the writes that happened before the failure. Searchable
// attributes are always handled before filterable ones.
func LazySetSpecialAttributes(
	ctx context.Context,
	index engine.Index,
	indexName string,
	searchable []string,
	filterable []string,
	logger *zap.Logger,
) (*IndexResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	desired := map[AttributeKind][]string{
		KindSearchable: searchable,
		KindFilterable: filterable,
	}

	result := &IndexResult{Index: indexName, Updated: []AttributeKind{}}
	for _, attr := range attributesOf(index) {
		current, err := attr.get(ctx)
		if err != nil {
			return result, fmt.Errorf("failed to get %s attributes of %s index: %w", attr.kind, indexName, err)
		}
		if slices.Equal(current, desired[attr.kind]) {
			continue
		}

		logger.Debug("Updating special attributes",
			zap.String("index", indexName),
			zap.String("kind", string(attr.kind)),
		)
		if err := attr.set(ctx, desired[attr.kind]); err != nil {
			return result, fmt.Errorf("failed to set %s attributes of %s index: %w", attr.kind, indexName, err)
		}
		result.Updated = append(result.Updated, attr.kind)
	}

	return result, nil
}
