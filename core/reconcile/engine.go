package reconcile

import (
	"context"
	"fmt"
	"time"

	"search-manager/core/engine"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Reconciler brings a set of indexes into their desired state.
// It is safe for concurrent use.
type Reconciler struct {
	client  engine.Client
	logger  *zap.Logger
	metrics *Metrics
	opts    ReconcileOptions
	sf      singleflight.Group
}

// NewReconciler creates a Reconciler. A nil logger or metrics disables them.
func NewReconciler(client engine.Client, logger *zap.Logger, metrics *Metrics, opts ReconcileOptions) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Reconciler{
		client:  client,
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// Reconcile reconciles a single index. Callers reconciling the same uid
// concurrently share one pass and receive copies of the same result. The
// shared pass is not cancelled with any single caller; each caller stops
// waiting when its own ctx is done.
//
// On failure, a non-nil result lists the writes done before the error.
func (r *Reconciler) Reconcile(ctx context.Context, spec IndexSpec) (*IndexResult, error) {
	ch := r.sf.DoChan(spec.UID, func() (interface{}, error) {
		return r.reconcile(context.WithoutCancel(ctx), spec)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Shared {
		r.logger.Debug("Joined running reconciliation", zap.String("index", spec.Name))
	}

	v, _ := res.Val.(*IndexResult)
	if v == nil {
		return nil, res.Err
	}
	result := *v
	result.Updated = append([]AttributeKind(nil), v.Updated...)
	return &result, res.Err
}

// ReconcileAll reconciles the given indexes one after another. It stops at the
// first failure and returns the results gathered so far, including the partial
// result of the failing index, together with the error.
func (r *Reconciler) ReconcileAll(ctx context.Context, specs []IndexSpec) ([]IndexResult, error) {
	results := make([]IndexResult, 0, len(specs))
	for _, spec := range specs {
		result, err := r.Reconcile(ctx, spec)
		if result != nil {
			results = append(results, *result)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (r *Reconciler) reconcile(ctx context.Context, spec IndexSpec) (*IndexResult, error) {
	start := time.Now()
	defer func() {
		r.metrics.Duration.WithLabelValues(spec.Name).Observe(time.Since(start).Seconds())
	}()

	created, err := r.ensureIndex(ctx, spec)
	if err != nil {
		r.metrics.Errors.WithLabelValues(spec.Name).Inc()
		return nil, err
	}

	result, err := LazySetSpecialAttributes(ctx, r.client.Index(spec.UID), spec.Name, spec.Searchable, spec.Filterable, r.logger)
	result.UID = spec.UID
	result.Created = created

	for _, kind := range result.Updated {
		r.metrics.AttributeUpdates.WithLabelValues(spec.Name, string(kind)).Inc()
	}

	if err != nil {
		r.metrics.Errors.WithLabelValues(spec.Name).Inc()
		return result, err
	}

	if result.Changed() {
		r.logger.Info("Search index reconciled",
			zap.String("index", spec.Name),
			zap.String("uid", spec.UID),
			zap.Bool("created", result.Created),
			zap.Int("updated", len(result.Updated)),
		)
	} else {
		r.logger.Debug("Search index already up to date", zap.String("index", spec.Name))
	}

	return result, nil
}

// ensureIndex creates the index if it is missing and CreateMissing is set.
func (r *Reconciler) ensureIndex(ctx context.Context, spec IndexSpec) (bool, error) {
	if !r.opts.CreateMissing {
		return false, nil
	}

	exists, err := r.client.IndexExists(ctx, spec.UID)
	if err != nil {
		return false, fmt.Errorf("failed to check %s index: %w", spec.Name, err)
	}
	if exists {
		return false, nil
	}

	r.logger.Info("Creating search index", zap.String("index", spec.Name), zap.String("uid", spec.UID))
	if err := r.client.CreateIndex(ctx, spec.UID, spec.PrimaryKey); err != nil {
		return false, fmt.Errorf("failed to create %s index: %w", spec.Name, err)
	}
	return true, nil
}
