// Package reconcile keeps the settings of search indexes in their desired state.
//
// Meilisearch performs a lot of work (up to re-indexing) whenever index
// settings are written, even if the written value equals the current one.
// Everything in this package therefore reads before it writes, and only
// writes what differs.
//
// # Components
//
// 1. LazySetSpecialAttributes: the core routine. It compares the searchable and
// the filterable attributes of one index with the desired lists and updates
// only the kinds that differ.
//
// 2. Reconciler: runs LazySetSpecialAttributes for a catalogue of IndexSpec,
// optionally creating missing indexes first. Concurrent calls for the same
// index uid share one pass (singleflight) and are counted in Prometheus.
//
// 3. PlanIndexes: the read-only variant, reporting drift without writing.
//
// # Ordering
//
// Comparison is exact and order-sensitive, because the engine reports
// attributes in the order they were set. Desired lists must always be given
// in the same canonical order, otherwise every run produces a write.
//
// # Usage Example
//
//	r := reconcile.NewReconciler(client, logger, metrics, reconcile.ReconcileOptions{CreateMissing: true})
//	results, err := r.ReconcileAll(ctx, specs)
package reconcile
