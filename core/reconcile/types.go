package reconcile

// AttributeKind names one of the special attribute settings of an index.
type AttributeKind string

const (
	// KindSearchable is the searchable attributes setting.
	KindSearchable AttributeKind = "searchable"
	// KindFilterable is the filterable attributes setting.
	KindFilterable AttributeKind = "filterable"
)

var (
	// DefaultSearchable is what the engine reports for a fresh index.
	DefaultSearchable = []string{"*"}
	// DefaultFilterable is what the engine reports for a fresh index.
	DefaultFilterable = []string{}
)

// IndexSpec is the desired state of one index.
type IndexSpec struct {
	// Name is the human readable index name used in logs and metrics (e.g. "event").
	Name string `json:"name"`

	// UID is the engine uid of the index (prefix + name).
	UID string `json:"uid"`

	// PrimaryKey is the document field used when the index has to be created.
	PrimaryKey string `json:"primary_key"`

	// Searchable lists the searchable attributes in canonical order.
	Searchable []string `json:"searchable"`

	// Filterable lists the filterable attributes in canonical order.
	Filterable []string `json:"filterable"`
}

// IndexResult describes what a reconciliation did to one index.
type IndexResult struct {
	// Index is the human readable index name.
	Index string `json:"index"`

	// UID is the engine uid of the index.
	UID string `json:"uid"`

	// Created is true if the index did not exist and was created.
	Created bool `json:"created"`

	// Updated lists the attribute kinds that were written, in write order.
	Updated []AttributeKind `json:"updated"`
}

// Changed reports whether anything was written.
func (r *IndexResult) Changed() bool {
	return r.Created || len(r.Updated) > 0
}

// Drift is a difference between the current and the desired setting.
type Drift struct {
	Kind    AttributeKind `json:"kind"`
	Current []string      `json:"current"`
	Desired []string      `json:"desired"`
}

// IndexPlan is the read-only reconciliation outcome for one index.
type IndexPlan struct {
	Index   string  `json:"index"`
	UID     string  `json:"uid"`
	Missing bool    `json:"missing"`
	Drift   []Drift `json:"drift"`
}

// InSync reports whether the index exists and needs no update.
func (p *IndexPlan) InSync() bool {
	return !p.Missing && len(p.Drift) == 0
}

// ReconcilePlan contains per-index plans and aggregate counts.
type ReconcilePlan struct {
	// Indexes contains one plan per requested index, in request order.
	Indexes []IndexPlan `json:"indexes"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalIndexes is the number of indexes inspected.
	TotalIndexes int `json:"total_indexes"`

	// MissingIndexes counts indexes that do not exist yet.
	MissingIndexes int `json:"missing_indexes"`

	// DriftingIndexes counts indexes with at least one differing setting.
	DriftingIndexes int `json:"drifting_indexes"`

	// PendingUpdates counts attribute writes a reconciliation would issue.
	PendingUpdates int `json:"pending_updates"`
}

// ReconcileOptions controls reconcile behavior.
type ReconcileOptions struct {
	// CreateMissing creates indexes that do not exist before reconciling them.
	// Without it, a missing index fails the reconciliation.
	CreateMissing bool
}
