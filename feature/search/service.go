package search

import (
	"context"

	"search-manager/core/acl"
	"search-manager/core/engine"
	"search-manager/core/logger"
	"search-manager/core/reconcile"

	"go.uber.org/zap"
)

// EncodedEventACL is a stored event ACL next to its index representation.
type EncodedEventACL struct {
	EventACL
	EncodedReadRoles  []string `json:"encoded_read_roles"`
	EncodedWriteRoles []string `json:"encoded_write_roles"`
}

// Filter is the read filter for a caller.
type Filter struct {
	Roles []string `json:"roles"`
	// Expression is empty when Bypass is set.
	Expression string `json:"filter"`
	// Bypass is true for administrators, who skip ACL filtering.
	Bypass bool `json:"bypass"`
}

// HealthReport describes the dependencies of the service.
type HealthReport struct {
	Engine         string   `json:"engine"`
	Database       string   `json:"database"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// Healthy reports whether the engine is available. The database is optional.
func (h *HealthReport) Healthy() bool {
	return h.Engine == "ok"
}

// Service manages the search indexes and their ACL encoding.
type Service struct {
	client     engine.Client
	reconciler *reconcile.Reconciler
	acls       ACLStore
	prefix     string
	logger     *zap.Logger
}

// NewService creates a new search service. acls may be nil when no database
// is configured.
func NewService(client engine.Client, reconciler *reconcile.Reconciler, acls ACLStore, prefix string, l *zap.Logger) *Service {
	return &Service{
		client:     client,
		reconciler: reconciler,
		acls:       acls,
		prefix:     prefix,
		logger:     logger.WithComponent(l, "search"),
	}
}

// Status returns the drift of every index without changing anything.
func (s *Service) Status(ctx context.Context) (*reconcile.ReconcilePlan, error) {
	return reconcile.PlanIndexes(ctx, s.client, Specs(s.prefix))
}

// Prepare reconciles the named index, or all indexes if name is empty.
// On failure, the results of the indexes done so far are returned with the error.
func (s *Service) Prepare(ctx context.Context, name string) ([]reconcile.IndexResult, error) {
	specs := Specs(s.prefix)
	if name != "" {
		spec, err := SpecFor(s.prefix, name)
		if err != nil {
			return nil, err
		}
		specs = []reconcile.IndexSpec{spec}
	}

	s.logger.Info("Preparing search indexes", zap.Int("count", len(specs)))
	results, err := s.reconciler.ReconcileAll(ctx, specs)
	if err != nil {
		s.logger.Error("Preparing search indexes failed", zap.Error(err), zap.Int("done", len(results)))
		return results, err
	}
	return results, nil
}

// ReadFilter returns the event read filter for a caller holding roles.
func (s *Service) ReadFilter(roles []string) Filter {
	return Filter{
		Roles:      roles,
		Expression: acl.ReadFilter(ReadRolesField, roles),
		Bypass:     acl.IsAdmin(roles),
	}
}

// EventACL loads the ACL of an event and encodes it like the indexer does.
func (s *Service) EventACL(ctx context.Context, id int64) (*EncodedEventACL, error) {
	if s.acls == nil {
		return nil, ErrDatabaseUnavailable
	}

	stored, err := s.acls.EventACL(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EncodedEventACL{
		EventACL:          *stored,
		EncodedReadRoles:  acl.EncodeACL(stored.ReadRoles),
		EncodedWriteRoles: acl.EncodeACL(stored.WriteRoles),
	}, nil
}

// Health checks the engine and, if configured, the events table.
func (s *Service) Health(ctx context.Context) *HealthReport {
	report := &HealthReport{Engine: "ok", Database: "disabled"}

	if err := s.client.Health(ctx); err != nil {
		s.logger.Warn("Search engine unhealthy", zap.Error(err))
		report.Engine = err.Error()
	}

	if s.acls != nil {
		missing, err := s.acls.MissingColumns(ctx)
		switch {
		case err != nil:
			report.Database = err.Error()
		case len(missing) > 0:
			report.Database = "schema mismatch"
			report.MissingColumns = missing
		default:
			report.Database = "ok"
		}
	}

	return report
}
