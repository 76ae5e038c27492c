package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"search-manager/core/engine"
	"search-manager/core/reconcile"
	"search-manager/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for search commands
	prepareIndex string
	statusJSON   bool
)

// searchCmd is the parent command for search index operations.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Manage the search indexes",
}

// searchPrepareCmd creates missing indexes and reconciles their settings.
var searchPrepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Create missing indexes and update drifted attribute settings",
	Long: `Brings every search index into its desired state. Settings that already
match are not written again, so running prepare repeatedly is cheap.

Examples:
  # Prepare all indexes
  search prepare

  # Prepare only the event index
  search prepare --index event`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := newSearchService()
		if err != nil {
			return err
		}
		defer l.Sync()

		results, err := svc.Prepare(cmd.Context(), prepareIndex)
		for _, r := range results {
			fmt.Println(formatResult(r))
		}
		return err
	},
}

// searchStatusCmd reports drift without changing anything.
var searchStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how the indexes differ from their desired state (read-only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := newSearchService()
		if err != nil {
			return err
		}
		defer l.Sync()

		plan, err := svc.Status(cmd.Context())
		if err != nil {
			return err
		}

		if statusJSON {
			data, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		for _, p := range plan.Indexes {
			fmt.Println(formatPlan(p))
		}
		fmt.Printf("\n%d indexes, %d missing, %d drifting, %d pending updates\n",
			plan.Summary.TotalIndexes, plan.Summary.MissingIndexes,
			plan.Summary.DriftingIndexes, plan.Summary.PendingUpdates)
		return nil
	},
}

func init() {
	searchPrepareCmd.Flags().StringVar(&prepareIndex, "index", "", "Only prepare the named index (event, series, realm, user)")
	searchStatusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output the full plan as JSON")

	searchCmd.AddCommand(searchPrepareCmd)
	searchCmd.AddCommand(searchStatusCmd)
	RootCmd.AddCommand(searchCmd)
}

// newSearchService builds a search service without database access.
func newSearchService() (*search.Service, *zap.Logger, error) {
	cfg, l, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}

	client, err := engine.NewClient(cfg.Search)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create search engine client: %w", err)
	}

	reconciler := reconcile.NewReconciler(client, l, nil, reconcile.ReconcileOptions{CreateMissing: true})
	return search.NewService(client, reconciler, nil, cfg.Search.IndexPrefix, l), l, nil
}

func formatResult(r reconcile.IndexResult) string {
	if !r.Changed() {
		return fmt.Sprintf("%-8s up to date", r.Index)
	}

	var parts []string
	if r.Created {
		parts = append(parts, "created")
	}
	for _, kind := range r.Updated {
		parts = append(parts, "updated "+string(kind))
	}
	return fmt.Sprintf("%-8s %s", r.Index, strings.Join(parts, ", "))
}

func formatPlan(p reconcile.IndexPlan) string {
	var b strings.Builder
	switch {
	case p.Missing:
		fmt.Fprintf(&b, "%-8s missing (%s)", p.Index, p.UID)
	case p.InSync():
		fmt.Fprintf(&b, "%-8s in sync", p.Index)
	default:
		fmt.Fprintf(&b, "%-8s drifting", p.Index)
	}
	for _, d := range p.Drift {
		fmt.Fprintf(&b, "\n  %s: %v -> %v", d.Kind, d.Current, d.Desired)
	}
	return b.String()
}
