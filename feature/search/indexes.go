package search

import (
	"errors"
	"fmt"

	"search-manager/core/reconcile"
)

// ErrUnknownIndex is returned for index names that are not in the catalogue.
var ErrUnknownIndex = errors.New("unknown search index")

const (
	// ReadRolesField is the filterable field holding the encoded read ACL.
	ReadRolesField = "read_roles"
	// WriteRolesField is the filterable field holding the encoded write ACL.
	WriteRolesField = "write_roles"
)

// definition is the prefix independent part of an index spec.
type definition struct {
	name       string
	primaryKey string
	searchable []string
	filterable []string
}

// catalogue lists every index of the portal. Attribute lists are in the
// order Meilisearch reports them back in: searchable attributes by ranking
// weight, filterable attributes sorted.
var catalogue = []definition{
	{
		name:       "event",
		primaryKey: "id",
		searchable: []string{"title", "creators", "description", "series_title"},
		filterable: []string{"created_timestamp", "end_time_timestamp", "is_live", "listed", ReadRolesField, WriteRolesField},
	},
	{
		name:       "series",
		primaryKey: "id",
		searchable: []string{"title", "description"},
		filterable: []string{"listed", ReadRolesField, WriteRolesField},
	},
	{
		name:       "realm",
		primaryKey: "id",
		searchable: []string{"name", "path_segments"},
		filterable: []string{"is_root", "is_user_realm"},
	},
	{
		name:       "user",
		primaryKey: "id",
		searchable: []string{"display_name", "username", "email"},
		filterable: []string{},
	},
}

// Specs returns the desired state of all indexes, with uids built from prefix.
func Specs(prefix string) []reconcile.IndexSpec {
	specs := make([]reconcile.IndexSpec, 0, len(catalogue))
	for _, d := range catalogue {
		specs = append(specs, d.spec(prefix))
	}
	return specs
}

// SpecFor returns the desired state of the named index.
func SpecFor(prefix, name string) (reconcile.IndexSpec, error) {
	for _, d := range catalogue {
		if d.name == name {
			return d.spec(prefix), nil
		}
	}
	return reconcile.IndexSpec{}, fmt.Errorf("%w: %q", ErrUnknownIndex, name)
}

func (d definition) spec(prefix string) reconcile.IndexSpec {
	return reconcile.IndexSpec{
		Name:       d.name,
		UID:        prefix + d.name,
		PrimaryKey: d.primaryKey,
		Searchable: append([]string(nil), d.searchable...),
		Filterable: append([]string{}, d.filterable...),
	}
}
