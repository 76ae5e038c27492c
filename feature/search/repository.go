package search

import (
	"context"
	"errors"
	"fmt"

	"search-manager/core/database"

	"gorm.io/gorm"
)

var (
	// ErrEventNotFound is returned when no event has the requested id.
	ErrEventNotFound = errors.New("event not found")
	// ErrDatabaseUnavailable is returned when no database connection is configured.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// EventACL is the stored access control list of an event.
type EventACL struct {
	ID         int64    `gorm:"column:id;primaryKey" json:"id"`
	ReadRoles  []string `gorm:"column:read_roles;serializer:json" json:"read_roles"`
	WriteRoles []string `gorm:"column:write_roles;serializer:json" json:"write_roles"`
}

// TableName overrides the GORM table name.
func (EventACL) TableName() string {
	return "events"
}

// ACLStore loads stored ACLs.
type ACLStore interface {
	// EventACL returns the ACL of the event with the given id.
	EventACL(ctx context.Context, id int64) (*EventACL, error)
	// MissingColumns returns the ACL columns the events table lacks.
	MissingColumns(ctx context.Context) ([]string, error)
}

// ACLRepository is the GORM backed ACLStore.
type ACLRepository struct {
	db *gorm.DB
}

// NewACLRepository creates a repository on db.
func NewACLRepository(db *gorm.DB) *ACLRepository {
	return &ACLRepository{db: db}
}

// EventACL implements ACLStore.
func (r *ACLRepository) EventACL(ctx context.Context, id int64) (*EventACL, error) {
	var acl EventACL
	err := r.db.WithContext(ctx).
		Select("id", "read_roles", "write_roles").
		Where("id = ?", id).
		Take(&acl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrEventNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load acl of event %d: %w", id, err)
	}
	return &acl, nil
}

// MissingColumns implements ACLStore.
func (r *ACLRepository) MissingColumns(ctx context.Context) ([]string, error) {
	return database.MissingColumns(r.db.WithContext(ctx), EventACL{}.TableName(), []string{"id", "read_roles", "write_roles"})
}
