package search

import (
	"search-manager/core/engine"
	"search-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new search feature. db may be nil.
func NewFeature(client engine.Client, reconciler *reconcile.Reconciler, db *gorm.DB, prefix, rolesHeader string, logger *zap.Logger) *Feature {
	var acls ACLStore
	if db != nil {
		acls = NewACLRepository(db)
	}
	svc := NewService(client, reconciler, acls, prefix, logger)
	return &Feature{service: svc, handler: NewHandler(svc, rolesHeader)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "search"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service, e.g. for a prepare pass on startup.
func (f *Feature) Service() *Service {
	return f.service
}
