package search

import (
	"testing"

	"search-manager/core/engine/mocks"
	"search-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	client := new(mocks.Client)
	r := reconcile.NewReconciler(client, nil, nil, reconcile.ReconcileOptions{})
	// No database: the ACL endpoints answer 503
	feature := NewFeature(client, r, nil, "tobira_", testRolesHeader, zap.NewNop())

	assert.Equal(t, "search", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.Nil(t, feature.Service().acls)

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoader_DisabledWithoutClient(t *testing.T) {
	feature := NewFeature(nil, nil, nil, "tobira_", testRolesHeader, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
