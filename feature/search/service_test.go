package search

import (
	"context"
	"testing"

	"search-manager/core/engine/mocks"
	"search-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockACLStore is a mock implementation of ACLStore
type mockACLStore struct {
	mock.Mock
}

func (m *mockACLStore) EventACL(ctx context.Context, id int64) (*EventACL, error) {
	args := m.Called(ctx, id)
	if acl, ok := args.Get(0).(*EventACL); ok {
		return acl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockACLStore) MissingColumns(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if cols, ok := args.Get(0).([]string); ok {
		return cols, args.Error(1)
	}
	return nil, args.Error(1)
}

// inSyncClient returns a client on which every catalogue index exists and
// already has its desired attributes.
func inSyncClient(prefix string) (*mocks.Client, map[string]*mocks.Index) {
	client := new(mocks.Client)
	indexes := map[string]*mocks.Index{}
	for _, spec := range Specs(prefix) {
		idx := new(mocks.Index)
		idx.On("GetSearchableAttributes", mock.Anything).Return(spec.Searchable, nil)
		idx.On("GetFilterableAttributes", mock.Anything).Return(spec.Filterable, nil)
		client.On("IndexExists", mock.Anything, spec.UID).Return(true, nil)
		client.On("Index", spec.UID).Return(idx)
		indexes[spec.Name] = idx
	}
	return client, indexes
}

func newTestService(client *mocks.Client, acls ACLStore) *Service {
	r := reconcile.NewReconciler(client, zap.NewNop(), nil, reconcile.ReconcileOptions{CreateMissing: true})
	return NewService(client, r, acls, "tobira_", zap.NewNop())
}

func TestService_StatusInSync(t *testing.T) {
	client, indexes := inSyncClient("tobira_")
	svc := newTestService(client, nil)

	plan, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Summary.TotalIndexes)
	assert.Zero(t, plan.Summary.PendingUpdates)
	for _, idx := range indexes {
		idx.AssertNotCalled(t, "UpdateSearchableAttributes", mock.Anything, mock.Anything)
	}
}

func TestService_PrepareAll(t *testing.T) {
	client, indexes := inSyncClient("tobira_")
	svc := newTestService(client, nil)

	results, err := svc.Prepare(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.False(t, r.Changed(), r.Index)
	}
	for _, idx := range indexes {
		idx.AssertNotCalled(t, "UpdateFilterableAttributes", mock.Anything, mock.Anything)
	}
}

func TestService_PrepareSingleIndex(t *testing.T) {
	spec, err := SpecFor("tobira_", "realm")
	require.NoError(t, err)

	idx := new(mocks.Index)
	idx.On("GetSearchableAttributes", mock.Anything).Return([]string{"*"}, nil)
	idx.On("UpdateSearchableAttributes", mock.Anything, spec.Searchable).Return(nil).Once()
	idx.On("GetFilterableAttributes", mock.Anything).Return(spec.Filterable, nil)

	client := new(mocks.Client)
	client.On("IndexExists", mock.Anything, "tobira_realm").Return(true, nil)
	client.On("Index", "tobira_realm").Return(idx)

	results, err := newTestService(client, nil).Prepare(context.Background(), "realm")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []reconcile.AttributeKind{reconcile.KindSearchable}, results[0].Updated)
	idx.AssertExpectations(t)
	client.AssertNotCalled(t, "Index", "tobira_event")
}

func TestService_PrepareUnknownIndex(t *testing.T) {
	client := new(mocks.Client)

	_, err := newTestService(client, nil).Prepare(context.Background(), "playlist")
	assert.ErrorIs(t, err, ErrUnknownIndex)
	client.AssertNotCalled(t, "IndexExists", mock.Anything, mock.Anything)
}

func TestService_PrepareStopsAtFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("IndexExists", mock.Anything, "tobira_event").Return(false, assert.AnError)

	results, err := newTestService(client, nil).Prepare(context.Background(), "")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, results)
	client.AssertNotCalled(t, "IndexExists", mock.Anything, "tobira_series")
}

func TestService_ReadFilter(t *testing.T) {
	svc := newTestService(new(mocks.Client), nil)

	admin := svc.ReadFilter([]string{"ROLE_USER", "ROLE_ADMIN"})
	assert.True(t, admin.Bypass)
	assert.Empty(t, admin.Expression)

	user := svc.ReadFilter([]string{"ROLE_USER"})
	assert.False(t, user.Bypass)
	assert.Equal(t, `read_roles IN ["524f4c455f414e4f4e594d4f5553", "524f4c455f55534552"]`, user.Expression)
}

func TestService_EventACL(t *testing.T) {
	store := new(mockACLStore)
	store.On("EventACL", mock.Anything, int64(3)).Return(&EventACL{
		ID:         3,
		ReadRoles:  []string{"ROLE_ADMIN", "ROLE_USER"},
		WriteRoles: []string{"ROLE_ADMIN"},
	}, nil)

	acl, err := newTestService(new(mocks.Client), store).EventACL(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, acl.ReadRoles)
	assert.Equal(t, []string{"524f4c455f55534552"}, acl.EncodedReadRoles)
	assert.NotNil(t, acl.EncodedWriteRoles)
	assert.Empty(t, acl.EncodedWriteRoles)
}

func TestService_EventACLWithoutDatabase(t *testing.T) {
	_, err := newTestService(new(mocks.Client), nil).EventACL(context.Background(), 3)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestService_Health(t *testing.T) {
	tests := []struct {
		name      string
		engineErr error
		store     func() ACLStore
		engine    string
		database  string
		missing   []string
	}{
		{
			name:     "no database",
			store:    func() ACLStore { return nil },
			engine:   "ok",
			database: "disabled",
		},
		{
			name: "schema mismatch",
			store: func() ACLStore {
				s := new(mockACLStore)
				s.On("MissingColumns", mock.Anything).Return([]string{"write_roles"}, nil)
				return s
			},
			engine:   "ok",
			database: "schema mismatch",
			missing:  []string{"write_roles"},
		},
		{
			name:      "engine down",
			engineErr: assert.AnError,
			store: func() ACLStore {
				s := new(mockACLStore)
				s.On("MissingColumns", mock.Anything).Return([]string{}, nil)
				return s
			},
			engine:   assert.AnError.Error(),
			database: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("Health", mock.Anything).Return(tt.engineErr)

			report := newTestService(client, tt.store()).Health(context.Background())
			assert.Equal(t, tt.engine, report.Engine)
			assert.Equal(t, tt.database, report.Database)
			assert.Equal(t, tt.missing, report.MissingColumns)
			assert.Equal(t, tt.engineErr == nil, report.Healthy())
		})
	}
}
