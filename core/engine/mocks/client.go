package mocks

import (
	"context"

	"search-manager/core/engine"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of engine.Client
type Client struct {
	mock.Mock
}

func (m *Client) Index(uid string) engine.Index {
	args := m.Called(uid)
	if idx, ok := args.Get(0).(engine.Index); ok {
		return idx
	}
	return nil
}

func (m *Client) IndexExists(ctx context.Context, uid string) (bool, error) {
	args := m.Called(ctx, uid)
	return args.Bool(0), args.Error(1)
}

func (m *Client) CreateIndex(ctx context.Context, uid, primaryKey string) error {
	args := m.Called(ctx, uid, primaryKey)
	return args.Error(0)
}

func (m *Client) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Index is a mock implementation of engine.Index
type Index struct {
	mock.Mock
}

func (m *Index) UID() string {
	args := m.Called()
	return args.String(0)
}

func (m *Index) GetSearchableAttributes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if attrs, ok := args.Get(0).([]string); ok {
		return attrs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Index) UpdateSearchableAttributes(ctx context.Context, attrs []string) error {
	args := m.Called(ctx, attrs)
	return args.Error(0)
}

func (m *Index) GetFilterableAttributes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if attrs, ok := args.Get(0).([]string); ok {
		return attrs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Index) UpdateFilterableAttributes(ctx context.Context, attrs []string) error {
	args := m.Called(ctx, attrs)
	return args.Error(0)
}
