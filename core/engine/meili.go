package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"search-manager/core/utils"

	"github.com/meilisearch/meilisearch-go"
)

// NewClient creates a Meilisearch backed Client.
func NewClient(cfg Config) (Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("search engine host is not configured")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	sm := meilisearch.New(cfg.Host,
		meilisearch.WithAPIKey(cfg.APIKey),
		meilisearch.WithCustomClient(&http.Client{Timeout: time.Duration(timeout) * time.Second}),
	)

	return &meiliClient{sm: sm, cfg: cfg}, nil
}

type meiliClient struct {
	sm  meilisearch.ServiceManager
	cfg Config
}

func (c *meiliClient) Index(uid string) Index {
	return &meiliIndex{uid: uid, im: c.sm.Index(uid), client: c}
}

func (c *meiliClient) IndexExists(ctx context.Context, uid string) (bool, error) {
	if _, err := c.sm.GetIndexWithContext(ctx, uid); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch index %s: %w", uid, err)
	}
	return true, nil
}

func (c *meiliClient) CreateIndex(ctx context.Context, uid, primaryKey string) error {
	info, err := c.sm.CreateIndexWithContext(ctx, &meilisearch.IndexConfig{
		Uid:        uid,
		PrimaryKey: primaryKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", uid, err)
	}
	return c.wait(ctx, info)
}

func (c *meiliClient) Health(ctx context.Context) error {
	health, err := c.sm.HealthWithContext(ctx)
	if err != nil {
		return fmt.Errorf("search engine health check failed: %w", err)
	}
	if health.Status != "available" {
		return fmt.Errorf("search engine is %s", health.Status)
	}
	return nil
}

// wait blocks until the task behind info has finished.
func (c *meiliClient) wait(ctx context.Context, info *meilisearch.TaskInfo) error {
	taskTimeout := c.cfg.TaskTimeoutSeconds
	if taskTimeout <= 0 {
		taskTimeout = 60
	}
	poll := c.cfg.TaskPollMillis
	if poll <= 0 {
		poll = 50
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(taskTimeout)*time.Second)
	defer cancel()

	task, err := c.sm.WaitForTaskWithContext(ctx, info.TaskUID, time.Duration(poll)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed waiting for task %d: %w", info.TaskUID, err)
	}
	if task.Status != meilisearch.TaskStatusSucceeded {
		return fmt.Errorf("%w: task %d (%s) ended as %s: %s",
			ErrTaskFailed, task.UID, task.Type, task.Status, task.Error.Message)
	}
	return nil
}

type meiliIndex struct {
	uid    string
	im     meilisearch.IndexManager
	client *meiliClient
}

func (i *meiliIndex) UID() string {
	return i.uid
}

func (i *meiliIndex) GetSearchableAttributes(ctx context.Context) ([]string, error) {
	attrs, err := i.im.GetSearchableAttributesWithContext(ctx)
	if err != nil {
		return nil, i.wrap("get searchable attributes", err)
	}
	if attrs == nil {
		return []string{}, nil
	}
	return *attrs, nil
}

func (i *meiliIndex) UpdateSearchableAttributes(ctx context.Context, attrs []string) error {
	info, err := i.im.UpdateSearchableAttributesWithContext(ctx, &attrs)
	if err != nil {
		return i.wrap("update searchable attributes", err)
	}
	return i.client.wait(ctx, info)
}

func (i *meiliIndex) GetFilterableAttributes(ctx context.Context) ([]string, error) {
	attrs, err := i.im.GetFilterableAttributesWithContext(ctx)
	if err != nil {
		return nil, i.wrap("get filterable attributes", err)
	}
	if attrs == nil {
		return []string{}, nil
	}
	return filterableNames(*attrs), nil
}

func (i *meiliIndex) UpdateFilterableAttributes(ctx context.Context, attrs []string) error {
	request := make([]interface{}, len(attrs))
	for n, attr := range attrs {
		request[n] = attr
	}
	info, err := i.im.UpdateFilterableAttributesWithContext(ctx, &request)
	if err != nil {
		return i.wrap("update filterable attributes", err)
	}
	return i.client.wait(ctx, info)
}

// filterableNames flattens the filterable attributes setting. Granular entries
// ({"attributePatterns": [...], "features": {...}}) are expanded to their
// patterns, so their feature flags are not compared.
func filterableNames(attrs []interface{}) []string {
	names := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		obj, ok := attr.(map[string]interface{})
		if !ok {
			names = append(names, utils.ToString(attr))
			continue
		}
		patterns, _ := obj["attributePatterns"].([]interface{})
		if len(patterns) == 0 {
			names = append(names, utils.ToStrings([]interface{}{obj})...)
			continue
		}
		names = append(names, utils.ToStrings(patterns)...)
	}
	return names
}

func (i *meiliIndex) wrap(op string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("failed to %s of %s: %w", op, i.uid, ErrIndexNotFound)
	}
	return fmt.Errorf("failed to %s of %s: %w", op, i.uid, err)
}

func isNotFound(err error) bool {
	var meiliErr *meilisearch.Error
	return errors.As(err, &meiliErr) && meiliErr.StatusCode == http.StatusNotFound
}
