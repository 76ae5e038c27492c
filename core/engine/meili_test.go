package engine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMeili serves the subset of the Meilisearch API used by the client.
type fakeMeili struct {
	mu         sync.Mutex
	searchable []string
	filterable []string
	taskStatus string
	missing    bool
	writes     []string
}

func (f *fakeMeili) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
	enqueued := func(w http.ResponseWriter) {
		writeJSON(w, http.StatusAccepted, map[string]any{
			"taskUid":    7,
			"indexUid":   "tobira_event",
			"status":     "enqueued",
			"type":       "settingsUpdate",
			"enqueuedAt": "2024-01-01T00:00:00Z",
		})
	}
	settings := func(target *[]string, name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.missing {
				writeJSON(w, http.StatusNotFound, map[string]any{
					"message": "Index `tobira_event` not found.",
					"code":    "index_not_found",
					"type":    "invalid_request",
					"link":    "https://docs.meilisearch.com/errors#index_not_found",
				})
				return
			}
			switch r.Method {
			case http.MethodGet:
				writeJSON(w, http.StatusOK, *target)
			default:
				body, _ := io.ReadAll(r.Body)
				var attrs []string
				require.NoError(t, json.Unmarshal(body, &attrs))
				*target = attrs
				f.writes = append(f.writes, name)
				enqueued(w)
			}
		}
	}

	mux.HandleFunc("/indexes/tobira_event/settings/searchable-attributes", settings(&f.searchable, "searchable"))
	mux.HandleFunc("/indexes/tobira_event/settings/filterable-attributes", settings(&f.filterable, "filterable"))
	mux.HandleFunc("/tasks/7", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		task := map[string]any{
			"uid":        7,
			"indexUid":   "tobira_event",
			"status":     f.taskStatus,
			"type":       "settingsUpdate",
			"enqueuedAt": "2024-01-01T00:00:00Z",
		}
		if f.taskStatus == "failed" {
			task["error"] = map[string]any{"message": "invalid attribute", "code": "invalid_settings"}
		}
		writeJSON(w, http.StatusOK, task)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "available"})
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeMeili) Client {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{Host: srv.URL, TaskTimeoutSeconds: 5, TaskPollMillis: 1})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresHost(t *testing.T) {
	client, err := NewClient(Config{})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestMeiliIndex_Attributes(t *testing.T) {
	f := &fakeMeili{
		searchable: []string{"title", "body"},
		filterable: []string{"listed"},
		taskStatus: "succeeded",
	}
	client := newTestClient(t, f)
	idx := client.Index("tobira_event")
	ctx := context.Background()

	assert.Equal(t, "tobira_event", idx.UID())

	searchable, err := idx.GetSearchableAttributes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "body"}, searchable)

	filterable, err := idx.GetFilterableAttributes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"listed"}, filterable)

	require.NoError(t, idx.UpdateSearchableAttributes(ctx, []string{"title", "body", "tags"}))
	require.NoError(t, idx.UpdateFilterableAttributes(ctx, []string{"listed", "read_roles"}))

	assert.Equal(t, []string{"title", "body", "tags"}, f.searchable)
	assert.Equal(t, []string{"listed", "read_roles"}, f.filterable)
	assert.Equal(t, []string{"searchable", "filterable"}, f.writes)
}

func TestMeiliIndex_FailedTask(t *testing.T) {
	f := &fakeMeili{taskStatus: "failed"}
	client := newTestClient(t, f)

	err := client.Index("tobira_event").UpdateSearchableAttributes(context.Background(), []string{"nope"})
	assert.ErrorIs(t, err, ErrTaskFailed)
	assert.Contains(t, err.Error(), "invalid attribute")
}

func TestMeiliIndex_MissingIndex(t *testing.T) {
	f := &fakeMeili{missing: true}
	client := newTestClient(t, f)

	_, err := client.Index("tobira_event").GetSearchableAttributes(context.Background())
	assert.ErrorIs(t, err, ErrIndexNotFound)
}

func TestMeiliClient_Health(t *testing.T) {
	client := newTestClient(t, &fakeMeili{})
	assert.NoError(t, client.Health(context.Background()))
}

func TestMeiliIndex_GranularFilterableAttributes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/indexes/tobira_event/settings/filterable-attributes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `["listed",{"attributePatterns":["read_roles","write_roles"],"features":{"facetSearch":false}},{"other":"x"}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{Host: srv.URL})
	require.NoError(t, err)

	attrs, err := client.Index("tobira_event").GetFilterableAttributes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"listed", "read_roles", "write_roles", "{other=x}"}, attrs)
}
