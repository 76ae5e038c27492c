// Package engine is the boundary to the external search engine (Meilisearch).
//
// It exposes the small part of the engine's management API the service needs:
// index existence and creation, and reading and writing the searchable and
// filterable attribute settings of an index. Everything else (documents,
// queries, ranking) stays with the engine.
//
// # Tasks
//
// Meilisearch applies settings asynchronously and answers writes with a task.
// The client waits for that task, bounded by Config.TaskTimeoutSeconds, so a
// rejected update surfaces as ErrTaskFailed instead of being lost.
//
// # Filterable attributes
//
// Since Meilisearch 1.14 the filterable attributes setting may hold granular
// objects next to plain names. The client reports each object as the names in
// its attributePatterns. Feature flags (facet search, comparison filters) are
// not compared, and writes always use plain names, which re-enable the
// default features.
//
// # Testing
//
// The mocks sub-package holds testify mocks of Client and Index.
package engine
