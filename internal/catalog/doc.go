// Package catalog is the service layer behind the HTTP API. It owns the
// loaded dataset and derives every view from it. It is structured into small
// files by concern:
//
//   - catalog.go: Catalog type, Config, constructor, load and reload.
//   - snapshot.go: the immutable dataset snapshot swapped on reload.
//   - views.go: table, detail, cost, red-teaming, page and crawler views.
//   - status.go: Status reporting for /status.
//   - errors.go: error types and predicates (IsModelNotFound, IsInvalidInput).
//   - watch.go: optional fsnotify watcher that reloads the dataset file.
//   - metrics.go: Prometheus gauges and counters for the dataset.
//
// Every exported method is safe for concurrent use. Readers never block on a
// reload: they take the current snapshot and keep using it.
package catalog
