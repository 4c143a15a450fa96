// Package store provides a durable result cache for fault-tree
// analyses, backed by SQLite in WAL mode. A cached entry is keyed by
// the analysed source's content hash (internal/ir.SourceHash), so
// re-analysing unchanged input is a cache hit regardless of when or
// where it was first computed.
package store
