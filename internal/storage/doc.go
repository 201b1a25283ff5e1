// Package storage provides the string-keyed persistence store the
// storefront keeps its state in.
//
// # Overview
//
// Store is a small capability (Get/Set/Remove) so services do not depend on
// a storage engine. Values are opaque strings; GetJSON and SetJSON encode
// records as JSON documents.
//
// Implementations
//
//   - MemoryStore  in-process map, used by tests and the "memory" driver
//   - SQLStore     kv table in SQLite (modernc.org/sqlite) or PostgreSQL (pgx)
//
// # Batches
//
// SetAll writes several keys at once. Stores implementing Batcher apply the
// batch atomically; others fall back to one Set per key.
//
// # Concurrency
//
// Last write wins. There is no conflict detection between sessions sharing
// one database.
package storage
