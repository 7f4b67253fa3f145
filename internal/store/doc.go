// Package store provides SQLite-backed history of embedding runs.
//
// Each run records the directive it resolved, the resulting headers, and one
// row per emitted placement in emission order.
//
// # Ordering
//
//   - Runs are ordered by seq INTEGER (logical clock), never by timestamps
//   - Placements are ordered by position within their run
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Run IDs are UUIDv7, so they also sort by creation time.
package store
