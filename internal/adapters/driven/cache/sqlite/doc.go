// Package sqlite provides a SQLite-backed PageCache implementation.
// Converted pages are persisted keyed by their fetch coordinates
// (crate@version, optionally with an item path) so repeated fetches of
// the same docs.rs page skip the network and the conversion pass.
package sqlite
