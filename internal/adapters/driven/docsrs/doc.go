// Package docsrs provides a Fetcher implementation for docs.rs, the
// documentation host for crates published to crates.io. Requests are
// throttled proactively with a token bucket so batch conversions stay
// well below the host's limits.
package docsrs
