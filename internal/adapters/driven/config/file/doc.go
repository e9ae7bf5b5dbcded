// Package file provides a file-based ConfigStore implementation backed by
// a TOML document. Nested tables are flattened into dot-notation keys
// (e.g., "docsrs.base_url") for lookup.
package file
