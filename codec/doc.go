// Package codec persists hopping stores as CBOR snapshots.
//
// A snapshot keeps the site count and, per family, the flattened coordinate
// list row0, col0, row1, col1, ... Encoding uses the core deterministic CBOR
// profile (RFC 8949 §4.2), so equal stores produce byte-identical output.
// Decoding rebuilds the store through hopping.FromBlocks and validates it,
// since snapshots cross a trust boundary that Add and Append never check.
// Encoding runs the same validation, so every snapshot written can be read back.
package codec
