// Package storage persists the movie collection behind a pluggable Backend.
//
// Three backends exist: a JSON array file, a CSV file with a header row, and
// a schema-versioned SQLite database. Open selects the backend from the
// configured format, inferring it from the file extension when set to "auto".
// File backends write atomically (temp file + rename) and take an exclusive
// flock around load/save so overlapping CLI invocations cannot interleave a
// read-modify-write; SQLite relies on its own transaction semantics.
//
// Insertion order is part of the contract: every backend returns records in
// the order they were saved.
package storage
