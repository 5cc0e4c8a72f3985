// Package library owns the in-memory movie collection and its lifecycle.
//
// The Library type loads the full record set from a storage backend at open,
// applies mutations (add, delete, rating updates) against the in-memory copy,
// and persists the complete set back to the backend after every successful
// mutation. Titles are the unique key; lookups are case-insensitive so users
// do not have to reproduce OMDb's exact casing.
//
// Treat this package as the single source of truth for record semantics; the
// query and website layers only ever see snapshots returned by Movies().
package library
