// Package history persists a log of publish runs in a local SQLite
// database: when each run happened, whether it succeeded, and the record
// counts that went into the gallery.
//
// The log is observability, not state the publisher depends on; a failed
// insert never fails a run. Schema changes bump schemaVersion in store.go;
// users delete the database to adopt the new schema.
package history
