// Package store provides blob storage backends a context can expose
// through its storage-read capability.
//
// Every backend implements ReadBlob/WriteBlob and fails with its own
// narrow *Error, never with the aggregate fault: absorption into the
// fault is the calling component's job (see package fault). Error kinds
// separate the absence of a key (KindNotFound) from transport problems
// (KindIO) and from a store whose own invariants are broken
// (KindCorrupt).
//
// Backends:
//   - Memory: in-process map, safe for concurrent use.
//   - FS: one file per key under a root directory.
//   - SQLite: a blobs table in a SQLite database (modernc.org/sqlite,
//     no cgo).
package store
