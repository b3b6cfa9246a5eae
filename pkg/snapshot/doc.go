// Package snapshot stores compiled property tables so that a host can start
// without recompiling its JSON configuration.
//
// A snapshot records the digest of the source document it was compiled from.
// Store.LoadFresh only returns a snapshot whose digest matches the current
// source, so an edited configuration is never served from a stale file.
package snapshot
