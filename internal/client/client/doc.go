// Package client contains client-side persistence bootstrap for Daily
// Epiphany: InitDatabase opens the local SQLite database (the system of
// record), applies the embedded goose migrations, and hands back the
// repositories the services layer works with.
//
// All stored collections live in a single namespaced blob table; see the
// blobs repository for the write semantics.
package client
