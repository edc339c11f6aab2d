// Package kv provides the key-value persistence substrate of the bank.
//
// # Overview
//
// The Repository interface mirrors a browser-style local store: opaque byte
// values addressed by string keys, with Get/Set plus Delete, List and Clear
// for housekeeping. Two implementations bind it to database/sql:
//
//   - SQLiteRepository:   default local store (modernc.org/sqlite)
//   - PostgresRepository: shared store reached through pgx's stdlib driver
//
// Both operate on a dbx.DBTX, so several keys can be written inside one
// *sql.Tx and committed together.
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Set is an upsert. Delete of a
// missing key is not an error.
package kv
