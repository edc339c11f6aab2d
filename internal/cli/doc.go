// Package cli provides the interactive GophBank terminal client.
//
// It wires configuration, the local database, the bank engines and a
// read–eval–print loop. On start the previous session is restored when its
// token is still valid; auto-clicker income is announced asynchronously
// through the bank's notifier.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
