// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL. On startup a previously persisted session is restored,
// so a returning user lands already logged in.
//
// Key features:
//   - Signup / Login / Logout (session persisted across restarts)
//   - Show and update the account profile
//   - Demo mode: a built-in mock backend, no server required
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
