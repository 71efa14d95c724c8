// Package cli provides the interactive PackChann command-line client.
//
// It wires configuration, local storage, the HTTP gateway, and the session
// and package state services into an interactive REPL. Typical flow: restore
// the persisted session, then execute user commands against the station API.
//
// Key features:
//   - Login / Register / Logout with a persisted session snapshot
//   - List, inspect, check out, mail, and cancel packages
//   - Route navigation with the same access rules as the web client
//   - Admin commands: users, station-wide packs, check-in, status updates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
