// Package cli provides the interactive Daily Epiphany command-line client.
//
// It wires configuration, the local SQLite store, the generation provider and
// an interactive REPL. Typical flow: restore the previous session, show the
// daily challenge, and execute user commands until exit.
//
// Key features:
//   - Observe: turn a mundane observation into a generated insight
//   - History: list, show, favorite, export
//   - Daily challenge with streaks and badges
//   - Mindful moment: a timed session with ambient audio
//   - Simulated accounts with per-identity history and settings
//   - Share links, community feed, test digest emails
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
