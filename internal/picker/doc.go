// Package picker implements the interactive fuzzy selection used by "wut run".
//
// The pieces are layered so everything but Run is pure and testable
// without a terminal:
//
//   - MatchText scores one text against a query (sahilm/fuzzy).
//   - Rank filters and orders the candidate set for a query.
//   - State is the selection state machine driven by Key events.
//   - Render draws a State as a frame string.
//   - Run hosts the State in a bubbletea program, which owns raw mode
//     and restores the terminal on every exit path.
package picker
