// Package state manages per-document session persistence.
//
// A session is the transient editing state of one document: the current
// selection and, while a drag is in flight, the gesture bookkeeping needed
// to finish or abandon it. Sessions are stored as JSON files in the
// sessions/ directory of the elemlist root, keyed by a hash of the
// document's absolute path, so the document file itself only ever holds
// committed element order.
//
// Key concepts:
//   - Session: selection plus optional drag record for one document
//   - DragState: baseline, working list and checksum captured at drag start
//   - SessionID: stable identifier derived from the document path
//   - SessionStore: interface for persisting and loading sessions
package state
