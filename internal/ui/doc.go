// Package ui provides the terminal user interface for plugview.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program (Elm architecture): Model holds all
// state, Update folds messages into it, View renders a full frame.
// Domain behavior is split out of the Bubble Tea plumbing into a
// Controller that consumes tagged events (SearchTextChanged,
// ColumnSelected, ClearSearch, ...) and owns the ViewState — the
// query, sort settings, and visible subset. Key and mouse handlers
// only translate input into those events, so the whole filter/sort
// state machine is testable without a terminal attached.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key/mouse dispatch, scrolling, Run
//   - controller.go: event types, ViewState, the dispatch state machine
//   - table.go: column layout, zebra-striped row rendering, header hit-testing
//   - header.go, status.go: chrome lines ("Showing N of M plugins")
//   - help.go: centered help overlay
//   - keys.go: bubbles/key bindings with help metadata
//   - theme.go: named lipgloss palettes, cycled with T and persisted to prefs
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alt screen with mouse
//     support.
//  2. Keystrokes in the search field emit SearchTextChanged on every
//     edit (live filtering) and SearchSubmitted on enter.
//  3. Header clicks and the 1-5 keys emit ColumnSelected; selecting the
//     active column reverses direction, a new column sorts ascending.
//  4. The controller recomputes the visible subset (filter, then sort)
//     and the view re-renders table, counter, and chrome.
//
// A failed dataset load degrades rather than exits: the title shows an
// error state, the table is empty, and a transient notice describes
// the failure.
package ui
