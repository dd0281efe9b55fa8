// Package ui is the devhub dashboard built on Bubble Tea.
//
// Core abstractions:
//   - View: a widget or overlay with its own model, update, view (Elm-style)
//   - Panel: a bordered region of the grid that hosts a View
//   - Layout: arranges panels in rows and defines tab order
//   - FocusManager: tracks and rotates focus across panels
//   - KeybindRegistry/KeyHandler: global keys plus the SPC leader menu,
//     optionally scoped to the focused panel
//   - OverlayStack: modals (goal editor, key reference) drawn above the grid
//
// Lists are searchlist.Model instances wrapped as panel views.
package ui
