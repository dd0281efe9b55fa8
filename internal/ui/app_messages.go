package ui

import "time"

// FocusPanelMsg focuses the panel with the given ID (SPC f <key>).
type FocusPanelMsg struct {
	ID string
}

// FocusNextMsg moves focus forward in tab order.
type FocusNextMsg struct{}

// FocusPrevMsg moves focus backward in tab order.
type FocusPrevMsg struct{}

// ShowHelpMsg opens the key reference overlay.
type ShowHelpMsg struct{}

// ShowGoalEditorMsg opens the habit goal editor.
type ShowGoalEditorMsg struct{}

// SetGoalMsg is sent when the user saves a new habit goal.
type SetGoalMsg struct {
	Goal int
}

// EmailCopiedMsg reports the result of copying a contact's email.
type EmailCopiedMsg struct {
	Email string
	Err   error
}

// StatusMsg sets the footer status line.
type StatusMsg struct {
	Text string
	Err  bool
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// tickMsg advances the clock.
type tickMsg time.Time
