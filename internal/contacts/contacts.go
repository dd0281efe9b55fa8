// Package contacts is a small contact directory.
package contacts

import (
	"fmt"
	"strings"
)

// Status is a contact's presence.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusOffline Status = "offline"
)

// ParseStatus accepts a status name; empty means offline.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusOnline:
		return StatusOnline, nil
	case StatusAway:
		return StatusAway, nil
	case StatusOffline, "":
		return StatusOffline, nil
	}
	return "", fmt.Errorf("contacts: unknown status %q", s)
}

// Contact is one directory entry. Phone and Role are optional.
type Contact struct {
	ID     int
	Name   string
	Email  string
	Phone  string
	Role   string
	Status Status
}

// Initials returns the upper-cased first letter of each word of the name.
func (c Contact) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.Name) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

// Matches reports whether term appears in the name, email or role,
// ignoring case.
func Matches(c Contact, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		(c.Role != "" && strings.Contains(strings.ToLower(c.Role), term))
}

// OnlineCount returns how many contacts are online.
func OnlineCount(list []Contact) int {
	n := 0
	for _, c := range list {
		if c.Status == StatusOnline {
			n++
		}
	}
	return n
}
