// Package textutil provides unicode-aware text helpers for panel rendering.
package textutil

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the terminal column width of s, ignoring ANSI styling.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with spaces to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	if runewidth.StringWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// Plural formats n with the singular noun when n is 1 and plural otherwise.
func Plural(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}
	return strconv.Itoa(n) + " " + noun
}

// Percent formats p with the given number of decimals and a trailing %.
func Percent(p float64, decimals int) string {
	return strconv.FormatFloat(p, 'f', decimals, 64) + "%"
}

