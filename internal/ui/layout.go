package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Rows() [][]string     // panel IDs, top to bottom, left to right
	FocusOrder() []string // Tab order for focus
}

// GridLayout is a Layout of rows with equal-width columns.
type GridLayout struct {
	rows [][]string
}

var _ Layout = (*GridLayout)(nil)

// NewGridLayout creates a grid from rows of panel IDs.
func NewGridLayout(rows ...[]string) *GridLayout {
	return &GridLayout{rows: rows}
}

// Rows implements Layout.
func (g *GridLayout) Rows() [][]string { return g.rows }

// FocusOrder implements Layout: reading order.
func (g *GridLayout) FocusOrder() []string {
	var order []string
	for _, row := range g.rows {
		order = append(order, row...)
	}
	return order
}

// ColumnWidths splits total into n columns separated by one-column gaps.
// The remainder goes to the leftmost columns.
func ColumnWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	avail := total - (n - 1)
	if avail < n {
		avail = n
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = avail / n
		if i < avail%n {
			widths[i]++
		}
	}
	return widths
}
