// Package searchlist provides a generic list view for Bubble Tea that renders
// an ordered sequence of arbitrary items with optional free-text filtering.
//
// The list never inspects its items directly. Rendering, identity keys and
// search matching are all delegated to caller-supplied functions; the only
// state the list owns is the current search term (plus a highlight cursor
// for keyboard navigation).
package searchlist

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Defaults applied by New when the corresponding Config field is empty.
const (
	DefaultTitle             = "List Items"
	DefaultEmptyMessage      = "No items to display"
	DefaultSearchPlaceholder = "Search items..."
)

// ErrNoRenderer is returned by New when Config.RenderItem is nil.
var ErrNoRenderer = errors.New("searchlist: RenderItem is required")

// RenderFunc produces the visual representation of one item.
// index is the item's position within the visible sequence.
type RenderFunc[T any] func(item T, index int) string

// KeyFunc produces a stable identity key for an item.
type KeyFunc[T any] func(item T, index int) string

// SearchFilterFunc reports whether item matches the search term.
type SearchFilterFunc[T any] func(item T, term string) bool

// Config is the caller-owned configuration of a list.
type Config[T any] struct {
	Items             []T
	RenderItem        RenderFunc[T]
	KeyExtractor      KeyFunc[T]          // nil = visible index
	Title             string              // "" = DefaultTitle
	EmptyMessage      string              // "" = DefaultEmptyMessage
	Searchable        bool
	SearchPlaceholder string              // "" = DefaultSearchPlaceholder
	SearchFilter      SearchFilterFunc[T] // nil = DefaultFilter
}

// Row is one visible entry of the list.
type Row[T any] struct {
	Key   string
	Index int // position within the visible sequence
	Item  T
}

// State is the search state of a list.
type State int

const (
	Idle      State = iota // empty search term, every item visible
	Filtering              // non-empty search term
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Filtering:
		return "Filtering"
	default:
		return "Unknown"
	}
}

// ChangeFunc observes search term changes. visible is the number of items
// left after filtering with the new term.
type ChangeFunc func(term string, visible int)

// Option configures the ambient dependencies of a Model.
type Option func(*options)

type options struct {
	logger   *log.Logger
	tracer   trace.Tracer
	onChange ChangeFunc
	styles   *Styles
	width    int
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracer sets the tracer used to record filter spans.
// Defaults to the global OpenTelemetry tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithOnChange registers an observer called after every search term change.
func WithOnChange(fn ChangeFunc) Option {
	return func(o *options) { o.onChange = fn }
}

// WithStyles overrides DefaultStyles.
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = &s }
}

// WithWidth sets the initial render width.
func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

// Model is a generic searchable list.
type Model[T any] struct {
	cfg        Config[T]
	searchTerm string
	input      textinput.Model
	cursor     int
	focused    bool
	width      int
	styles     Styles
	logger     *log.Logger
	tracer     trace.Tracer
	onChange   ChangeFunc
}

// New creates a list from cfg, filling in defaults for empty fields.
func New[T any](cfg Config[T], opts ...Option) (*Model[T], error) {
	if cfg.RenderItem == nil {
		return nil, ErrNoRenderer
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = DefaultEmptyMessage
	}
	if cfg.SearchPlaceholder == "" {
		cfg.SearchPlaceholder = DefaultSearchPlaceholder
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer("devhub/searchlist")
	}
	styles := DefaultStyles()
	if o.styles != nil {
		styles = *o.styles
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = cfg.SearchPlaceholder
	ti.Width = 32 // a zero width clips the placeholder to one rune
	ti.PromptStyle = styles.Prompt
	ti.PlaceholderStyle = styles.Placeholder

	m := &Model[T]{
		cfg:      cfg,
		input:    ti,
		styles:   styles,
		logger:   o.logger,
		tracer:   o.tracer,
		onChange: o.onChange,
	}
	m.SetWidth(o.width)
	return m, nil
}

// Title returns the configured title.
func (m *Model[T]) Title() string { return m.cfg.Title }

// Searchable reports whether the search input is enabled.
func (m *Model[T]) Searchable() bool { return m.cfg.Searchable }

// Items returns the full, unfiltered item sequence.
func (m *Model[T]) Items() []T { return m.cfg.Items }

// SetItems replaces the backing items. The search term is kept.
func (m *Model[T]) SetItems(items []T) {
	m.cfg.Items = items
	m.clampCursor()
}

// SearchTerm returns the current search term.
func (m *Model[T]) SearchTerm() string { return m.searchTerm }

// SetSearchTerm replaces the search term and keeps the input in sync.
func (m *Model[T]) SetSearchTerm(term string) {
	if m.input.Value() != term {
		m.input.SetValue(term)
	}
	m.applyTerm(term)
}

// State returns Filtering when the search term is non-empty.
func (m *Model[T]) State() State {
	if m.searchTerm == "" {
		return Idle
	}
	return Filtering
}

// Visible returns the items that pass the current search term, in their
// original order. The backing slice is never modified.
func (m *Model[T]) Visible() []T {
	if !m.cfg.Searchable || m.searchTerm == "" {
		return m.cfg.Items
	}
	match := m.cfg.SearchFilter
	if match == nil {
		match = DefaultFilter[T]
	}
	out := make([]T, 0, len(m.cfg.Items))
	for _, item := range m.cfg.Items {
		if match(item, m.searchTerm) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns the number of visible items.
func (m *Model[T]) Count() int { return len(m.Visible()) }

// Rows returns the visible items with their derived keys.
func (m *Model[T]) Rows() []Row[T] {
	visible := m.Visible()
	rows := make([]Row[T], len(visible))
	for i, item := range visible {
		rows[i] = Row[T]{Key: m.keyFor(item, i), Index: i, Item: item}
	}
	return rows
}

// Keys returns the keys of the visible rows, in order.
func (m *Model[T]) Keys() []string {
	rows := m.Rows()
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	return keys
}

// Selected returns the highlighted visible item.
func (m *Model[T]) Selected() (T, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[m.cursor], true
}

// Cursor returns the highlight position within the visible sequence.
func (m *Model[T]) Cursor() int { return m.cursor }

// Editing reports whether the search input currently captures key input.
func (m *Model[T]) Editing() bool { return m.input.Focused() }

// Focused reports whether the list is the active panel.
func (m *Model[T]) Focused() bool { return m.focused }

// Focus marks the list as the active panel.
func (m *Model[T]) Focus() { m.focused = true }

// Blur marks the list as inactive and stops editing.
func (m *Model[T]) Blur() {
	m.focused = false
	m.input.Blur()
}

// SetWidth sets the render width. Zero means unconstrained.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
	if w > 4 {
		m.input.Width = w - 4
	}
}

// Init implements the Bubble Tea component contract.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles key input for search editing and cursor movement.
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.input.Focused() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.input.Focused() {
		switch keyMsg.String() {
		case "enter", "esc":
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(keyMsg)
		m.applyTerm(m.input.Value())
		return m, cmd
	}

	switch keyMsg.String() {
	case "/":
		if m.cfg.Searchable {
			return m, m.input.Focus()
		}
	case "esc":
		if m.searchTerm != "" {
			m.SetSearchTerm("")
		}
	case "j", "down":
		if m.cursor < m.Count()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if n := m.Count(); n > 0 {
			m.cursor = n - 1
		}
	}
	return m, nil
}

// applyTerm is the single mutation path of the search term.
func (m *Model[T]) applyTerm(term string) {
	if term == m.searchTerm {
		return
	}
	_, span := m.tracer.Start(context.Background(), "searchlist.filter")
	defer span.End()

	from := m.State()
	m.searchTerm = term
	m.cursor = 0
	visible := m.Count()

	span.SetAttributes(
		attribute.String("searchlist.title", m.cfg.Title),
		attribute.Int("searchlist.term_length", len(term)),
		attribute.Int("searchlist.visible", visible),
	)
	if to := m.State(); to != from {
		m.logger.Debug("search state changed", "list", m.cfg.Title, "from", from, "to", to)
	}
	if m.onChange != nil {
		m.onChange(term, visible)
	}
}

func (m *Model[T]) keyFor(item T, index int) string {
	if m.cfg.KeyExtractor != nil {
		return m.cfg.KeyExtractor(item, index)
	}
	return strconv.Itoa(index)
}

func (m *Model[T]) clampCursor() {
	n := m.Count()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
