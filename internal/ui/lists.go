package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"devhub/internal/catalog"
	"devhub/internal/logging"
	"devhub/internal/ui/searchlist"
)

// ListView adapts a searchlist.Model to a panel View.
type ListView[T any] struct {
	List *searchlist.Model[T]
}

var (
	_ View      = (*ListView[string])(nil)
	_ Focusable = (*ListView[string])(nil)
	_ Editor    = (*ListView[string])(nil)
	_ Resizable = (*ListView[string])(nil)
)

// Init implements View.
func (v *ListView[T]) Init() tea.Cmd { return v.List.Init() }

// Update implements View.
func (v *ListView[T]) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.List, cmd = v.List.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ListView[T]) View() string { return v.List.View() }

// Editing implements Editor.
func (v *ListView[T]) Editing() bool { return v.List.Editing() }

// Focus implements Focusable.
func (v *ListView[T]) Focus() { v.List.Focus() }

// Blur implements Focusable.
func (v *ListView[T]) Blur() { v.List.Blur() }

// SetWidth implements Resizable.
func (v *ListView[T]) SetWidth(w int) { v.List.SetWidth(w) }

// NewSnacksList lists fruits keyed by name, searchable by name or category.
func NewSnacksList(fruits []catalog.Fruit, opts ...searchlist.Option) (*ListView[catalog.Fruit], error) {
	l, err := searchlist.New(searchlist.Config[catalog.Fruit]{
		Items: fruits,
		RenderItem: func(f catalog.Fruit, _ int) string {
			swatch := lipgloss.NewStyle().Foreground(swatchColor(f.Color)).Render("■")
			return swatch + " " + Styles.Strong.Render(f.Name) + "  " + Styles.Muted.Render(f.Category)
		},
		KeyExtractor:      func(f catalog.Fruit, _ int) string { return f.Name },
		Title:             "Healthy Snacks",
		EmptyMessage:      "No fruits found. Try a different search!",
		Searchable:        true,
		SearchPlaceholder: "Search fruits...",
		SearchFilter: searchlist.SubstringFilter(func(f catalog.Fruit) []string {
			return []string{f.Name, f.Category}
		}),
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("snacks list: %w", err)
	}
	return &ListView[catalog.Fruit]{List: l}, nil
}

// NewSkillsList lists skills with numbered rows. The default predicate
// applies unless fuzzy is set.
func NewSkillsList(skills []string, fuzzy bool, opts ...searchlist.Option) (*ListView[string], error) {
	cfg := searchlist.Config[string]{
		Items: skills,
		RenderItem: func(s string, i int) string {
			return Styles.Muted.Render(fmt.Sprintf("%d.", i+1)) + " " + Styles.Normal.Render(s)
		},
		Title:             "Tech Skills",
		EmptyMessage:      "No skills match your search.",
		Searchable:        true,
		SearchPlaceholder: "Search skills...",
	}
	if fuzzy {
		cfg.SearchFilter = searchlist.FuzzyFilter(func(s string) string { return s })
	}
	l, err := searchlist.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("skills list: %w", err)
	}
	return &ListView[string]{List: l}, nil
}

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return logging.Discard()
	}
	return l
}
