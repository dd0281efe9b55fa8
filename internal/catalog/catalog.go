// Package catalog loads the sample data shown by the dashboard widgets.
// The default catalog is embedded; a TOML file with the same shape can
// replace it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"devhub/internal/contacts"
	"devhub/internal/tasks"
)

//go:embed sample.toml
var sample []byte

// Fruit is an entry of the snacks list.
type Fruit struct {
	Name     string `toml:"name"`
	Color    string `toml:"color"`
	Category string `toml:"category"`
}

// Catalog is the decoded sample data.
type Catalog struct {
	Fruits   []Fruit
	Skills   []string
	Contacts []contacts.Contact
	Tasks    []tasks.Task
}

type contactRecord struct {
	ID     int    `toml:"id"`
	Name   string `toml:"name"`
	Email  string `toml:"email"`
	Phone  string `toml:"phone"`
	Role   string `toml:"role"`
	Status string `toml:"status"`
}

type taskRecord struct {
	Title     string `toml:"title"`
	Completed bool   `toml:"completed"`
	Priority  string `toml:"priority"`
	Category  string `toml:"category"`
}

type document struct {
	Skills   []string        `toml:"skills"`
	Fruits   []Fruit         `toml:"fruits"`
	Contacts []contactRecord `toml:"contacts"`
	Tasks    []taskRecord    `toml:"tasks"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(sample)
}

// Load reads a catalog from a TOML file. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{Fruits: doc.Fruits, Skills: doc.Skills}
	for i, r := range doc.Contacts {
		status, err := contacts.ParseStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
		id := r.ID
		if id == 0 {
			id = i + 1
		}
		c.Contacts = append(c.Contacts, contacts.Contact{
			ID:     id,
			Name:   r.Name,
			Email:  r.Email,
			Phone:  r.Phone,
			Role:   r.Role,
			Status: status,
		})
	}
	for i, r := range doc.Tasks {
		p, err := tasks.ParsePriority(orDefault(r.Priority, string(tasks.PriorityMedium)))
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		cat, err := tasks.ParseCategory(orDefault(r.Category, string(tasks.CategoryWork)))
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		c.Tasks = append(c.Tasks, tasks.Task{
			Title:     r.Title,
			Completed: r.Completed,
			Priority:  p,
			Category:  cat,
		})
	}
	return c, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
