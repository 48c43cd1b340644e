// Package catalog holds the static list of portfolio projects.
//
// The catalog is built once at startup and is read-only for the rest of
// the process; filtering only selects a view and never reorders entries.
package catalog

import "fmt"

// CategoryAll is the reserved filter value that selects the whole catalog.
const CategoryAll = "all"

// Project represents one portfolio entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Icon         string   `json:"icon"`
	DemoURL      string   `json:"demo_url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	DocsURL      string   `json:"docs_url,omitempty"`
}

// Catalog is an immutable, ordered collection of projects.
type Catalog struct {
	projects []Project
}

// New validates the entries and builds a catalog. IDs must be unique and
// ID, Title, Description and Category must be non-empty; a violation is an
// authoring error, so it surfaces here rather than at render time.
func New(projects []Project) (*Catalog, error) {
	seen := make(map[string]struct{}, len(projects))
	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: empty id", i)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("project %q: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Title == "" {
			return nil, fmt.Errorf("project %q: empty title", p.ID)
		}
		if p.Description == "" {
			return nil, fmt.Errorf("project %q: empty description", p.ID)
		}
		if p.Category == "" {
			return nil, fmt.Errorf("project %q: empty category", p.ID)
		}
	}

	c := &Catalog{projects: make([]Project, len(projects))}
	copy(c.projects, projects)
	return c, nil
}

// All returns every project in definition order.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Select returns the projects matching category, preserving catalog order.
// CategoryAll selects everything; a category matching no record yields an
// empty slice, not an error.
func (c *Catalog) Select(category string) []Project {
	if category == CategoryAll {
		return c.All()
	}
	var out []Project
	for _, p := range c.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the project with the given id.
func (c *Catalog) Get(id string) (Project, bool) {
	for _, p := range c.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Categories returns the distinct categories in first-appearance order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.projects {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Len reports the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Technologies returns the distinct technology labels across the catalog,
// in first-appearance order. Used for the stats counters on the home page.
func (c *Catalog) Technologies() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.projects {
		for _, tech := range p.Technologies {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			out = append(out, tech)
		}
	}
	return out
}
