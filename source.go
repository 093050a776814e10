package teologia

import (
	"context"
	"strings"
)

// Category classifies the author of a source.
type Category string

// Category constants. Values are the display labels shown on the filter chips.
const (
	CategoryDoctor      Category = "Doctor de la Iglesia"
	CategoryTheologian  Category = "Teólogo"
	CategoryPhilosopher Category = "Filósofo"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryDoctor, CategoryTheologian, CategoryPhilosopher}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryDoctor, CategoryTheologian, CategoryPhilosopher:
		return true
	}
	return false
}

// ParseCategory converts a label or short alias into a Category.
// Matching is case-insensitive. Returns EINVALID for unknown values.
func ParseCategory(s string) (Category, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if v == strings.ToLower(string(c)) {
			return c, nil
		}
	}
	switch v {
	case "doctor", "doctores":
		return CategoryDoctor, nil
	case "teologo", "teólogo", "theologian":
		return CategoryTheologian, nil
	case "filosofo", "filósofo", "philosopher":
		return CategoryPhilosopher, nil
	}
	return "", Errorf(EINVALID, "unknown category %q", s)
}

// CategorySet is a set of active category filters.
// An empty set places no restriction on results.
type CategorySet map[Category]struct{}

// NewCategorySet returns a set containing the given categories.
func NewCategorySet(categories ...Category) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// Toggle adds c if absent and removes it if present.
func (s CategorySet) Toggle(c Category) {
	if s.Has(c) {
		delete(s, c)
		return
	}
	s[c] = struct{}{}
}

// List returns the members of the set in display order.
func (s CategorySet) List() []Category {
	var list []Category
	for _, c := range Categories() {
		if s.Has(c) {
			list = append(list, c)
		}
	}
	return list
}

// Source represents a citable work by an author in the catalog.
type Source struct {
	ID       string   `json:"id"`
	Author   string   `json:"author"`
	Category Category `json:"category"`
	Work     string   `json:"work"`
	Section  string   `json:"section,omitempty"`
	Topics   []string `json:"topics"`
	URL      string   `json:"url"`
	Quote    string   `json:"quote"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "source ID required")
	}
	if s.Author == "" {
		return Errorf(EINVALID, "source author required")
	}
	if s.Work == "" {
		return Errorf(EINVALID, "source work required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	if !s.Category.IsValid() {
		return Errorf(EINVALID, "source %q has unknown category %q", s.ID, s.Category)
	}
	return nil
}

// Matches reports whether the trimmed query is a case-insensitive substring
// of the author, the work, or any topic. An empty query matches everything.
func (s *Source) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(s.Author), q) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Work), q) {
		return true
	}
	for _, topic := range s.Topics {
		if strings.Contains(strings.ToLower(topic), q) {
			return true
		}
	}
	return false
}

// cloneSource returns a copy of s that shares no memory with it.
func cloneSource(s Source) Source {
	s.Topics = append([]string(nil), s.Topics...)
	return s
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	Categories CategorySet `json:"categories"`
	Query      string      `json:"query"`
}

// SourceService represents a service for looking up sources.
type SourceService interface {
	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves sources matching the filter, in catalog order.
	FindSources(ctx context.Context, filter SourceFilter) ([]Source, error)
}

// Filter returns the sources whose category is in categories (all of them
// when categories is empty) and which match query. The input order is kept.
func Filter(sources []Source, categories CategorySet, query string) []Source {
	out := make([]Source, 0, len(sources))
	for i := range sources {
		if len(categories) > 0 && !categories.Has(sources[i].Category) {
			continue
		}
		if !sources[i].Matches(query) {
			continue
		}
		out = append(out, sources[i])
	}
	return out
}

// SourceWriter replaces the stored set of sources.
type SourceWriter interface {
	// ReplaceSources stores sources in the given order, replacing any
	// previous contents. Returns ECONFLICT on duplicate IDs.
	ReplaceSources(ctx context.Context, sources []Source) error
}
