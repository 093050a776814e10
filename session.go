package teologia

import "context"

// Session holds the query state of a single user. It is not safe for
// concurrent use; callers serialize access per session.
type Session struct {
	Query      string
	Mode       Mode
	Categories CategorySet

	// Results and Answer come from the most recent Submit and are replaced
	// together. Submitted is false until the first successful Submit.
	Results   []Source
	Answer    *Answer
	Submitted bool
}

// NewSession returns a session with an empty query, pointed mode and no
// active categories.
func NewSession() *Session {
	return &Session{
		Mode:       ModePointed,
		Categories: NewCategorySet(),
	}
}

// SetQuery updates the free-text query without running a search.
func (s *Session) SetQuery(query string) {
	s.Query = query
}

// SetMode updates the answer mode without running a search.
func (s *Session) SetMode(mode Mode) {
	s.Mode = mode
}

// ToggleCategory adds or removes a category filter without running a search.
func (s *Session) ToggleCategory(c Category) {
	if s.Categories == nil {
		s.Categories = NewCategorySet()
	}
	s.Categories.Toggle(c)
}

// Submit searches sources with the current query state and replaces the
// results and answer. On error the previous results and answer are kept.
func (s *Session) Submit(ctx context.Context, sources SourceService) error {
	filter := SourceFilter{
		Categories: NewCategorySet(s.Categories.List()...),
		Query:      s.Query,
	}
	results, err := sources.FindSources(ctx, filter)
	if err != nil {
		return err
	}

	s.Results = results
	s.Answer = ComposeAnswer(results, s.Mode)
	s.Submitted = true
	return nil
}
