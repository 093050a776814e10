// Package inmem provides a SourceService over the compiled-in catalog.
package inmem

import (
	"context"

	"github.com/fwojciec/teologia"
)

// Compile-time interface verification.
var _ teologia.SourceService = (*SourceService)(nil)

// SourceService implements teologia.SourceService over a fixed slice of sources.
type SourceService struct {
	sources []teologia.Source
}

// NewSourceService returns a service over the compiled-in catalog.
func NewSourceService() *SourceService {
	return &SourceService{sources: teologia.Catalog()}
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(_ context.Context, id string) (*teologia.Source, error) {
	for i := range s.sources {
		if s.sources[i].ID == id {
			src := s.sources[i]
			src.Topics = append([]string(nil), src.Topics...)
			return &src, nil
		}
	}
	return nil, teologia.Errorf(teologia.ENOTFOUND, "source %q not found", id)
}

// FindSources retrieves sources matching the filter, in catalog order.
func (s *SourceService) FindSources(_ context.Context, filter teologia.SourceFilter) ([]teologia.Source, error) {
	results := teologia.Filter(s.sources, filter.Categories, filter.Query)
	for i := range results {
		results[i].Topics = append([]string(nil), results[i].Topics...)
	}
	return results, nil
}
