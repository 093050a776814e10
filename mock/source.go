package mock

import (
	"context"

	"github.com/fwojciec/teologia"
)

var _ teologia.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of teologia.SourceService.
type SourceService struct {
	FindSourceByIDFn func(ctx context.Context, id string) (*teologia.Source, error)
	FindSourcesFn    func(ctx context.Context, filter teologia.SourceFilter) ([]teologia.Source, error)
}

func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*teologia.Source, error) {
	return s.FindSourceByIDFn(ctx, id)
}

func (s *SourceService) FindSources(ctx context.Context, filter teologia.SourceFilter) ([]teologia.Source, error) {
	return s.FindSourcesFn(ctx, filter)
}
