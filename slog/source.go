// Package slog provides logging decorators for teologia services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/teologia"
)

// Ensure LoggingSourceService implements teologia.SourceService.
var _ teologia.SourceService = (*LoggingSourceService)(nil)

// LoggingSourceService wraps a SourceService with debug logging.
type LoggingSourceService struct {
	next   teologia.SourceService
	logger *slog.Logger
}

// NewLoggingSourceService creates a new LoggingSourceService.
func NewLoggingSourceService(next teologia.SourceService, logger *slog.Logger) *LoggingSourceService {
	return &LoggingSourceService{next: next, logger: logger}
}

// FindSourceByID delegates to the wrapped service and logs the lookup.
func (s *LoggingSourceService) FindSourceByID(ctx context.Context, id string) (src *teologia.Source, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find source",
			"id", id,
			"found", src != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSourceByID(ctx, id)
}

// FindSources delegates to the wrapped service and logs the search.
func (s *LoggingSourceService) FindSources(ctx context.Context, filter teologia.SourceFilter) (sources []teologia.Source, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find sources",
			"query", filter.Query,
			"categories", categoryNames(filter.Categories),
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSources(ctx, filter)
}

func categoryNames(set teologia.CategorySet) []string {
	names := make([]string, 0, len(set))
	for _, c := range set.List() {
		names = append(names, string(c))
	}
	return names
}
