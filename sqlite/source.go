package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/teologia"
)

// Compile-time interface verification.
var (
	_ teologia.SourceService = (*SourceService)(nil)
	_ teologia.SourceWriter  = (*SourceService)(nil)
)

// SourceService implements teologia.SourceService using SQLite.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// ReplaceSources replaces the stored sources with the given ones.
// The slice order becomes the catalog order. Duplicate IDs return ECONFLICT.
func (s *SourceService) ReplaceSources(ctx context.Context, sources []teologia.Source) error {
	seen := make(map[string]struct{}, len(sources))
	for i := range sources {
		if err := sources[i].Validate(); err != nil {
			return err
		}
		if _, ok := seen[sources[i].ID]; ok {
			return teologia.Errorf(teologia.ECONFLICT, "duplicate source ID %q", sources[i].ID)
		}
		seen[sources[i].ID] = struct{}{}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sources`); err != nil {
		return err
	}

	for i, src := range sources {
		topics, err := encodeTopics(src.Topics)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sources (id, author, category, work, section, topics, url, quote, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, src.ID, src.Author, string(src.Category), src.Work, src.Section, topics, src.URL, src.Quote, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*teologia.Source, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, author, category, work, section, topics, url, quote
		FROM sources
		WHERE id = ?
	`, id)

	src, err := scanSource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, teologia.Errorf(teologia.ENOTFOUND, "source %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// FindSources retrieves sources matching the filter, in catalog order.
// The category restriction runs in SQL; text matching uses
// teologia.Source.Matches so it agrees with the in-memory catalog.
func (s *SourceService) FindSources(ctx context.Context, filter teologia.SourceFilter) ([]teologia.Source, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, author, category, work, section, topics, url, quote FROM sources WHERE 1=1")

	var categories []string
	for c := range filter.Categories {
		categories = append(categories, string(c))
	}
	appendIn(&query, &args, "category", categories)

	query.WriteString(" ORDER BY position")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sources := []teologia.Source{}
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		if !src.Matches(filter.Query) {
			continue
		}
		sources = append(sources, *src)
	}

	return sources, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSource(row scanner) (*teologia.Source, error) {
	var src teologia.Source
	var category, topics string

	if err := row.Scan(&src.ID, &src.Author, &category, &src.Work, &src.Section, &topics, &src.URL, &src.Quote); err != nil {
		return nil, err
	}

	src.Category = teologia.Category(category)

	var err error
	if src.Topics, err = decodeTopics(topics); err != nil {
		return nil, err
	}
	return &src, nil
}
