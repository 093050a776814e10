package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/teologia"
)

// Ensure SourceStore implements teologia.SourceWriter at compile time.
var _ teologia.SourceWriter = (*SourceStore)(nil)

// SourceStore keeps one markdown file per source in a directory.
// ReplaceSources writes to a temporary directory and renames it into place,
// so readers never see a partially written set.
type SourceStore struct {
	dir string
}

// NewSourceStore creates a SourceStore for the given directory.
func NewSourceStore(dir string) *SourceStore {
	return &SourceStore{dir: filepath.Clean(dir)}
}

func (s *SourceStore) tempDir() string {
	return s.dir + ".tmp"
}

// Path returns the file path of the source with the given ID.
func (s *SourceStore) Path(id string) string {
	return filepath.Join(s.dir, id+".md")
}

// ReplaceSources writes sources as <id>.md files, replacing the directory.
// Returns EINVALID for invalid sources or IDs that are not plain file names
// and ECONFLICT on duplicate IDs or when the directory holds anything other
// than previously written sources.
func (s *SourceStore) ReplaceSources(ctx context.Context, sources []teologia.Source) error {
	seen := make(map[string]struct{}, len(sources))
	for i := range sources {
		if err := sources[i].Validate(); err != nil {
			return err
		}
		id := sources[i].ID
		if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
			return teologia.Errorf(teologia.EINVALID, "source ID %q is not a valid file name", id)
		}
		if _, ok := seen[id]; ok {
			return teologia.Errorf(teologia.ECONFLICT, "duplicate source ID %q", id)
		}
		seen[id] = struct{}{}
	}

	if err := s.checkReplaceable(); err != nil {
		return err
	}

	tmp := s.tempDir()
	if err := os.RemoveAll(tmp); err != nil {
		return err
	}
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return err
	}

	for i := range sources {
		if err := ctx.Err(); err != nil {
			os.RemoveAll(tmp)
			return err
		}
		data, err := FormatSource(&sources[i], i)
		if err != nil {
			os.RemoveAll(tmp)
			return err
		}
		if err := os.WriteFile(filepath.Join(tmp, sources[i].ID+".md"), data, 0644); err != nil {
			os.RemoveAll(tmp)
			return err
		}
	}

	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}
	return os.Rename(tmp, s.dir)
}

// checkReplaceable returns ECONFLICT if the directory exists and contains
// an entry that is not a source file written by ReplaceSources.
func (s *SourceStore) checkReplaceable() error {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for _, e := range entries {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == ".md" {
			data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
			if err != nil {
				return err
			}
			if _, _, err := ParseSource(data); err == nil {
				continue
			}
		}
		return teologia.Errorf(teologia.ECONFLICT, "refusing to replace %q: %q is not an exported source", s.dir, e.Name())
	}
	return nil
}

// LoadSources reads every .md file in the directory and returns the sources
// in the order they were written. Returns ENOTFOUND if the directory does
// not exist and EINVALID for malformed or invalid files.
func (s *SourceStore) LoadSources(ctx context.Context) ([]teologia.Source, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, teologia.Errorf(teologia.ENOTFOUND, "source directory %q not found", s.dir)
	} else if err != nil {
		return nil, err
	}

	type positioned struct {
		src      teologia.Source
		position int
	}
	var loaded []positioned
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		src, position, err := ParseSource(data)
		if err != nil {
			return nil, teologia.Errorf(teologia.EINVALID, "%s: %s", e.Name(), teologia.ErrorMessage(err))
		}
		if err := src.Validate(); err != nil {
			return nil, teologia.Errorf(teologia.EINVALID, "%s: %s", e.Name(), teologia.ErrorMessage(err))
		}
		loaded = append(loaded, positioned{src: *src, position: position})
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].position < loaded[j].position
	})

	sources := make([]teologia.Source, len(loaded))
	for i := range loaded {
		sources[i] = loaded[i].src
	}
	return sources, nil
}
