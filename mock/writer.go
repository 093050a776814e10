package mock

import (
	"context"

	"github.com/fwojciec/teologia"
)

var _ teologia.SourceWriter = (*SourceWriter)(nil)

// SourceWriter is a mock implementation of teologia.SourceWriter.
type SourceWriter struct {
	ReplaceSourcesFn func(ctx context.Context, sources []teologia.Source) error
}

func (w *SourceWriter) ReplaceSources(ctx context.Context, sources []teologia.Source) error {
	return w.ReplaceSourcesFn(ctx, sources)
}
