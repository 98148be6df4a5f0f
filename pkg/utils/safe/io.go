package safe

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/secmon-lab/memora/pkg/utils/logging"
)

// Close safely closes an io.Closer and logs any errors.
// It handles nil closers gracefully.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Writer is a diagnostic sink shared by concurrent callers. Each WriteString
// reaches the underlying writer as one uninterrupted block, and a failed
// write is logged instead of returned. A nil underlying writer discards
// everything.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString writes s as one block
func (x *Writer) WriteString(ctx context.Context, s string) {
	if x == nil || x.w == nil {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if _, err := io.WriteString(x.w, s); err != nil {
		logging.From(ctx).Warn("Failed to write trace", slog.Any("error", err))
	}
}
