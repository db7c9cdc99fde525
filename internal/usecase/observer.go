package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

type noopObserver struct{}

func (noopObserver) RecordsIngested(string, domain.Delimiter, int) {}
func (noopObserver) ParseFailed(string, error)                     {}

var _ ports.IngestObserver = noopObserver{}

func observerOrNoop(o ports.IngestObserver) ports.IngestObserver {
	if o == nil {
		return noopObserver{}
	}
	return o
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return l
}
