package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

// SourceAPI labels records that arrived one line at a time over HTTP.
const SourceAPI = "api"

// IngestRecord parses one raw line and appends it to the store.
type IngestRecord struct {
	store    ports.RecordStore
	observer ports.IngestObserver
	log      *slog.Logger
}

type IngestOption func(*IngestRecord)

func WithObserver(o ports.IngestObserver) IngestOption {
	return func(uc *IngestRecord) { uc.observer = observerOrNoop(o) }
}

func WithLogger(l *slog.Logger) IngestOption {
	return func(uc *IngestRecord) { uc.log = loggerOrDiscard(l) }
}

func NewIngestRecord(store ports.RecordStore, opts ...IngestOption) *IngestRecord {
	uc := &IngestRecord{
		store:    store,
		observer: noopObserver{},
		log:      loggerOrDiscard(nil),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the stored record, or the parse/storage error untouched.
func (uc *IngestRecord) Execute(ctx context.Context, data string, delimiter string) (domain.Record, error) {
	rec, err := domain.ParseLine(data, delimiter)
	if err != nil {
		uc.observer.ParseFailed(SourceAPI, err)
		uc.log.Debug("record.rejected", "delimiter", delimiter, "err", err)
		return domain.Record{}, err
	}

	if err := uc.store.Append(ctx, rec); err != nil {
		uc.log.Error("record.store_failed", "err", err)
		return domain.Record{}, err
	}

	uc.observer.RecordsIngested(SourceAPI, domain.Delimiter(delimiter), 1)
	uc.log.Info("record.ingested", "delimiter", domain.Delimiter(delimiter).Name())
	return rec, nil
}
