package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

// SourceFile labels records loaded from input files.
const SourceFile = "file"

// Source is one input file and the delimiter its lines use.
type Source struct {
	Path      string
	Delimiter domain.Delimiter
}

func (s Source) String() string {
	return fmt.Sprintf("%s (%s)", s.Path, s.Delimiter.Name())
}

// ImportFiles parses every source and appends the combined records in source
// order. Nothing is stored unless every source parses.
type ImportFiles struct {
	reader   ports.RecordReader
	store    ports.RecordStore
	observer ports.IngestObserver
	log      *slog.Logger
}

func NewImportFiles(reader ports.RecordReader, store ports.RecordStore, observer ports.IngestObserver, log *slog.Logger) *ImportFiles {
	return &ImportFiles{
		reader:   reader,
		store:    store,
		observer: observerOrNoop(observer),
		log:      loggerOrDiscard(log),
	}
}

// Execute returns the records it imported.
func (uc *ImportFiles) Execute(ctx context.Context, sources []Source) ([]domain.Record, error) {
	all := []domain.Record{}
	counts := make([]int, len(sources))

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := uc.reader.ParseFile(src.Path, string(src.Delimiter))
		if err != nil {
			uc.observer.ParseFailed(SourceFile, err)
			uc.log.Warn("import.failed", "path", src.Path, "delimiter", src.Delimiter.Name(), "err", err)
			return nil, err
		}
		counts[i] = len(records)
		all = append(all, records...)
	}

	if err := uc.store.Append(ctx, all...); err != nil {
		return nil, err
	}

	for i, src := range sources {
		uc.observer.RecordsIngested(SourceFile, src.Delimiter, counts[i])
		uc.log.Info("import.done", "path", src.Path, "delimiter", src.Delimiter.Name(), "records", counts[i])
	}
	return all, nil
}
