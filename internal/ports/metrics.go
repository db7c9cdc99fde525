package ports

import "github.com/aalvaropc/recordsort/internal/domain"

// IngestObserver is notified about ingestion outcomes (e.g., for metrics).
type IngestObserver interface {
	RecordsIngested(source string, delimiter domain.Delimiter, n int)
	ParseFailed(source string, err error)
}
