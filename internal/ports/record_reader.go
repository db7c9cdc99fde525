package ports

import (
	"io"

	"github.com/aalvaropc/recordsort/internal/domain"
)

// RecordReader parses whole inputs (e.g., files) into records.
type RecordReader interface {
	ParseFile(path string, delimiter string) ([]domain.Record, error)
	ParseReader(r io.Reader, delimiter string) ([]domain.Record, error)
}
