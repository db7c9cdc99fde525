package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/aalvaropc/recordsort/internal/domain"
)

type errStore struct{ err error }

func (s errStore) Append(context.Context, ...domain.Record) error { return s.err }
func (s errStore) List(context.Context) ([]domain.Record, error)  { return nil, s.err }

type recordingObserver struct {
	mu       sync.Mutex
	ingested map[string]int
	failures []error
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{ingested: map[string]int{}}
}

func (o *recordingObserver) RecordsIngested(source string, d domain.Delimiter, n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ingested[source+"/"+d.Name()] += n
}

func (o *recordingObserver) ParseFailed(_ string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, err)
}

type stubReader struct {
	byPath map[string][]domain.Record
	errFor map[string]error
	calls  []string
}

func (r *stubReader) ParseFile(path string, _ string) ([]domain.Record, error) {
	r.calls = append(r.calls, path)
	if err := r.errFor[path]; err != nil {
		return nil, err
	}
	return r.byPath[path], nil
}

func (r *stubReader) ParseReader(io.Reader, string) ([]domain.Record, error) {
	return nil, nil
}
