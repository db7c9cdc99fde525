package filestore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

const defaultFileName = "records.jsonl"

// Store persists records as JSON lines, one record per line, in insertion order.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(path string, opts ...Option) *Store {
	if strings.TrimSpace(path) == "" {
		path = defaultFileName
	}
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RecordStore = (*Store)(nil)

type line struct {
	LastName      string    `json:"lastName"`
	FirstName     string    `json:"firstName"`
	Gender        string    `json:"gender"`
	FavoriteColor string    `json:"favoriteColor"`
	DateOfBirth   string    `json:"dateOfBirth"`
	StoredAt      time.Time `json:"storedAt"`
}

func (s *Store) Path() string { return s.path }

func (s *Store) Append(ctx context.Context, records ...domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	storedAt := s.now().UTC()
	var buf []byte
	for _, r := range records {
		b, err := json.Marshal(line{
			LastName:      r.LastName,
			FirstName:     r.FirstName,
			Gender:        r.Gender.String(),
			FavoriteColor: r.FavoriteColor,
			DateOfBirth:   domain.FormatDate(r.DateOfBirth),
			StoredAt:      storedAt,
		})
		if err != nil {
			return &domain.OpError{Op: "filestore.marshal", Kind: domain.KindStorage, Path: s.path, Err: err}
		}
		buf = append(buf, b...)
		buf = append(buf, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{Op: "filestore.mkdir", Kind: domain.KindStorage, Path: dir, Err: err}
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &domain.OpError{Op: "filestore.open", Kind: domain.KindStorage, Path: s.path, Err: err}
	}

	// Single write so a batch lands together.
	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		return &domain.OpError{Op: "filestore.write", Kind: domain.KindStorage, Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "filestore.close", Kind: domain.KindStorage, Path: s.path, Err: err}
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "filestore.open", Kind: domain.KindStorage, Path: s.path, Err: err}
	}
	defer f.Close()

	// Lines are read whole; Append never caps record size.
	out := []domain.Record{}
	br := bufio.NewReader(f)
	for n := 1; ; n++ {
		b, rerr := br.ReadBytes('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, &domain.OpError{Op: "filestore.read", Kind: domain.KindStorage, Path: s.path, Err: rerr}
		}

		if raw := bytes.TrimSpace(b); len(raw) > 0 {
			r, err := decodeLine(raw)
			if err != nil {
				return nil, &domain.OpError{
					Op:   "filestore.decode",
					Kind: domain.KindStorage,
					Path: s.path,
					Err:  fmt.Errorf("line %d: %w", n, err),
				}
			}
			out = append(out, r)
		}

		if rerr != nil {
			break
		}
	}
	return out, nil
}

func decodeLine(b []byte) (domain.Record, error) {
	var l line
	if err := json.Unmarshal(b, &l); err != nil {
		return domain.Record{}, err
	}

	var g domain.Gender
	if err := g.UnmarshalText([]byte(l.Gender)); err != nil {
		return domain.Record{}, err
	}
	dob, err := time.ParseInLocation(domain.DateLayout, l.DateOfBirth, time.UTC)
	if err != nil {
		return domain.Record{}, err
	}
	return domain.NewRecord(l.LastName, l.FirstName, g, l.FavoriteColor, dob), nil
}
