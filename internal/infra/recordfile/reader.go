package recordfile

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

// defaultMaxLineBytes bounds a single record line.
const defaultMaxLineBytes = 1 << 20

// Reader parses delimited record files line by line.
type Reader struct {
	maxLineBytes int
}

type Option func(*Reader)

// WithMaxLineBytes overrides the longest accepted line.
func WithMaxLineBytes(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxLineBytes = n
		}
	}
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{maxLineBytes: defaultMaxLineBytes}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.RecordReader = (*Reader)(nil)

// ParseFile parses every line of path, in order, stopping at the first bad line.
//
// The delimiter is validated before touching the filesystem. A missing path is
// a parse error ("invalid file path"); failures opening or reading an existing
// file are resource errors.
func (r *Reader) ParseFile(path string, delimiter string) ([]domain.Record, error) {
	if _, err := domain.CheckDelimiter(delimiter); err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return nil, &domain.ParseError{
			Err:  domain.ErrInvalidFilePath,
			Msg:  "invalid file path",
			Path: path,
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recordfile.open",
			Kind: domain.KindResource,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	return r.parse(f, delimiter, path)
}

// ParseReader applies the same rules as ParseFile to an already open stream.
func (r *Reader) ParseReader(in io.Reader, delimiter string) ([]domain.Record, error) {
	if _, err := domain.CheckDelimiter(delimiter); err != nil {
		return nil, err
	}
	return r.parse(in, delimiter, "")
}

func (r *Reader) parse(in io.Reader, delimiter string, path string) ([]domain.Record, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(64*1024, r.maxLineBytes)), r.maxLineBytes)

	records := []domain.Record{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		rec, err := domain.ParseLine(sc.Text(), delimiter)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Path = path
				pe.Line = lineNo
			}
			return nil, err
		}
		records = append(records, rec)
	}

	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "recordfile.read",
			Kind: domain.KindResource,
			Path: path,
			Err:  err,
		}
	}
	return records, nil
}
