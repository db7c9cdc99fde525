package recordfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/recordsort/internal/domain"
)

func TestParseFile_Valid(t *testing.T) {
	records, err := NewReader().ParseFile(filepath.Join("testdata", "records_valid.psv"), "|")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Ada,Weaver,female,red,12/15/2037", records[0].String())
	assert.Equal(t, "Kobe,Bass,male,green,10/11/1949", records[1].String())
	assert.Equal(t, "Riya,Murray,female,green,09/26/1945", records[2].String())
}

func TestParseFile_CRLF(t *testing.T) {
	records, err := NewReader().ParseFile(filepath.Join("testdata", "records_crlf.csv"), ",")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Russell,Khalid,male,indigo,03/24/2078", records[0].String())
}

func TestParseFile_EmptyFile(t *testing.T) {
	records, err := NewReader().ParseFile(filepath.Join("testdata", "records_empty.psv"), "|")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseFile_EmptyFileBadDelimiter(t *testing.T) {
	_, err := NewReader().ParseFile(filepath.Join("testdata", "records_empty.psv"), "/")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDelimiter)
}

func TestParseFile_DelimiterCheckedBeforePath(t *testing.T) {
	_, err := NewReader().ParseFile(filepath.Join("z", "foo", "bar", "nonexistent.csv"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidDelimiter)
}

func TestParseFile_BadDelimiter(t *testing.T) {
	_, err := NewReader().ParseFile(filepath.Join("testdata", "records_valid.psv"), "/")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDelimiter)
	assert.True(t, domain.IsParseError(err))
}

func TestParseFile_WrongDelimiterForContent(t *testing.T) {
	_, err := NewReader().ParseFile(filepath.Join("testdata", "records_valid.psv"), ",")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFieldCount)
	assert.Contains(t, err.Error(), "records_valid.psv:1")
}

func TestParseFile_InvalidLineFailsFast(t *testing.T) {
	path := filepath.Join("testdata", "records_invalid.psv")
	records, err := NewReader().ParseFile(path, "|")
	require.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrInvalidGender)

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, path, pe.Path)
}

func TestParseFile_NonExistentPath(t *testing.T) {
	_, err := NewReader().ParseFile(filepath.Join("z", "foo", "bar", "nonexistent.csv"), ",")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFilePath)
	assert.Contains(t, err.Error(), "invalid file path")
	assert.True(t, domain.IsParseError(err))
	assert.False(t, domain.IsResourceError(err))
}

func TestParseFile_DirectoryIsInvalidPath(t *testing.T) {
	_, err := NewReader().ParseFile(t.TempDir(), ",")
	assert.ErrorIs(t, err, domain.ErrInvalidFilePath)
}

func TestParseFile_UnreadableIsResourceError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	p := filepath.Join(t.TempDir(), "locked.csv")
	require.NoError(t, os.WriteFile(p, []byte("a,b,male,c,01/01/2000\n"), 0o000))

	_, err := NewReader().ParseFile(p, ",")
	require.Error(t, err)
	assert.True(t, domain.IsResourceError(err))
	assert.False(t, domain.IsParseError(err))
}

func TestParseFile_BlankLineInMiddleIsInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gap.csv")
	content := "Ada,Weaver,female,red,12/15/2037\n\nKobe,Bass,male,green,10/11/1949\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	_, err := NewReader().ParseFile(p, ",")
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
}

func TestParseReader_LineTooLong(t *testing.T) {
	r := NewReader(WithMaxLineBytes(16))
	_, err := r.ParseReader(strings.NewReader(strings.Repeat("x", 64)+"\n"), ",")
	require.Error(t, err)
	assert.True(t, domain.IsResourceError(err))
}

func TestParseReader_PreservesOrder(t *testing.T) {
	in := "b b male x 01/01/2000\na a female y 02/02/2000\nc c male z 03/03/2000"
	records, err := NewReader().ParseReader(strings.NewReader(in), " ")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{records[0].LastName, records[1].LastName, records[2].LastName})
}
