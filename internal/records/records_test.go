package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Rank,Year,Album,Artist,Genre
1, 1971, What's Going On, Marvin Gaye, Soul
2,1966,Pet Sounds,The Beach Boys,Rock

3,1971,Blue,Joni Mitchell,Folk
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "albums.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeFile(t, sample)

	got, err := ReadRecords(path)
	require.NoError(t, err)

	want := []Record{
		{Rank: 1, Year: 1971, Title: "What's Going On", Artist: "Marvin Gaye", Genre: "Soul"},
		{Rank: 2, Year: 1966, Title: "Pet Sounds", Artist: "The Beach Boys", Genre: "Rock"},
		{Rank: 3, Year: 1971, Title: "Blue", Artist: "Joni Mitchell", Genre: "Folk"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	got, err := ReadRecords(writeFile(t, Header+"\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecords_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
		msg     string
	}{
		{"non-numeric rank", Header + "\none,1971,Blue,Joni Mitchell,Folk\n", 2, "rank"},
		{"non-numeric year", Header + "\n1,1971,Blue,Joni Mitchell,Folk\n2,nineteen,X,Y,Z\n", 3, "year"},
		{"too few fields", Header + "\n1,1971,Blue\n", 2, "expected 5 fields"},
		{"too many fields", Header + "\n1,1971,Blue,Joni,Folk,extra\n", 2, "expected 5 fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			_, err := ReadRecords(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIO)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
			assert.Contains(t, perr.Msg, tt.msg)
			assert.Equal(t, path, perr.Path)
		})
	}
}

func TestAppendRecord_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.csv")
	rec := Record{Rank: 500, Year: 2003, Title: "Funeral", Artist: "Arcade Fire", Genre: "Indie"}

	require.NoError(t, AppendRecord(rec, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n500,2003,Funeral,Arcade Fire,Indie\n", string(raw))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []Record{rec}, got)
}

func TestAppendRecord_AppendsToExisting(t *testing.T) {
	path := writeFile(t, sample)
	rec := Record{Rank: 4, Year: 1969, Title: "Abbey Road", Artist: "The Beatles", Genre: "Rock"}

	require.NoError(t, AppendRecord(rec, path))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, rec, got[3])
}

func TestAppendRecord_EmptyExistingFile(t *testing.T) {
	path := writeFile(t, "")
	rec := Record{Rank: 1, Year: 1971, Title: "Blue", Artist: "Joni Mitchell", Genre: "Folk"}

	require.NoError(t, AppendRecord(rec, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n1,1971,Blue,Joni Mitchell,Folk\n", string(raw))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []Record{rec}, got)
}

func TestAppendRecord_RejectsSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.csv")
	err := AppendRecord(Record{Rank: 1, Year: 1970, Title: "Bridge, Over", Artist: "S&G", Genre: "Folk"}, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing written on rejection")
}

func TestAppendRecord_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "albums.csv")
	err := AppendRecord(Record{Rank: 1, Year: 1970, Title: "A", Artist: "B", Genre: "C"}, path)
	assert.ErrorIs(t, err, ErrIO)
}

func TestWriteRecords_Overwrites(t *testing.T) {
	path := writeFile(t, sample)
	recs := []Record{{Rank: 9, Year: 2000, Title: "Kid A", Artist: "Radiohead", Genre: "Rock"}}

	require.NoError(t, WriteRecords(path, recs))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestRecordString(t *testing.T) {
	r := Record{Rank: 2, Year: 1966, Title: "Pet Sounds", Artist: "The Beach Boys", Genre: "Rock"}
	assert.Equal(t, "#2: Pet Sounds by The Beach Boys (1966) [Rock]", r.String())
}

func TestWriteLines_ThenReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	lines := []string{"Hello, World!", "This is a test file."}

	require.NoError(t, WriteLines(path, lines))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\nThis is a test file.\n", string(raw))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestWriteLines_Overwrites(t *testing.T) {
	path := writeFile(t, "old\ncontent\nhere\n")

	require.NoError(t, WriteLines(path, []string{"new"}))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
