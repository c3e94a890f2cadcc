// Package records reads and writes the album list used by the file I/O
// lecture. The format is one header line followed by comma-separated lines:
//
//	rank,year,title,artist,genre
//
// Fields are trimmed and cannot contain commas; there is no quoting.
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header is the first line of every records file.
const Header = "Rank,Year,Album,Artist,Genre"

const numFields = 5

// ErrIO is wrapped by every error this package returns.
var ErrIO = errors.New("records i/o")

// Record is one ranked album.
type Record struct {
	Rank   int
	Year   int
	Title  string
	Artist string
	Genre  string
}

func (r Record) String() string {
	return fmt.Sprintf("#%d: %s by %s (%d) [%s]", r.Rank, r.Title, r.Artist, r.Year, r.Genre)
}

// ParseError locates a malformed line.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrIO }

// ReadRecords loads every record from path, skipping the header and blank lines.
func ReadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return parse(f, path)
}

func parse(r io.Reader, path string) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, msg := parseLine(line)
		if msg != "" {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: msg}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	return out, nil
}

func parseLine(line string) (Record, string) {
	cols := strings.Split(line, ",")
	if len(cols) != numFields {
		return Record{}, fmt.Sprintf("expected %d fields, got %d", numFields, len(cols))
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	rank, err := strconv.Atoi(cols[0])
	if err != nil {
		return Record{}, fmt.Sprintf("rank %q is not a number", cols[0])
	}
	year, err := strconv.Atoi(cols[1])
	if err != nil {
		return Record{}, fmt.Sprintf("year %q is not a number", cols[1])
	}
	return Record{Rank: rank, Year: year, Title: cols[2], Artist: cols[3], Genre: cols[4]}, ""
}

// format renders r as a single line, refusing fields that would break the format.
func format(r Record) (string, error) {
	for _, field := range []string{r.Title, r.Artist, r.Genre} {
		if strings.ContainsAny(field, ",\r\n") {
			return "", fmt.Errorf("%w: field %q contains a separator", ErrIO, field)
		}
	}
	return fmt.Sprintf("%d,%d,%s,%s,%s\n", r.Rank, r.Year, r.Title, r.Artist, r.Genre), nil
}

// AppendRecord adds r to the end of path. A header is written first when
// the file is missing or empty.
func AppendRecord(r Record, path string) (err error) {
	line, err := format(r)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrIO, path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	w := bufio.NewWriter(f)
	if info.Size() == 0 {
		w.WriteString(Header + "\n")
	}
	w.WriteString(line)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	return nil
}

// WriteRecords replaces the contents of path with a header and recs.
func WriteRecords(path string, recs []Record) (err error) {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		line, err := format(r)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrIO, path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	w.WriteString(Header + "\n")
	for _, l := range lines {
		w.WriteString(l)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	return nil
}

// WriteLines replaces the contents of path with lines, one per line.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrIO, path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, l := range lines {
		w.WriteString(l)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	return nil
}

// ReadLines returns every line of path with its line ending removed.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	return lines, nil
}
