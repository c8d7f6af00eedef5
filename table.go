package threadchart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const (
	ThreadsColumn = "Threads"
	TimeColumn    = "Tempo"
)

var (
	ErrNotFound      = errors.New("result file not found")
	ErrMissingHeader = errors.New("missing header row")
	ErrMissingColumn = errors.New("missing required column")
)

// Row is one measurement: the average elapsed time of a run with the given
// number of threads.
type Row struct {
	Threads        int
	ElapsedSeconds float64
}

// ResultTable holds the rows of one result file in file order. It
// implements plotter.XYer with threads on X and elapsed seconds on Y.
type ResultTable []Row

func (t ResultTable) Len() int {
	return len(t)
}

func (t ResultTable) XY(i int) (x, y float64) {
	return float64(t[i].Threads), t[i].ElapsedSeconds
}

// ParseError reports a result file that could not be turned into a
// ResultTable.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(":")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:", e.Line)
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	if e.Column != "" {
		fmt.Fprintf(&b, "column %q: ", e.Column)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, "value %q: ", e.Value)
	}
	if e.Err == nil {
		b.WriteString("parse error")
	} else {
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadTable reads the result file at path.
func LoadTable(path string) (ResultTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTable(f)
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Path = path
	}
	return t, err
}

// ReadTable parses a comma separated table whose header names at least the
// Threads and Tempo columns. Other columns are ignored.
func ReadTable(r io.Reader) (ResultTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Err: ErrMissingHeader}
	}
	if err != nil {
		return nil, csvError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	threadsIdx, timeIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ThreadsColumn:
			threadsIdx = i
		case TimeColumn:
			timeIdx = i
		}
	}
	if threadsIdx < 0 {
		return nil, &ParseError{Line: 1, Column: ThreadsColumn, Err: ErrMissingColumn}
	}
	if timeIdx < 0 {
		return nil, &ParseError{Line: 1, Column: TimeColumn, Err: ErrMissingColumn}
	}
	table := ResultTable{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		threads, err := strconv.Atoi(strings.TrimSpace(record[threadsIdx]))
		if err != nil {
			return nil, &ParseError{Line: line, Column: ThreadsColumn, Value: record[threadsIdx], Err: numError(err)}
		}
		elapsed, err := strconv.ParseFloat(strings.TrimSpace(record[timeIdx]), 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: TimeColumn, Value: record[timeIdx], Err: numError(err)}
		}
		table = append(table, Row{Threads: threads, ElapsedSeconds: elapsed})
	}
	return table, nil
}

func csvError(err error) error {
	var cerr *csv.ParseError
	if errors.As(err, &cerr) {
		return &ParseError{Line: cerr.Line, Err: cerr.Err}
	}
	return err
}

// numError drops the strconv function name and input, which ParseError
// already reports.
func numError(err error) error {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) {
		return nerr.Err
	}
	return err
}

// WriteTable writes t in the format read by ReadTable.
func WriteTable(w io.Writer, t ResultTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ThreadsColumn, TimeColumn}); err != nil {
		return err
	}
	for _, row := range t {
		err := cw.Write([]string{
			strconv.Itoa(row.Threads),
			strconv.FormatFloat(row.ElapsedSeconds, 'g', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveTable writes t to a new file at path.
func SaveTable(path string, t ResultTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
