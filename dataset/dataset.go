// Package dataset reads and writes puzzle collections as JSON lines files,
// optionally compressed. Compression is picked from the file extension:
// .gz, .zst and .br are recognized, anything else is plain text.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/santidefelice/cspkit/sudoku"
)

// Record is one puzzle line inside a dataset file.
type Record struct {
	Name       string `json:"name,omitempty"`
	Grid       string `json:"grid"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Parse decodes the record's grid text.
func (r Record) Parse() (sudoku.Grid, error) {
	return sudoku.ParseGrid(r.Grid)
}

// Reader streams records out of a dataset file.
type Reader struct {
	file   *os.File
	stream io.ReadCloser
	lines  *bufio.Scanner
	line   int
}

func OpenReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %s", path, err)
	}

	stream, err := newDecompressReader(file, filepath.Ext(path))
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Reader{
		file:   file,
		stream: stream,
		lines:  bufio.NewScanner(stream),
	}, nil
}

// Next returns the next record, or io.EOF after the last one. Blank lines
// are skipped.
func (r *Reader) Next() (Record, error) {
	for r.lines.Scan() {
		r.line++

		data := r.lines.Bytes()
		if len(data) == 0 {
			continue
		}

		record := Record{}
		if err := json.Unmarshal(data, &record); err != nil {
			return record, fmt.Errorf("invalid record at line %d: %s", r.line, err)
		}

		return record, nil
	}

	if err := r.lines.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read dataset: %s", err)
	}

	return Record{}, io.EOF
}

func (r *Reader) Close() error {
	r.stream.Close()
	return r.file.Close()
}

// ReadAll loads a whole dataset file into memory.
func ReadAll(path string) ([]Record, error) {
	reader, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var records []Record
	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// Writer appends records to a dataset file, one JSON object per line.
type Writer struct {
	file   *os.File
	stream io.WriteCloser
	buf    *bufio.Writer
}

func CreateWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset %s: %s", path, err)
	}

	stream, err := newCompressWriter(file, filepath.Ext(path))
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Writer{
		file:   file,
		stream: stream,
		buf:    bufio.NewWriter(stream),
	}, nil
}

func (w *Writer) Write(record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %s", err)
	}

	if _, err := w.buf.Write(data); err != nil {
		return fmt.Errorf("failed to write record: %s", err)
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write record: %s", err)
	}

	return nil
}

func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.stream.Close()
		w.file.Close()
		return fmt.Errorf("failed to flush dataset: %s", err)
	}

	if err := w.stream.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to finish compressed stream: %s", err)
	}

	return w.file.Close()
}
