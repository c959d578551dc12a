package dataset_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/santidefelice/cspkit/dataset"
	"github.com/santidefelice/cspkit/sudoku"
)

func sampleRecords(t *testing.T, count int) []dataset.Record {
	t.Helper()

	gen := sudoku.NewGenerator(77)
	records := make([]dataset.Record, 0, count)

	for i := 0; i < count; i++ {
		grid, _ := gen.Generate(20 + i)
		records = append(records, dataset.Record{
			Name: "puzzle-" + string(rune('a'+i)),
			Grid: grid.Compact(),
		})
	}

	return records
}

func roundTrip(t *testing.T, fileName string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	records := sampleRecords(t, 5)

	writer, err := dataset.CreateWriter(path)
	if err != nil {
		t.Fatalf("failed to create writer: %s", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			t.Fatalf("failed to write record: %s", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %s", err)
	}

	got, err := dataset.ReadAll(path)
	if err != nil {
		t.Fatalf("failed to read dataset back: %s", err)
	}

	if len(got) != len(records) {
		t.Fatalf("expecting %d records, got %d", len(records), len(got))
	}
	for i := range got {
		if got[i] != records[i] {
			t.Fatalf("record %d mismatch: %+v != %+v", i, got[i], records[i])
		}

		if _, err := got[i].Parse(); err != nil {
			t.Fatalf("record %d does not parse: %s", i, err)
		}
	}
}

func TestRoundTripPlain(t *testing.T) {
	roundTrip(t, "puzzles.jsonl")
}

func TestRoundTripGzip(t *testing.T) {
	roundTrip(t, "puzzles.jsonl.gz")
}

func TestRoundTripZstd(t *testing.T) {
	roundTrip(t, "puzzles.jsonl.zst")
}

func TestRoundTripBrotli(t *testing.T) {
	roundTrip(t, "puzzles.jsonl.br")
}

func TestReaderSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gapped.jsonl")

	writer, err := dataset.CreateWriter(path)
	if err != nil {
		t.Fatalf("failed to create writer: %s", err)
	}

	grid, _ := sudoku.NewGenerator(8).Generate(22)
	writer.Write(dataset.Record{Grid: grid.Compact()})
	writer.Close()

	reader, err := dataset.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open reader: %s", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != nil {
		t.Fatalf("failed to read first record: %s", err)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Fatalf("expecting io.EOF after last record, got %v", err)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := dataset.ReadAll(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Fatalf("expecting error for missing dataset file")
	}
}
