package database

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// CSVExporter writes a row set out as CSV. The zero delimiter falls back to
// a comma, timestamps are formatted with TimeFormat when one is set.
type CSVExporter struct {
	Headers      []string
	WriteHeaders bool
	TimeFormat   string
	Delimiter    rune

	rows *sql.Rows
}

func NewCSVExporter(rows *sql.Rows) *CSVExporter {
	return &CSVExporter{
		rows:         rows,
		WriteHeaders: true,
		TimeFormat:   time.RFC3339,
		Delimiter:    ',',
	}
}

func (c *CSVExporter) WriteFile(csvFileName string) error {
	f, err := os.Create(csvFileName)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %s", csvFileName, err)
	}

	err = c.Write(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (c *CSVExporter) Write(writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	if c.Delimiter != '\x00' {
		csvWriter.Comma = c.Delimiter
	}

	columnNames, err := c.rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read column names: %s", err)
	}

	if c.WriteHeaders {
		headers := columnNames
		if len(c.Headers) > 0 {
			headers = c.Headers
		}

		if err := csvWriter.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %s", err)
		}
	}

	count := len(columnNames)
	values := make([]any, count)
	valuePtrs := make([]any, count)
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	for c.rows.Next() {
		if err := c.rows.Scan(valuePtrs...); err != nil {
			return fmt.Errorf("failed to scan row: %s", err)
		}

		row := make([]string, count)
		for i, raw := range values {
			row[i] = c.formatValue(raw)
		}

		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write data row to csv: %s", err)
		}
	}

	err = c.rows.Err()
	csvWriter.Flush()

	if err == nil {
		err = csvWriter.Error()
	}

	return err
}

func (c *CSVExporter) formatValue(raw any) string {
	if raw == nil {
		return ""
	}

	if byteArray, ok := raw.([]byte); ok {
		return string(byteArray)
	}

	if timeValue, ok := raw.(time.Time); ok && c.TimeFormat != "" {
		return timeValue.Format(c.TimeFormat)
	}

	return fmt.Sprintf("%v", raw)
}

// SaveAsCSV exports a row set to file with default settings.
func SaveAsCSV(rows *sql.Rows, fileName string) error {
	return NewCSVExporter(rows).WriteFile(fileName)
}
