// Package tabular encodes per-document statistics and decodes statistics and
// metadata tables in CSV form.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lexstat/internal/adapter/fs"
	"lexstat/internal/domain"
)

// StatisticsHeader is the exact column order of the statistics table.
var StatisticsHeader = []string{"filename", "word_count", "words_ucount", "lines_count", "ttr_count"}

// EncodeStatistics writes the header and one row per document.
func EncodeStatistics(w io.Writer, stats []domain.DocumentStatistics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(StatisticsHeader); err != nil {
		return err
	}
	for _, s := range stats {
		row := []string{
			s.Filename,
			strconv.Itoa(s.WordCount),
			strconv.Itoa(s.UniqueWordCount),
			strconv.Itoa(s.LineCount),
			formatDecimal(s.TTR),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatistics writes the statistics table to path, creating its directory.
func WriteStatistics(path string, stats []domain.DocumentStatistics) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeStatistics(f, stats); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// DecodeStatistics reads a statistics table. Missing columns default to zero.
func DecodeStatistics(r io.Reader) ([]domain.DocumentStatistics, error) {
	rows, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.DocumentStatistics, 0, len(rows))
	for i, row := range rows {
		s := domain.DocumentStatistics{Filename: row["filename"]}
		if s.WordCount, err = parseInt(row, "word_count"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if s.UniqueWordCount, err = parseInt(row, "words_ucount"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if s.LineCount, err = parseInt(row, "lines_count"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if v := row["ttr_count"]; v != "" {
			if s.TTR, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("row %d: ttr_count %q: %w", i+2, v, err)
			}
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// ReadStatistics reads the statistics table at path.
func ReadStatistics(path string) ([]domain.DocumentStatistics, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stats, err := DecodeStatistics(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return stats, nil
}

// DecodeMetadata reads a metadata table with columns filename, title, author,
// year in any order. Unknown columns are ignored.
func DecodeMetadata(r io.Reader) ([]domain.Metadata, error) {
	rows, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	meta := make([]domain.Metadata, 0, len(rows))
	for _, row := range rows {
		meta = append(meta, domain.Metadata{
			Filename: row["filename"],
			Title:    row["title"],
			Author:   row["author"],
			Year:     row["year"],
		})
	}
	return meta, nil
}

// ReadMetadata reads the metadata table at path.
func ReadMetadata(path string) ([]domain.Metadata, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta, err := DecodeMetadata(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return meta, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("table %s: %w", path, fs.ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

// readRecords maps every data row to its header names.
func readRecords(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, value := range record {
			if i < len(header) {
				row[header[i]] = strings.TrimSpace(value)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseInt(row map[string]string, column string) (int, error) {
	v := row[column]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", column, v, err)
	}
	return n, nil
}

// formatDecimal renders v in shortest plain decimal form, always with a fraction.
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
