// Package roster extracts student names from uploaded roster files.
package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for extensions other than .txt, .csv and .xlsx.
var ErrUnsupportedFormat = errors.New("roster: unsupported file format")

// MaxNames caps how many names one file may contribute.
const MaxNames = 500

var headerNames = map[string]struct{}{
	"name":  {},
	"names": {},
	"الاسم": {},
	"اسم":   {},
}

// Parse reads names in file order. The format is picked from the filename
// extension. Blank entries are skipped and names are trimmed.
func Parse(filename string, r io.Reader) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", "":
		return parseText(r)
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func parseText(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		names = appendName(names, scanner.Text(), len(names) == 0)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster text: %w", err)
	}
	return limit(names)
}

func parseCSV(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read roster csv: %w", err)
	}
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var names []string
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse roster csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		names = appendName(names, record[0], first)
		first = false
	}
	return limit(names)
}

func parseXLSX(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open roster workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read roster sheet %s: %w", sheets[0], err)
	}

	var names []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		names = appendName(names, row[0], i == 0)
	}
	return limit(names)
}

// appendName adds raw unless it is blank or, on the first row, a column header.
func appendName(names []string, raw string, firstRow bool) []string {
	name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
	if name == "" {
		return names
	}
	if firstRow {
		if _, header := headerNames[strings.ToLower(name)]; header {
			return names
		}
	}
	return append(names, name)
}

func limit(names []string) ([]string, error) {
	if len(names) > MaxNames {
		return nil, fmt.Errorf("roster: %d names exceeds limit of %d", len(names), MaxNames)
	}
	return names, nil
}
