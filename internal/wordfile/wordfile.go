// Package wordfile reads German/Chinese word lists from CSV, XLSX and plain
// text files.
//
// CSV and XLSX files have no header: column A holds the German word and
// column B its Chinese translation. Rows without both cells are skipped.
// Text files alternate lines: German, Chinese, German, Chinese, ...
package wordfile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// Pair is one German word with its Chinese translation.
type Pair struct {
	German  string
	Chinese string
}

const bom = "\uFEFF"

// Parse reads pairs from r, choosing the format by the extension of name.
// An unknown extension or a file without any pair is a validation error.
func Parse(name string, r io.Reader) ([]Pair, error) {
	var (
		pairs []Pair
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		pairs, err = ParseCSV(r)
	case ".xlsx":
		pairs, err = ParseXLSX(r)
	case ".txt":
		pairs, err = ParseTXT(r)
	default:
		return nil, domain.NewValidationError("file", fmt.Sprintf("unsupported format %q (want .csv, .xlsx or .txt)", ext))
	}
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, domain.NewValidationError("file", "no word pairs found")
	}
	return pairs, nil
}

// ParseCSV reads comma-separated rows.
func ParseCSV(r io.Reader) ([]Pair, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, domain.NewValidationError("file", fmt.Sprintf("csv line %d: %v", perr.Line, perr.Err))
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}

	return fromRows(rows), nil
}

// ParseXLSX reads the first sheet of a workbook.
func ParseXLSX(r io.Reader) ([]Pair, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.NewValidationError("file", fmt.Sprintf("open xlsx: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return fromRows(rows), nil
}

// ParseTXT reads alternating German and Chinese lines. Blank lines are
// ignored; an odd number of remaining lines is a validation error.
func ParseTXT(r io.Reader) ([]Pair, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), bom))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read txt: %w", err)
	}

	if len(lines)%2 == 1 {
		return nil, domain.NewValidationError("file", fmt.Sprintf("odd number of lines (%d): every German line needs a Chinese line", len(lines)))
	}

	pairs := make([]Pair, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		pairs = append(pairs, Pair{German: lines[i], Chinese: lines[i+1]})
	}
	return pairs, nil
}

// ToInputs scopes pairs to a level and topic for import.
func ToInputs(pairs []Pair, levelID, topicID uuid.UUID) []domain.WordInput {
	out := make([]domain.WordInput, len(pairs))
	for i, p := range pairs {
		out[i] = domain.WordInput{
			German:  p.German,
			Chinese: p.Chinese,
			LevelID: levelID,
			TopicID: topicID,
		}
	}
	return out
}

func fromRows(rows [][]string) []Pair {
	pairs := make([]Pair, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		german := row[0]
		if i == 0 {
			german = strings.TrimPrefix(german, bom)
		}
		german = strings.TrimSpace(german)
		chinese := strings.TrimSpace(row[1])
		if german == "" || chinese == "" {
			continue
		}
		pairs = append(pairs, Pair{German: german, Chinese: chinese})
	}
	return pairs
}
