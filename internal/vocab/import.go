package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig describes where the columns of a spreadsheet live.
// Columns use spreadsheet letters ("A", "B", ...). An empty LevelColumn
// groups rows into levels of WordsPerLevel in file order.
type ImportConfig struct {
	FilePath          string
	SheetName         string
	TermColumn        string
	TranslationColumn string
	LevelColumn       string
	ThemeColumn       string
	StartRow          int // 1-based
	WordsPerLevel     int
}

// DefaultImportConfig returns the layout used by `lexiz import`.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:         "Sheet1",
		TermColumn:        "A",
		TranslationColumn: "B",
		LevelColumn:       "C",
		ThemeColumn:       "D",
		StartRow:          2,
		WordsPerLevel:     20,
	}
}

// ImportResult holds the converted vocabulary and per-row diagnostics.
type ImportResult struct {
	Vocabulary *Vocabulary
	Processed  int
	Skipped    int
	Errors     []string
}

// Import reads an .xlsx or .csv file and converts it into a vocabulary.
func Import(cfg ImportConfig) (*ImportResult, error) {
	var rows [][]string
	var err error
	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".csv" {
		rows, err = readCSV(cfg.FilePath)
	} else {
		rows, err = readExcel(cfg.FilePath, cfg.SheetName)
	}
	if err != nil {
		return nil, err
	}
	return convertRows(rows, cfg)
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type columns struct {
	term, translation, level, theme int
}

func resolveColumns(cfg ImportConfig) (columns, error) {
	idx := func(name string) (int, error) {
		if name == "" {
			return -1, nil
		}
		n, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return -1, fmt.Errorf("column %q: %w", name, err)
		}
		return n - 1, nil
	}
	var c columns
	var err error
	if c.term, err = idx(cfg.TermColumn); err != nil {
		return c, err
	}
	if c.translation, err = idx(cfg.TranslationColumn); err != nil {
		return c, err
	}
	if c.level, err = idx(cfg.LevelColumn); err != nil {
		return c, err
	}
	if c.theme, err = idx(cfg.ThemeColumn); err != nil {
		return c, err
	}
	if c.term < 0 || c.translation < 0 {
		return c, errors.New("term and translation columns are required")
	}
	return c, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func convertRows(rows [][]string, cfg ImportConfig) (*ImportResult, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}
	perLevel := cfg.WordsPerLevel
	if perLevel <= 0 {
		perLevel = 20
	}
	start := cfg.StartRow
	if start < 1 {
		start = 1
	}

	res := &ImportResult{}
	grouped := map[int]*Level{}
	accepted := 0
	for i := start - 1; i < len(rows); i++ {
		row := rows[i]
		res.Processed++

		term, translation := cell(row, cols.term), cell(row, cols.translation)
		if term == "" || translation == "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: missing term or translation", i+1))
			continue
		}

		key := accepted/perLevel + 1
		if cols.level >= 0 {
			n, err := strconv.Atoi(cell(row, cols.level))
			if err != nil || n < 1 {
				res.Skipped++
				res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid level %q", i+1, cell(row, cols.level)))
				continue
			}
			key = n
		}
		accepted++

		lvl, ok := grouped[key]
		if !ok {
			lvl = &Level{}
			grouped[key] = lvl
		}
		if lvl.Theme == "" {
			lvl.Theme = cell(row, cols.theme)
		}
		lvl.Words = append(lvl.Words, WordPair{Term: term, Translation: translation})
	}

	// Declared level numbers may have gaps; renumber densely in order.
	keys := make([]int, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	v := &Vocabulary{}
	for i, k := range keys {
		lvl := grouped[k]
		lvl.ID = i + 1
		if lvl.Theme == "" {
			lvl.Theme = fmt.Sprintf("Level %d", lvl.ID)
		}
		v.Levels = append(v.Levels, *lvl)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	res.Vocabulary = v
	return res, nil
}
