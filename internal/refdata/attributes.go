package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hejijunhao/lovetype/internal/model"
)

// Attribute table column labels. The table is authored in Japanese and the
// labels are matched verbatim after normalization.
const (
	ColumnType        = "type"
	ColumnEmpathy     = "共感"
	ColumnHarmony     = "調和"
	ColumnDependency  = "依存"
	ColumnStimulation = "刺激"
	ColumnTrust       = "信頼"
)

var requiredColumns = []string{
	ColumnType, ColumnEmpathy, ColumnHarmony, ColumnDependency, ColumnStimulation, ColumnTrust,
}

func (s *Store) loadAttributes() (*model.AttributeTable, error) {
	path, err := s.require(DatasetParams)
	if err != nil {
		return nil, err
	}
	text, enc, err := loadText(path)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tbl, err := ParseAttributes(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	s.logger.Info("reference data loaded",
		"dataset", DatasetParams, "path", path, "encoding", enc, "rows", len(tbl.Rows))
	return tbl, nil
}

// ParseAttributes reads an attribute table from decoded CSV text. Header
// labels are stripped of byte-order marks and surrounding whitespace before
// the required columns are located.
func ParseAttributes(r io.Reader) (*model.AttributeTable, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("attribute table is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, label := range header {
		label = NormalizeLabel(label)
		if _, dup := cols[label]; !dup {
			cols[label] = i
		}
	}
	for _, want := range requiredColumns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("column %q not found", want)
		}
	}

	var rows []model.AttributeRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return model.NewAttributeTable(rows), nil
}

// NormalizeLabel strips a byte-order mark and surrounding whitespace.
func NormalizeLabel(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\ufeff", ""))
}

func parseRow(rec []string, cols map[string]int) (model.AttributeRow, error) {
	row := model.AttributeRow{Name: strings.TrimSpace(rec[cols[ColumnType]])}
	if row.Name == "" {
		return row, errors.New("empty type name")
	}
	fields := []struct {
		col  string
		dest *int
	}{
		{ColumnEmpathy, &row.Empathy},
		{ColumnHarmony, &row.Harmony},
		{ColumnDependency, &row.Dependency},
		{ColumnStimulation, &row.Stimulation},
		{ColumnTrust, &row.Trust},
	}
	for _, f := range fields {
		v, err := parseAttribute(rec[cols[f.col]])
		if err != nil {
			return row, fmt.Errorf("type %q column %q: %w", row.Name, f.col, err)
		}
		*f.dest = v
	}
	return row, nil
}

// parseAttribute accepts a non-negative integer, also written as a float
// with no fractional part ("3.0").
func parseAttribute(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("not an integer: %q", s)
		}
		v = int(f)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %d", v)
	}
	return v, nil
}
