package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
)

var ErrMalformedRow = errors.New("dataset: malformed row")

// ReadCSV читает точки в формате "x,y", по одной на строку.
// Строки, начинающиеся с '#', пропускаются.
func ReadCSV(r io.Reader) ([]dbscan.Point, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	points := make([]dbscan.Point, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedRow, line, len(record))
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: x: %w", ErrMalformedRow, line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: y: %w", ErrMalformedRow, line, err)
		}

		points = append(points, dbscan.Point{X: x, Y: y})
	}
}
