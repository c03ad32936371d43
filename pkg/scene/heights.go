package scene

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadHeightsCSV reads a height matrix from a CSV file: one row per
// line, numeric cells, every row the same length
func LoadHeightsCSV(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open heights file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read heights file: %w", err)
	}

	heights := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, cell := range record {
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid height at row %d, column %d: %w", i, j, err)
			}
			row[j] = value
		}
		heights[i] = row
	}
	return heights, nil
}
