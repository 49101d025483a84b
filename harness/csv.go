package harness

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/fredholm/function"
)

// formatFloat prints the shortest decimal that round-trips, never in
// exponent form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes one "x,value" record per point to path, truncating any
// existing file.
func WriteCSV(path string, pts []function.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, p := range pts {
		if err := writer.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return fmt.Errorf("WriteCSV(%s): %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("WriteCSV(%s): %w", path, err)
	}

	return file.Close()
}
