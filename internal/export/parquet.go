package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/sp496/inventory-planning/internal/model"
)

// WriteDemandParquet writes the full projected-visit table as Parquet.
func WriteDemandParquet(path string, visits []model.ProjectedVisit) error {
	rows := make([]model.ForecastRow, len(visits))
	for i := range visits {
		rows[i] = visits[i].ToForecastRow()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[model.ForecastRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
