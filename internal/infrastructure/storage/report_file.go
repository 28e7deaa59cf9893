package storage

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"pcb-partgraph/internal/domain/entity"
)

// WriteBatchReport сохраняет итог оценки датасета в JSON.
func WriteBatchReport(path string, report *entity.BatchReport) error {
	data, err := gojson.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return writeFile(path, data)
}
