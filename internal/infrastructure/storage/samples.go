package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

const (
	samplePrefix    = "sample_"
	sampleImageName = "pcb.png"
	sampleGraphName = "graph.json"
)

// DatasetLayout раскладывает образцы как dir/sample_0001/{pcb.png,graph.json}.
type DatasetLayout struct{}

// NewDatasetLayout создаёт раскладку датасета.
func NewDatasetLayout() *DatasetLayout {
	return &DatasetLayout{}
}

// Sample возвращает пути образца с номером index.
func (DatasetLayout) Sample(dir string, index int) (entity.Sample, error) {
	if index < 1 {
		return entity.Sample{}, fmt.Errorf("sample index must be positive, got %d", index)
	}
	name := fmt.Sprintf("%s%04d", samplePrefix, index)
	return sampleAt(dir, name), nil
}

// List возвращает образцы, у которых есть граф, в порядке имён каталогов.
func (DatasetLayout) List(dir string) ([]entity.Sample, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list dataset: %w", entity.ErrIO, err)
	}

	var samples []entity.Sample
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), samplePrefix) {
			continue
		}
		s := sampleAt(dir, e.Name())
		if _, err := os.Stat(s.GraphPath); err != nil {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func sampleAt(dir, name string) entity.Sample {
	return entity.Sample{
		Name:      name,
		ImagePath: filepath.Join(dir, name, sampleImageName),
		GraphPath: filepath.Join(dir, name, sampleGraphName),
	}
}

var _ port.SampleStore = (*DatasetLayout)(nil)
