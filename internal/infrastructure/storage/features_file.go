package storage

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"

	"pcb-partgraph/internal/domain/entity"
)

type featuresDocument struct {
	NodeIDs   []string    `json:"node_ids"`
	EdgeTypes []string    `json:"edge_types"`
	X         [][]float64 `json:"x"`
	EdgeIndex [2][]int    `json:"edge_index"`
	EdgeAttr  [][]float64 `json:"edge_attr"`
}

// WriteFeatures сохраняет тензоры графа в JSON.
func WriteFeatures(path string, fs *entity.FeatureSet) error {
	doc := featuresDocument{
		NodeIDs:   fs.NodeIDs,
		EdgeTypes: fs.EdgeTypes,
		X:         rows(fs.NodeFeatures),
		EdgeIndex: fs.EdgeIndex,
		EdgeAttr:  rows(fs.EdgeAttr),
	}

	data, err := gojson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	return writeFile(path, data)
}

func rows(m *mat.Dense) [][]float64 {
	out := [][]float64{}
	if m == nil || m.IsEmpty() {
		return out
	}
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		out = append(out, mat.Row(nil, i, m))
	}
	return out
}
