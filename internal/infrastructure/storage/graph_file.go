package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// graphDocument формат файла на диске. Указатели отличают отсутствующий
// ключ от нулевого значения.
type graphDocument struct {
	Image *entity.ImageMeta `json:"image"`
	Nodes *[]nodeDocument   `json:"nodes"`
	Edges *[]edgeDocument   `json:"edges"`
}

type nodeDocument struct {
	ID     *string         `json:"id"`
	Type   entity.NodeType `json:"type"`
	Label  string          `json:"label"`
	X      *float64        `json:"x"`
	Y      *float64        `json:"y"`
	BBox   *entity.BBox    `json:"bbox"`
	Radius *float64        `json:"radius"`
}

type edgeDocument struct {
	Source   *string         `json:"source"`
	Target   *string         `json:"target"`
	Type     entity.EdgeType `json:"type"`
	Polyline []entity.Point  `json:"polyline"`
}

// GraphFileRepository хранит графы разметки в JSON файлах.
type GraphFileRepository struct{}

// NewGraphFileRepository создаёт файловое хранилище графов.
func NewGraphFileRepository() *GraphFileRepository {
	return &GraphFileRepository{}
}

// Load читает граф из файла. Ошибка чтения: ErrIO, битый документ: ErrParse.
func (r *GraphFileRepository) Load(ctx context.Context, path string) (*entity.Graph, error) {
	_ = ctx
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read graph: %w", entity.ErrIO, err)
	}

	g, err := DecodeGraph(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode реализует port.GraphRepository.
func (r *GraphFileRepository) Decode(data []byte) (*entity.Graph, error) {
	return DecodeGraph(data)
}

// Save записывает граф с отступами, создавая каталоги.
func (r *GraphFileRepository) Save(ctx context.Context, path string, g *entity.Graph) error {
	_ = ctx
	data, err := gojson.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	return nil
}

// DecodeGraph разбирает JSON документ графа и проверяет его целостность.
// Обязательны image, nodes, edges; у каждого узла: id, x, y; у ребра: source, target.
func DecodeGraph(data []byte) (*entity.Graph, error) {
	var doc graphDocument
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode graph: %w", entity.ErrParse, err)
	}

	switch {
	case doc.Image == nil:
		return nil, fmt.Errorf("%w: missing key %q", entity.ErrParse, "image")
	case doc.Nodes == nil:
		return nil, fmt.Errorf("%w: missing key %q", entity.ErrParse, "nodes")
	case doc.Edges == nil:
		return nil, fmt.Errorf("%w: missing key %q", entity.ErrParse, "edges")
	}

	nodes := make([]entity.Node, 0, len(*doc.Nodes))
	for i, n := range *doc.Nodes {
		if n.ID == nil {
			return nil, fmt.Errorf("%w: node %d: missing key %q", entity.ErrParse, i, "id")
		}
		if n.X == nil || n.Y == nil {
			return nil, fmt.Errorf("%w: node %q: missing key x or y", entity.ErrParse, *n.ID)
		}
		nodes = append(nodes, entity.Node{
			ID:     *n.ID,
			Type:   n.Type,
			Label:  n.Label,
			X:      *n.X,
			Y:      *n.Y,
			BBox:   n.BBox,
			Radius: n.Radius,
		})
	}

	edges := make([]entity.Edge, 0, len(*doc.Edges))
	for i, e := range *doc.Edges {
		if e.Source == nil || e.Target == nil {
			return nil, fmt.Errorf("%w: edge %d: missing source or target", entity.ErrParse, i)
		}
		edges = append(edges, entity.Edge{
			Source:   *e.Source,
			Target:   *e.Target,
			Type:     e.Type,
			Polyline: e.Polyline,
		})
	}

	return entity.NewGraph(*doc.Image, nodes, edges)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %w", entity.ErrIO, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", entity.ErrIO, path, err)
	}
	return nil
}

var _ port.GraphRepository = (*GraphFileRepository)(nil)
