package entity

import "fmt"

// NodeType тип узла графа разметки.
type NodeType string

const (
	NodeComponent NodeType = "component" // корпус компонента
	NodePad       NodeType = "pad"       // контактная площадка
)

// NodeTypeCount ширина one-hot кодирования типа узла.
const NodeTypeCount = 2

// Index возвращает позицию типа в one-hot кодировании.
// Неизвестные типы намеренно попадают в слот component (0), а не в ошибку.
func (t NodeType) Index() int {
	if t == NodePad {
		return 1
	}
	return 0
}

// EdgeType тип ребра графа разметки.
type EdgeType string

const (
	EdgeBelongsTo EdgeType = "belongs_to" // площадка принадлежит компоненту
	EdgeTrace     EdgeType = "trace"      // дорожка между площадками
)

// EdgeTypeCount ширина one-hot кодирования типа ребра.
const EdgeTypeCount = 2

// Index возвращает позицию типа ребра в one-hot; неизвестные типы: 0.
func (t EdgeType) Index() int {
	if t == EdgeTrace {
		return 1
	}
	return 0
}

// ImageMeta описание изображения, к которому относится граф.
type ImageMeta struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// BBox прямоугольник компонента [x0, y0, x1, y1].
type BBox [4]float64

// Width возвращает ширину прямоугольника.
func (b BBox) Width() float64 { return b[2] - b[0] }

// Height возвращает высоту прямоугольника.
func (b BBox) Height() float64 { return b[3] - b[1] }

// Node узел графа. BBox есть у компонентов, Radius у площадок.
type Node struct {
	ID     string   `json:"id"`
	Type   NodeType `json:"type"`
	Label  string   `json:"label"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	BBox   *BBox    `json:"bbox,omitempty"`
	Radius *float64 `json:"radius,omitempty"`
}

// Point вершина ломаной дорожки.
type Point [2]float64

// Edge ребро графа.
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Type     EdgeType `json:"type"`
	Polyline []Point  `json:"polyline,omitempty"`
}

// Graph граф разметки платы. Создаётся только через NewGraph.
type Graph struct {
	Image ImageMeta `json:"image"`
	Nodes []Node    `json:"nodes"`
	Edges []Edge    `json:"edges"`
}

// NewGraph собирает граф и проверяет его целостность: размеры изображения,
// уникальность id, наличие bbox у компонентов, существование концов рёбер.
func NewGraph(image ImageMeta, nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{Image: image, Nodes: nodes, Edges: edges}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate проверяет инварианты графа. Все ошибки: ErrParse.
func (g *Graph) Validate() error {
	if g.Image.Width <= 0 || g.Image.Height <= 0 {
		return fmt.Errorf("%w: invalid image size %dx%d", ErrParse, g.Image.Width, g.Image.Height)
	}

	ids := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node %d has empty id", ErrParse, i)
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: duplicate node id %q", ErrParse, n.ID)
		}
		ids[n.ID] = struct{}{}

		if n.Type == NodeComponent && n.BBox == nil {
			return fmt.Errorf("%w: component %q has no bbox", ErrParse, n.ID)
		}
	}

	for i, e := range g.Edges {
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("%w: edge %d references unknown source %q", ErrParse, i, e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("%w: edge %d references unknown target %q", ErrParse, i, e.Target)
		}
	}

	return nil
}

// Pads возвращает узлы-площадки в исходном порядке.
func (g *Graph) Pads() []Node {
	pads := make([]Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Type == NodePad {
			pads = append(pads, n)
		}
	}
	return pads
}
