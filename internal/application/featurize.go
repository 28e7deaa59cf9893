package app

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"pcb-partgraph/internal/domain/entity"
)

// Featurize превращает граф разметки в тензоры для графовой модели.
//
// Строка узла: one-hot типа, x/W, y/H, размер (radius/max(W,H) для площадки,
// ширина/W и высота/H bbox для компонента), степень/max(1, N-1).
// Каждое ребро выдаётся дважды (s→t, t→s) с одинаковым one-hot типа.
// Входной граф не изменяется.
func Featurize(g *entity.Graph) (*entity.FeatureSet, error) {
	w := float64(g.Image.Width)
	h := float64(g.Image.Height)
	n := len(g.Nodes)

	index := make(map[string]int, n)
	nodeIDs := make([]string, n)
	for i, node := range g.Nodes {
		index[node.ID] = i
		nodeIDs[i] = node.ID
	}

	degree := make([]float64, n)
	edgeTypes := make([]string, len(g.Edges))
	src := make([]int, 0, 2*len(g.Edges))
	dst := make([]int, 0, 2*len(g.Edges))
	attr := make([]float64, 0, 2*len(g.Edges)*entity.EdgeTypeCount)

	for i, e := range g.Edges {
		s, ok := index[e.Source]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d source %q", entity.ErrLookup, i, e.Source)
		}
		d, ok := index[e.Target]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d target %q", entity.ErrLookup, i, e.Target)
		}

		edgeTypes[i] = string(e.Type)
		src = append(src, s, d)
		dst = append(dst, d, s)

		oneHot := make([]float64, entity.EdgeTypeCount)
		oneHot[e.Type.Index()] = 1
		attr = append(attr, oneHot...)
		attr = append(attr, oneHot...)

		degree[s]++
		degree[d]++
	}

	fs := &entity.FeatureSet{
		NodeIDs:      nodeIDs,
		EdgeTypes:    edgeTypes,
		NodeFeatures: &mat.Dense{},
		EdgeIndex:    [2][]int{src, dst},
		EdgeAttr:     &mat.Dense{},
	}

	if n > 0 {
		degreeNorm := math.Max(1, float64(n-1))
		maxSide := math.Max(w, h)
		x := mat.NewDense(n, entity.NodeFeatureWidth, nil)

		for i, node := range g.Nodes {
			x.Set(i, node.Type.Index(), 1)
			x.Set(i, 2, node.X/w)
			x.Set(i, 3, node.Y/h)

			switch {
			case node.Type == entity.NodePad:
				if node.Radius != nil {
					x.Set(i, 4, *node.Radius/maxSide)
				}
			case node.BBox != nil:
				x.Set(i, 4, node.BBox.Width()/w)
				x.Set(i, 5, node.BBox.Height()/h)
			}

			x.Set(i, 6, degree[i]/degreeNorm)
		}
		fs.NodeFeatures = x
	}

	if len(attr) > 0 {
		fs.EdgeAttr = mat.NewDense(len(src), entity.EdgeTypeCount, attr)
	}

	return fs, nil
}
