package entity

import "gonum.org/v1/gonum/mat"

// NodeFeatureWidth ширина вектора признаков узла:
// [0:2) one-hot типа, [2:4) позиция, [4:6) размер, [6] степень.
const NodeFeatureWidth = NodeTypeCount + 2 + 2 + 1

// FeatureSet тензоры графа для графовой модели. Только для чтения.
type FeatureSet struct {
	NodeIDs   []string // id узлов по строкам NodeFeatures
	EdgeTypes []string // типы исходных рёбер

	// NodeFeatures N×NodeFeatureWidth; для пустого графа: пустая матрица.
	NodeFeatures *mat.Dense
	// EdgeIndex 2×2E: каждое ребро в обе стороны, в исходном порядке.
	EdgeIndex [2][]int
	// EdgeAttr 2E×EdgeTypeCount one-hot типа для каждой направленной записи.
	EdgeAttr *mat.Dense
}

// NodeCount возвращает число узлов.
func (f *FeatureSet) NodeCount() int {
	return len(f.NodeIDs)
}

// DirectedEdgeCount возвращает число направленных рёбер (2E).
func (f *FeatureSet) DirectedEdgeCount() int {
	return len(f.EdgeIndex[0])
}
