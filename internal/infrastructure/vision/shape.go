package vision

import (
	"math"

	"pcb-partgraph/internal/domain/entity"
)

// EstimateShape возвращает центроид блоба и радиус круга той же площади.
//
// Это оценка, а не аппроксимация: для залитого растрового круга радиуса R
// площадь ≈ πR², поэтому r = sqrt(n/π) ≈ R с точностью до ошибки растеризации.
func EstimateShape(blob entity.Blob) entity.Detection {
	n := len(blob)
	if n == 0 {
		return entity.Detection{}
	}

	var sumX, sumY float64
	for _, p := range blob {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}

	return entity.Detection{
		X: sumX / float64(n),
		Y: sumY / float64(n),
		R: math.Sqrt(float64(n) / math.Pi),
	}
}
