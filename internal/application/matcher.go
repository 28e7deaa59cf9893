package app

import (
	"math"

	"pcb-partgraph/internal/domain/entity"
)

// MatchGreedy жадно сопоставляет детекции с эталонными площадками.
//
// Внешний цикл идёт по ground truth в исходном порядке. Для каждой площадки
// берётся ближайшая ещё не занятая детекция (при равенстве: первая, сравнение
// строгое), и она принимается, если расстояние ≤ toleranceFactor × радиус.
// Результат зависит от порядка и не является оптимальным назначением.
func MatchGreedy(detections []entity.Detection, groundTruths []entity.GroundTruthPad, toleranceFactor float64) entity.MatchResult {
	used := make([]bool, len(detections))
	matched := make([]bool, len(groundTruths))
	matches := make([]entity.Match, 0, len(groundTruths))

	for gi, gt := range groundTruths {
		best := -1
		bestDist := math.Inf(1)
		for dj, det := range detections {
			if used[dj] {
				continue
			}
			dist := det.Distance(gt.X, gt.Y)
			if dist < bestDist {
				best, bestDist = dj, dist
			}
		}

		if best >= 0 && bestDist <= toleranceFactor*gt.Radius {
			used[best] = true
			matched[gi] = true
			matches = append(matches, entity.Match{GroundTruth: gi, Detection: best})
		}
	}

	result := entity.MatchResult{
		Matches:        matches,
		FalsePositives: []int{},
		FalseNegatives: []int{},
	}
	for dj, u := range used {
		if !u {
			result.FalsePositives = append(result.FalsePositives, dj)
		}
	}
	for gi, m := range matched {
		if !m {
			result.FalseNegatives = append(result.FalseNegatives, gi)
		}
	}

	return result
}
