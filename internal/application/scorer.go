package app

import "pcb-partgraph/internal/domain/entity"

// Score считает precision, recall и F1. Нулевой знаменатель даёт 0.
func Score(tp, fp, fn int) entity.Metrics {
	m := entity.Metrics{TP: tp, FP: fp, FN: fn}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// ScoreMatch считает метрики по результату сопоставления.
func ScoreMatch(result entity.MatchResult, detectionCount, gtCount int) entity.Metrics {
	m := Score(len(result.Matches), len(result.FalsePositives), len(result.FalseNegatives))
	m.DetectionCount = detectionCount
	m.GTCount = gtCount
	return m
}
