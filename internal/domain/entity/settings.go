package entity

import "image/color"

const (
	DefaultColorTolerance  = 25  // допуск по каждому каналу
	DefaultMinArea         = 40  // минимальная площадь блоба в пикселях
	DefaultToleranceFactor = 1.6 // множитель радиуса для матчинга
	DefaultPadRadius       = 8.0 // радиус площадки, если в графе его нет
)

// DefaultPadColor цвет площадок на синтетических платах.
var DefaultPadColor = color.RGBA{R: 230, G: 200, B: 80, A: 255}

// DetectionSettings параметры поиска площадок по цвету.
type DetectionSettings struct {
	PadColor  color.RGBA // целевой цвет
	Tolerance int        // максимальное отклонение по каналу
	MinArea   int        // блобы меньше этого отбрасываются
}

// DefaultDetectionSettings возвращает параметры синтетического рендера.
func DefaultDetectionSettings() DetectionSettings {
	return DetectionSettings{
		PadColor:  DefaultPadColor,
		Tolerance: DefaultColorTolerance,
		MinArea:   DefaultMinArea,
	}
}

// MatchSettings параметры сопоставления детекций с разметкой.
type MatchSettings struct {
	ToleranceFactor float64 // дистанция ≤ ToleranceFactor × радиус
	DefaultRadius   float64 // радиус ground truth без поля radius
}

// DefaultMatchSettings возвращает стандартные параметры матчинга.
func DefaultMatchSettings() MatchSettings {
	return MatchSettings{
		ToleranceFactor: DefaultToleranceFactor,
		DefaultRadius:   DefaultPadRadius,
	}
}
