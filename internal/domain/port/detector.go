package port

import (
	"context"
	"image"
	"image/color"

	"pcb-partgraph/internal/domain/entity"
)

// PadDetector интерфейс детектора площадок
type PadDetector interface {
	// DetectPads ищет площадки на изображении
	DetectPads(ctx context.Context, img image.Image) ([]entity.Detection, error)
}

// MaskExtractor строит бинарную маску пикселей целевого цвета
type MaskExtractor interface {
	// ExtractMask включает пиксель, если максимальное отклонение по каналу ≤ tolerance
	ExtractMask(img image.Image, target color.RGBA, tolerance int) (*entity.Mask, error)
}

// OverlayRenderer рисует результат оценки поверх изображения
type OverlayRenderer interface {
	// Render возвращает копию изображения с нанесёнными кольцами
	Render(img image.Image, report *entity.EvaluationReport) *image.RGBA

	// RenderDetections отмечает только детекции, без разметки
	RenderDetections(img image.Image, detections []entity.Detection) *image.RGBA
}
