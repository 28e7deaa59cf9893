package vision

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// PadDetector ищет площадки: маска по цвету → блобы → центроид и радиус.
type PadDetector struct {
	settings entity.DetectionSettings
	masker   port.MaskExtractor
	logger   zerolog.Logger
}

// NewPadDetector создаёт детектор. Если masker не задан, используется NativeMasker.
func NewPadDetector(settings entity.DetectionSettings, masker port.MaskExtractor, logger zerolog.Logger) *PadDetector {
	if masker == nil {
		masker = NewNativeMasker()
	}
	return &PadDetector{
		settings: settings,
		masker:   masker,
		logger:   logger.With().Str("component", "pad_detector").Logger(),
	}
}

// DetectPads возвращает по одной детекции на каждый сохранённый блоб.
// Координаты детекций абсолютные, как у разметки в графе.
// Изображение без подходящих пикселей даёт пустой список без ошибки.
func (d *PadDetector) DetectPads(ctx context.Context, img image.Image) ([]entity.Detection, error) {
	_ = ctx
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", entity.ErrIO)
	}

	mask, err := d.masker.ExtractMask(img, d.settings.PadColor, d.settings.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("extract mask: %w", err)
	}

	// маска считается от Bounds().Min, детекции возвращаются в координатах изображения
	origin := img.Bounds().Min
	blobs := FindBlobs(mask, d.settings.MinArea)
	detections := make([]entity.Detection, 0, len(blobs))
	for _, blob := range blobs {
		det := EstimateShape(blob)
		det.X += float64(origin.X)
		det.Y += float64(origin.Y)
		detections = append(detections, det)
	}

	d.logger.Debug().
		Int("mask_pixels", mask.Count()).
		Int("blobs", len(blobs)).
		Msg("pads detected")

	return detections, nil
}

var _ port.PadDetector = (*PadDetector)(nil)
