package app

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// EvaluationService сравнивает детекции с разметкой графа.
type EvaluationService struct {
	images   port.ImageStore
	graphs   port.GraphRepository
	detector port.PadDetector
	overlay  port.OverlayRenderer
	match    entity.MatchSettings
	logger   zerolog.Logger
}

// NewEvaluationService создаёт сервис оценки детектора.
func NewEvaluationService(
	images port.ImageStore,
	graphs port.GraphRepository,
	detector port.PadDetector,
	overlay port.OverlayRenderer,
	match entity.MatchSettings,
	logger zerolog.Logger,
) *EvaluationService {
	return &EvaluationService{
		images:   images,
		graphs:   graphs,
		detector: detector,
		overlay:  overlay,
		match:    match,
		logger:   logger.With().Str("component", "evaluation").Logger(),
	}
}

// DetectFile загружает изображение и ищет на нём площадки.
func (s *EvaluationService) DetectFile(ctx context.Context, imagePath string) ([]entity.Detection, error) {
	img, err := s.images.Load(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	return s.detector.DetectPads(ctx, img)
}

// Evaluate оценивает детектор на паре изображение + граф.
// Граф читается первым, чтобы битая разметка отсекалась до детекции.
// Пустой imagePath означает путь из метаданных графа.
func (s *EvaluationService) Evaluate(ctx context.Context, imagePath, graphPath string) (*entity.EvaluationReport, error) {
	g, err := s.graphs.Load(ctx, graphPath)
	if err != nil {
		return nil, err
	}

	if imagePath == "" {
		imagePath = g.Image.Path
	}
	img, err := s.images.Load(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	report, err := s.EvaluateImage(ctx, img, g)
	if err != nil {
		return nil, err
	}
	report.ImagePath = imagePath

	s.logger.Info().
		Str("image", imagePath).
		Str("graph", graphPath).
		Int("gt", report.Metrics.GTCount).
		Int("detections", report.Metrics.DetectionCount).
		Float64("f1", report.Metrics.F1).
		Msg("evaluation finished")

	return report, nil
}

// EvaluateImage оценивает детектор на уже загруженных данных.
func (s *EvaluationService) EvaluateImage(ctx context.Context, img image.Image, g *entity.Graph) (*entity.EvaluationReport, error) {
	detections, err := s.detector.DetectPads(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("detect pads: %w", err)
	}

	gts := GroundTruthPads(g, s.match.DefaultRadius)
	result := MatchGreedy(detections, gts, s.match.ToleranceFactor)
	metrics := ScoreMatch(result, len(detections), len(gts))

	s.logger.Debug().
		Int("tp", metrics.TP).
		Int("fp", metrics.FP).
		Int("fn", metrics.FN).
		Msg("matched")

	b := img.Bounds()
	return &entity.EvaluationReport{
		ImageWidth:   b.Dx(),
		ImageHeight:  b.Dy(),
		Detections:   detections,
		GroundTruths: gts,
		Match:        result,
		Metrics:      metrics,
	}, nil
}

// WriteOverlay рисует оверлей оценки и сохраняет его в PNG.
func (s *EvaluationService) WriteOverlay(ctx context.Context, imagePath, outPath string, report *entity.EvaluationReport) error {
	img, err := s.images.Load(ctx, imagePath)
	if err != nil {
		return err
	}
	if err := s.images.Save(ctx, outPath, s.overlay.Render(img, report)); err != nil {
		return err
	}
	s.logger.Info().Str("path", outPath).Msg("overlay saved")
	return nil
}
