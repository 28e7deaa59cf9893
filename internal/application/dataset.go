package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// DatasetService генерирует синтетические образцы и оценивает детектор на всём наборе.
type DatasetService struct {
	renderer  port.SceneRenderer
	samples   port.SampleStore
	images    port.ImageStore
	graphs    port.GraphRepository
	evaluator *EvaluationService
	logger    zerolog.Logger
}

// NewDatasetService создаёт сервис датасета.
func NewDatasetService(
	renderer port.SceneRenderer,
	samples port.SampleStore,
	images port.ImageStore,
	graphs port.GraphRepository,
	evaluator *EvaluationService,
	logger zerolog.Logger,
) *DatasetService {
	return &DatasetService{
		renderer:  renderer,
		samples:   samples,
		images:    images,
		graphs:    graphs,
		evaluator: evaluator,
		logger:    logger.With().Str("component", "dataset").Logger(),
	}
}

// Generate рисует n образцов в dir. Одинаковый seed даёт одинаковый датасет.
func (s *DatasetService) Generate(ctx context.Context, dir string, n int, seed uint64) ([]entity.Sample, error) {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]entity.Sample, 0, n)

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		sample, err := s.samples.Sample(dir, i)
		if err != nil {
			return out, err
		}

		img, g, err := s.renderer.Render(rng, sample.ImagePath)
		if err != nil {
			return out, fmt.Errorf("render %s: %w", sample.Name, err)
		}
		if err := s.images.Save(ctx, sample.ImagePath, img); err != nil {
			return out, err
		}
		if err := s.graphs.Save(ctx, sample.GraphPath, g); err != nil {
			return out, err
		}

		out = append(out, sample)
	}

	s.logger.Info().Int("samples", n).Str("dir", dir).Msg("dataset generated")
	return out, nil
}

// EvaluateAll оценивает каждый образец каталога и суммирует TP/FP/FN.
// Образцы обрабатываются параллельно, не более workers одновременно.
func (s *DatasetService) EvaluateAll(ctx context.Context, dir string, workers int) (*entity.BatchReport, error) {
	samples, err := s.samples.List(dir)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := s.logger.With().Str("run_id", runID).Logger()
	logger.Info().Int("samples", len(samples)).Int("workers", workers).Msg("batch evaluation started")

	reports := make([]entity.SampleReport, len(samples))
	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, sample := range samples {
		eg.Go(func() error {
			report, err := s.evaluator.Evaluate(egCtx, sample.ImagePath, sample.GraphPath)
			if err != nil {
				return fmt.Errorf("sample %s: %w", sample.Name, err)
			}
			reports[i] = entity.SampleReport{Sample: sample, Metrics: report.Metrics}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var tp, fp, fn, gtCount, detCount int
	for _, r := range reports {
		tp += r.Metrics.TP
		fp += r.Metrics.FP
		fn += r.Metrics.FN
		gtCount += r.Metrics.GTCount
		detCount += r.Metrics.DetectionCount
	}
	total := Score(tp, fp, fn)
	total.GTCount = gtCount
	total.DetectionCount = detCount

	logger.Info().
		Int("tp", tp).
		Int("fp", fp).
		Int("fn", fn).
		Float64("f1", total.F1).
		Msg("batch evaluation finished")

	return &entity.BatchReport{RunID: runID, Samples: reports, Total: total}, nil
}
