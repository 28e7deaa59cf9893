package app

import (
	"context"

	"github.com/rs/zerolog"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// FeaturizationService строит тензоры по графам из хранилища.
type FeaturizationService struct {
	graphs port.GraphRepository
	logger zerolog.Logger
}

// NewFeaturizationService создаёт сервис featurization.
func NewFeaturizationService(graphs port.GraphRepository, logger zerolog.Logger) *FeaturizationService {
	return &FeaturizationService{
		graphs: graphs,
		logger: logger.With().Str("component", "featurization").Logger(),
	}
}

// FeaturizeFile загружает граф и строит для него тензоры.
func (s *FeaturizationService) FeaturizeFile(ctx context.Context, path string) (*entity.FeatureSet, error) {
	g, err := s.graphs.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	fs, err := Featurize(g)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("graph", path).
		Int("nodes", fs.NodeCount()).
		Int("directed_edges", fs.DirectedEdgeCount()).
		Msg("graph featurized")

	return fs, nil
}
