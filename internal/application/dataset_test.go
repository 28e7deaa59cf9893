package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/render"
	"pcb-partgraph/internal/infrastructure/storage"
)

func newTestDataset() *DatasetService {
	return NewDatasetService(
		render.NewSceneRenderer(),
		storage.NewDatasetLayout(),
		storage.NewImageFileStore(),
		storage.NewGraphFileRepository(),
		newTestEvaluator(),
		zerolog.Nop(),
	)
}

func TestDatasetService_GenerateAndEvaluate(t *testing.T) {
	svc := newTestDataset()
	ctx := context.Background()
	dir := t.TempDir()

	samples, err := svc.Generate(ctx, dir, 3, 42)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	require.Equal(t, "sample_0001", samples[0].Name)

	batch, err := svc.EvaluateAll(ctx, dir, 2)
	require.NoError(t, err)
	require.NotEmpty(t, batch.RunID)
	require.Len(t, batch.Samples, 3)
	require.Equal(t, samples[2], batch.Samples[2].Sample)

	require.Equal(t, 9, batch.Total.GTCount)
	require.Equal(t, 9, batch.Total.TP)
	require.Equal(t, 0, batch.Total.FP)
	require.Equal(t, 0, batch.Total.FN)
	require.Equal(t, 1.0, batch.Total.F1)
}

func TestDatasetService_GenerateDeterministic(t *testing.T) {
	svc := newTestDataset()
	ctx := context.Background()
	repo := storage.NewGraphFileRepository()

	load := func(dir string) *entity.Graph {
		_, err := svc.Generate(ctx, dir, 2, 5)
		require.NoError(t, err)
		g, err := repo.Load(ctx, filepath.Join(dir, "sample_0002", "graph.json"))
		require.NoError(t, err)
		return g
	}

	g1 := load(t.TempDir())
	g2 := load(t.TempDir())

	require.Equal(t, g1.Nodes, g2.Nodes)
	require.Equal(t, g1.Edges, g2.Edges)
}

func TestDatasetService_EvaluateAll_MissingDir(t *testing.T) {
	_, err := newTestDataset().EvaluateAll(context.Background(), filepath.Join(t.TempDir(), "nope"), 1)
	require.ErrorIs(t, err, entity.ErrIO)
}

func TestDatasetService_Generate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples, err := newTestDataset().Generate(ctx, t.TempDir(), 2, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, samples)
}
