package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/storage"
)

func TestFeaturizationService_FeaturizeFile(t *testing.T) {
	_, graphPath := writeBoardFiles(t)
	svc := NewFeaturizationService(storage.NewGraphFileRepository(), zerolog.Nop())

	fs, err := svc.FeaturizeFile(context.Background(), graphPath)
	require.NoError(t, err)
	require.Equal(t, 3, fs.NodeCount())
	require.Equal(t, 4, fs.DirectedEdgeCount())

	r, c := fs.NodeFeatures.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, entity.NodeFeatureWidth, c)
	// U1: bbox 60x40 на изображении 200x120, связан с обеими площадками
	require.InDeltaSlice(t, []float64{1, 0, 0.5, 0.5, 0.3, 1.0 / 3.0, 1}, fs.NodeFeatures.RawRowView(0), 1e-12)
}

func TestFeaturizationService_FeaturizeFile_Missing(t *testing.T) {
	svc := NewFeaturizationService(storage.NewGraphFileRepository(), zerolog.Nop())

	_, err := svc.FeaturizeFile(context.Background(), filepath.Join(t.TempDir(), "graph.json"))
	require.ErrorIs(t, err, entity.ErrIO)
}
