package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/storage"
)

func writeBoardFiles(t *testing.T, pads ...[2]int) (imagePath, graphPath string) {
	t.Helper()
	dir := t.TempDir()
	imagePath = filepath.Join(dir, "board.png")
	graphPath = filepath.Join(dir, "graph.json")

	require.NoError(t, storage.NewImageFileStore().Save(context.Background(), imagePath, drawBoard(pads...)))
	require.NoError(t, os.WriteFile(graphPath, []byte(boardGraphJSON), 0o644))
	return imagePath, graphPath
}

func TestEvaluationService_Evaluate(t *testing.T) {
	imagePath, graphPath := writeBoardFiles(t, [2]int{40, 60}, [2]int{160, 60}, [2]int{100, 20})

	report, err := newTestEvaluator().Evaluate(context.Background(), imagePath, graphPath)
	require.NoError(t, err)

	require.Equal(t, 2, report.Metrics.GTCount)
	require.Equal(t, 3, report.Metrics.DetectionCount)
	require.Equal(t, 2, report.Metrics.TP)
	require.Equal(t, 1, report.Metrics.FP)
	require.Equal(t, 0, report.Metrics.FN)
	require.InDelta(t, 2.0/3.0, report.Metrics.Precision, 1e-9)
	require.Equal(t, 1.0, report.Metrics.Recall)
	require.Equal(t, []int{0}, report.Match.FalsePositives)
	require.Len(t, report.GroundTruths, 2)
	require.Equal(t, imagePath, report.ImagePath)
}

func TestEvaluationService_Evaluate_ImagePathFromGraph(t *testing.T) {
	imagePath, graphPath := writeBoardFiles(t, [2]int{40, 60})

	t.Chdir(filepath.Dir(imagePath))

	report, err := newTestEvaluator().Evaluate(context.Background(), "", graphPath)
	require.NoError(t, err)
	require.Equal(t, 1, report.Metrics.TP)
	require.Equal(t, 1, report.Metrics.FN)
	require.Equal(t, "board.png", report.ImagePath)
}

func TestEvaluationService_Evaluate_Errors(t *testing.T) {
	imagePath, graphPath := writeBoardFiles(t)
	dir := filepath.Dir(graphPath)
	svc := newTestEvaluator()
	ctx := context.Background()

	_, err := svc.Evaluate(ctx, imagePath, filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, entity.ErrIO)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"image": {"width": 1, "height": 1}, "nodes": [{"id": "P", "type": "pad"}], "edges": []}`), 0o644))
	_, err = svc.Evaluate(ctx, imagePath, bad)
	require.ErrorIs(t, err, entity.ErrParse)

	_, err = svc.Evaluate(ctx, filepath.Join(dir, "missing.png"), graphPath)
	require.ErrorIs(t, err, entity.ErrIO)
}

func TestEvaluationService_DetectFile(t *testing.T) {
	imagePath, _ := writeBoardFiles(t, [2]int{40, 60}, [2]int{160, 60})

	dets, err := newTestEvaluator().DetectFile(context.Background(), imagePath)
	require.NoError(t, err)
	require.Len(t, dets, 2)
	require.InDelta(t, 40, dets[0].X, 1e-9)
	require.InDelta(t, 60, dets[0].Y, 1e-9)
}

func TestEvaluationService_WriteOverlay(t *testing.T) {
	imagePath, graphPath := writeBoardFiles(t, [2]int{40, 60})
	svc := newTestEvaluator()
	ctx := context.Background()

	report, err := svc.Evaluate(ctx, imagePath, graphPath)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "overlay", "eval.png")
	require.NoError(t, svc.WriteOverlay(ctx, imagePath, out, report))

	img, err := storage.NewImageFileStore().Load(ctx, out)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
}
