package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
)

// requireColor сравнивает цвета с допуском на сглаживание краёв.
func requireColor(t *testing.T, want, got color.RGBA) {
	t.Helper()
	diff := func(a, b uint8) int { return absInt(int(a) - int(b)) }
	require.LessOrEqual(t, diff(want.R, got.R), 12, "want %v, got %v", want, got)
	require.LessOrEqual(t, diff(want.G, got.G), 12, "want %v, got %v", want, got)
	require.LessOrEqual(t, diff(want.B, got.B), 12, "want %v, got %v", want, got)
}

func TestOverlayRenderer_Render(t *testing.T) {
	img := newBoard(100, 60)
	report := &entity.EvaluationReport{
		Detections: []entity.Detection{
			{X: 20, Y: 20, R: 8},
			{X: 70, Y: 20, R: 2},
		},
		GroundTruths: []entity.GroundTruthPad{
			{ID: "a", X: 20, Y: 20, Radius: 8},
			{ID: "b", X: 50, Y: 45, Radius: 8},
		},
		Match: entity.MatchResult{
			Matches:        []entity.Match{{GroundTruth: 0, Detection: 0}},
			FalsePositives: []int{1},
			FalseNegatives: []int{1},
		},
	}

	out := NewOverlayRenderer().Render(img, report)

	require.Equal(t, img.Bounds(), out.Bounds())
	// синее кольцо r+2 вокруг разметки
	requireColor(t, ColorGroundTruth, out.RGBAAt(29, 20))
	// зелёное кольцо сопоставленной детекции
	requireColor(t, ColorMatched, out.RGBAAt(27, 20))
	// красное кольцо с минимальным радиусом 4
	requireColor(t, ColorFalsePositive, out.RGBAAt(73, 20))
	// крест пропущенной площадки
	requireColor(t, ColorMissed, out.RGBAAt(50, 45))
	requireColor(t, ColorMissed, out.RGBAAt(54, 45))
	// центр сопоставленной площадки не закрашен
	require.Equal(t, uint8(24), out.RGBAAt(20, 20).R)
	// исходное изображение не меняется
	require.Equal(t, testBoardColor, img.NRGBAAt(50, 45))
}

func TestOverlayRenderer_NilReport(t *testing.T) {
	img := newBoard(10, 10)
	out := NewOverlayRenderer().Render(img, nil)
	require.Equal(t, uint8(24), out.RGBAAt(5, 5).R)
}

func TestOverlayRenderer_RenderDetections(t *testing.T) {
	img := newBoard(40, 40)
	out := NewOverlayRenderer().RenderDetections(img, []entity.Detection{{X: 20, Y: 20, R: 6}})
	requireColor(t, ColorMatched, out.RGBAAt(25, 20))
	requireColor(t, ColorMatched, out.RGBAAt(20, 15))
	require.Equal(t, uint8(24), out.RGBAAt(20, 20).R)
	require.Equal(t, uint8(24), out.RGBAAt(20, 10).R)
}

func TestOverlayRenderer_SubImage(t *testing.T) {
	sub := newBoard(100, 80).SubImage(image.Rect(40, 30, 100, 80))
	out := NewOverlayRenderer().RenderDetections(sub, []entity.Detection{{X: 60, Y: 50, R: 6}})

	require.Equal(t, image.Rect(0, 0, 60, 50), out.Bounds())
	// (60, 50) в координатах исходной платы это (20, 20) в результате
	requireColor(t, ColorMatched, out.RGBAAt(25, 20))
	require.Equal(t, uint8(24), out.RGBAAt(20, 20).R)
}
