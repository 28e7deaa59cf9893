package render

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	app "pcb-partgraph/internal/application"
	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/vision"
)

func TestSceneRenderer_Graph(t *testing.T) {
	_, g, err := NewSceneRenderer().Render(rand.New(rand.NewPCG(1, 1)), "data/sample_0001/pcb.png")
	require.NoError(t, err)

	require.Equal(t, entity.ImageMeta{Path: "data/sample_0001/pcb.png", Width: BoardWidth, Height: BoardHeight}, g.Image)

	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	require.Equal(t, []string{"U1", "R1", "U1_1", "U1_2", "R1_1"}, ids)
	require.Len(t, g.Edges, 4)

	u1, r1 := g.Nodes[0], g.Nodes[1]
	require.Equal(t, 240.0, u1.BBox.Width())
	require.Equal(t, 120.0, u1.BBox.Height())
	require.Equal(t, 140.0, r1.BBox.Width())
	require.InDelta(t, 480, u1.X, 40)
	require.InDelta(t, 260, u1.Y, 25)
	require.InDelta(t, 340, r1.X, 30)
	require.InDelta(t, 520, r1.Y, 30)

	u11 := g.Nodes[2]
	require.Equal(t, u1.BBox[0]-10, u11.X)
	require.Equal(t, u1.Y, u11.Y)
	require.Equal(t, "U1.1", u11.Label)
	require.Equal(t, 8.0, *u11.Radius)

	trace := g.Edges[3]
	require.Equal(t, entity.EdgeTrace, trace.Type)
	require.Equal(t, "U1_1", trace.Source)
	require.Equal(t, "R1_1", trace.Target)
	r11 := g.Nodes[4]
	require.Equal(t, []entity.Point{{u11.X, u11.Y}, {u11.X, r11.Y}, {r11.X, r11.Y}}, trace.Polyline)
}

func TestSceneRenderer_Deterministic(t *testing.T) {
	r := NewSceneRenderer()

	_, g1, err := r.Render(rand.New(rand.NewPCG(7, 7)), "a.png")
	require.NoError(t, err)
	_, g2, err := r.Render(rand.New(rand.NewPCG(7, 7)), "a.png")
	require.NoError(t, err)

	require.Equal(t, g1, g2)
}

func TestSceneRenderer_Colors(t *testing.T) {
	img, g, err := NewSceneRenderer().Render(rand.New(rand.NewPCG(3, 3)), "x.png")
	require.NoError(t, err)

	at := func(x, y float64) [3]uint32 {
		r, gg, b, _ := img.At(int(x), int(y)).RGBA()
		return [3]uint32{r >> 8, gg >> 8, b >> 8}
	}

	require.Equal(t, [3]uint32{24, 80, 45}, at(2, 2))
	for _, p := range g.Pads() {
		require.Equal(t, [3]uint32{230, 200, 80}, at(p.X, p.Y), p.ID)
	}
	u1 := g.Nodes[0]
	require.Equal(t, [3]uint32{30, 30, 30}, at(u1.BBox[0]+2, u1.BBox[1]+2))
}

func TestSceneRenderer_DetectorFindsAllPads(t *testing.T) {
	detector := vision.NewPadDetector(entity.DefaultDetectionSettings(), nil, zerolog.Nop())
	match := entity.DefaultMatchSettings()
	rng := rand.New(rand.NewPCG(0, 0))

	for i := 0; i < 5; i++ {
		img, g, err := NewSceneRenderer().Render(rng, "scene.png")
		require.NoError(t, err)

		dets, err := detector.DetectPads(context.Background(), img)
		require.NoError(t, err)
		require.Len(t, dets, 3)

		gts := app.GroundTruthPads(g, match.DefaultRadius)
		result := app.MatchGreedy(dets, gts, match.ToleranceFactor)
		metrics := app.ScoreMatch(result, len(dets), len(gts))
		require.Equal(t, 1.0, metrics.F1)

		for _, m := range result.Matches {
			require.InDelta(t, 8.0, dets[m.Detection].R, 0.5)
			require.Less(t, dets[m.Detection].Distance(gts[m.GroundTruth].X, gts[m.GroundTruth].Y), 0.5)
		}
	}
}

func TestSceneRenderer_OnlyPadsMatchPadColor(t *testing.T) {
	img, g, err := NewSceneRenderer().Render(rand.New(rand.NewPCG(11, 11)), "x.png")
	require.NoError(t, err)

	// сглаженные края дорожки, компонентов и подписей не попадают в маску:
	// в ней только три диска радиуса 8 по 197 пикселей
	mask := vision.ExtractMask(img, entity.DefaultPadColor, entity.DefaultColorTolerance)
	require.Equal(t, 3*197, mask.Count())

	trace := g.Edges[3].Polyline
	x, y := int(trace[1][0]), int((trace[0][1]+trace[1][1])/2)
	r, gg, b, _ := img.At(x, y).RGBA()
	require.Equal(t, [3]uint32{200, 200, 60}, [3]uint32{r >> 8, gg >> 8, b >> 8})
}
