package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/storage"
	"pcb-partgraph/internal/infrastructure/vision"
)

var (
	testBoardColor = color.NRGBA{R: 24, G: 80, B: 45, A: 255}
	testPadColor   = color.NRGBA{R: 230, G: 200, B: 80, A: 255}
)

// drawBoard рисует плату 200x120 с дисками радиуса 8 в точках pads.
func drawBoard(pads ...[2]int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, testBoardColor)
		}
	}
	for _, p := range pads {
		for y := p[1] - 8; y <= p[1]+8; y++ {
			for x := p[0] - 8; x <= p[0]+8; x++ {
				dx, dy := x-p[0], y-p[1]
				if dx*dx+dy*dy <= 64 {
					img.SetNRGBA(x, y, testPadColor)
				}
			}
		}
	}
	return img
}

func encodeBoard(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

const boardGraphJSON = `{
  "image": {"path": "board.png", "width": 200, "height": 120},
  "nodes": [
    {"id": "U1", "type": "component", "label": "U1", "x": 100, "y": 60, "bbox": [70, 40, 130, 80]},
    {"id": "U1_1", "type": "pad", "label": "U1.1", "x": 40, "y": 60, "radius": 8},
    {"id": "U1_2", "type": "pad", "label": "U1.2", "x": 160, "y": 60, "radius": 8}
  ],
  "edges": [
    {"source": "U1", "target": "U1_1", "type": "belongs_to"},
    {"source": "U1", "target": "U1_2", "type": "belongs_to"}
  ]
}`

func newTestEvaluator() *EvaluationService {
	return NewEvaluationService(
		storage.NewImageFileStore(),
		storage.NewGraphFileRepository(),
		vision.NewPadDetector(entity.DefaultDetectionSettings(), nil, zerolog.Nop()),
		vision.NewOverlayRenderer(),
		entity.DefaultMatchSettings(),
		zerolog.Nop(),
	)
}
