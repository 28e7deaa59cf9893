package vision

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// Цвета оверлея.
var (
	ColorGroundTruth   = color.RGBA{R: 80, G: 160, B: 255, A: 255} // кольца разметки
	ColorMatched       = color.RGBA{R: 60, G: 220, B: 120, A: 255} // найденные и сопоставленные
	ColorFalsePositive = color.RGBA{R: 240, G: 80, B: 80, A: 255}  // лишние детекции
	ColorMissed        = color.RGBA{R: 190, G: 90, B: 220, A: 255} // пропущенные площадки
)

// minOverlayRadius кольцо детекции не рисуется меньше этого радиуса.
const minOverlayRadius = 4

// OverlayRenderer рисует результат оценки кольцами поверх изображения.
type OverlayRenderer struct{}

// NewOverlayRenderer создаёт рендерер оверлея.
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render рисует: синие кольца вокруг разметки, зелёные: сопоставленные
// детекции, красные: ложные срабатывания, фиолетовое кольцо с крестом: пропуски.
// Результат всегда начинается в (0, 0), координаты отчёта берутся относительно img.Bounds().Min.
func (OverlayRenderer) Render(img image.Image, report *entity.EvaluationReport) *image.RGBA {
	dst, dc := newCanvas(img)
	if report == nil {
		return dst
	}

	for _, gt := range report.GroundTruths {
		r := math.Trunc(gt.Radius)
		strokeRing(dc, gt.X, gt.Y, r+2, 2, ColorGroundTruth)
	}

	for _, m := range report.Match.Matches {
		det := report.Detections[m.Detection]
		strokeRing(dc, math.Trunc(det.X), math.Trunc(det.Y), detectionRadius(det), 2, ColorMatched)
	}

	for _, j := range report.Match.FalsePositives {
		det := report.Detections[j]
		strokeRing(dc, math.Trunc(det.X), math.Trunc(det.Y), detectionRadius(det), 2, ColorFalsePositive)
	}

	for _, i := range report.Match.FalseNegatives {
		gt := report.GroundTruths[i]
		r := math.Trunc(gt.Radius)
		strokeRing(dc, gt.X, gt.Y, r+3, 3, ColorMissed)
		x, y := math.Trunc(gt.X), math.Trunc(gt.Y)
		strokeLine(dc, x-6, y, x+6, y, 2, ColorMissed)
		strokeLine(dc, x, y-6, x, y+6, 2, ColorMissed)
	}

	return dst
}

// RenderDetections рисует зелёные кольца вокруг всех детекций.
func (OverlayRenderer) RenderDetections(img image.Image, detections []entity.Detection) *image.RGBA {
	dst, dc := newCanvas(img)
	for _, det := range detections {
		strokeRing(dc, math.Trunc(det.X), math.Trunc(det.Y), detectionRadius(det), 2, ColorMatched)
	}
	return dst
}

// newCanvas копирует img в RGBA с началом в (0, 0) и сдвигает контекст рисования
// так, чтобы абсолютные координаты img попадали в нужные пиксели.
func newCanvas(img image.Image) (*image.RGBA, *gg.Context) {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	dc := gg.NewContextForRGBA(dst)
	// +0.5: целые координаты указывают на центр пикселя
	dc.Translate(0.5-float64(b.Min.X), 0.5-float64(b.Min.Y))
	return dst, dc
}

func detectionRadius(d entity.Detection) float64 {
	return math.Trunc(math.Max(minOverlayRadius, d.R))
}

// strokeRing рисует кольцо с внешним радиусом r и толщиной width внутрь.
func strokeRing(dc *gg.Context, cx, cy, r, width float64, c color.RGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawCircle(cx, cy, r-width/2)
	dc.Stroke()
}

func strokeLine(dc *gg.Context, x1, y1, x2, y2, width float64, c color.RGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

var _ port.OverlayRenderer = (*OverlayRenderer)(nil)
