package render

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// Параметры сцены.
const (
	BoardWidth  = 1024
	BoardHeight = 768

	PadRadius  = 8
	TraceWidth = 6

	padOffset = 10
)

var (
	BoardColor     = color.RGBA{24, 80, 45, 255}
	ComponentColor = color.RGBA{30, 30, 30, 255}
	PadColor       = color.RGBA{230, 200, 80, 255}
	TraceColor     = color.RGBA{200, 200, 60, 255}
	SilkColor      = color.RGBA{230, 230, 230, 255}
)

// SceneRenderer рисует плату с двумя компонентами U1 и R1, тремя площадками
// и одной Г-образной дорожкой U1_1 → R1_1.
type SceneRenderer struct{}

// NewSceneRenderer создаёт рендерер сцены.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

type component struct {
	label          string
	cx, cy         int
	x0, y0, x1, y1 int
}

func newComponent(label string, cx, cy, w, h int) component {
	return component{
		label: label,
		cx:    cx,
		cy:    cy,
		x0:    cx - w/2,
		y0:    cy - h/2,
		x1:    cx + w/2,
		y1:    cy + h/2,
	}
}

func (c component) node() entity.Node {
	return entity.Node{
		ID:    c.label,
		Type:  entity.NodeComponent,
		Label: c.label,
		X:     float64(c.cx),
		Y:     float64(c.cy),
		BBox:  &entity.BBox{float64(c.x0), float64(c.y0), float64(c.x1), float64(c.y1)},
	}
}

type pad struct {
	parent string
	index  int
	x, y   int
}

func (p pad) id() string { return fmt.Sprintf("%s_%d", p.parent, p.index) }

func (p pad) node() entity.Node {
	r := float64(PadRadius)
	return entity.Node{
		ID:     p.id(),
		Type:   entity.NodePad,
		Label:  fmt.Sprintf("%s.%d", p.parent, p.index),
		X:      float64(p.x),
		Y:      float64(p.y),
		Radius: &r,
	}
}

// Render рисует одну сцену. Положение компонентов случайно смещается через rng.
func (r *SceneRenderer) Render(rng *rand.Rand, imagePath string) (image.Image, *entity.Graph, error) {
	u1 := newComponent("U1", 480+jitter(rng, 40), 260+jitter(rng, 25), 240, 120)
	r1 := newComponent("R1", 340+jitter(rng, 30), 520+jitter(rng, 30), 140, 60)

	pads := []pad{
		{parent: "U1", index: 1, x: u1.x0 - padOffset, y: u1.cy},
		{parent: "U1", index: 2, x: u1.x1 + padOffset, y: u1.cy},
		{parent: "R1", index: 1, x: r1.x1 + padOffset, y: r1.cy},
	}
	src, dst := pads[0], pads[2]
	polyline := []entity.Point{
		{float64(src.x), float64(src.y)},
		{float64(src.x), float64(dst.y)},
		{float64(dst.x), float64(dst.y)},
	}

	img := image.NewRGBA(image.Rect(0, 0, BoardWidth, BoardHeight))
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(BoardColor)
	dc.Clear()

	for _, c := range []component{u1, r1} {
		fillRect(dc, c.x0, c.y0, c.x1, c.y1, ComponentColor)
	}
	// дорожка под площадками, чтобы площадки оставались целыми кругами
	strokePolyline(dc, polyline, TraceWidth, TraceColor)
	for _, p := range pads {
		fillDisk(img, p.x, p.y, PadRadius, PadColor)
	}
	for _, c := range []component{u1, r1} {
		drawLabel(dc, c.label, c.cx+10, c.cy-10, SilkColor)
	}

	nodes := []entity.Node{u1.node(), r1.node()}
	edges := make([]entity.Edge, 0, len(pads)+1)
	for _, p := range pads {
		nodes = append(nodes, p.node())
		edges = append(edges, entity.Edge{Source: p.parent, Target: p.id(), Type: entity.EdgeBelongsTo})
	}
	edges = append(edges, entity.Edge{
		Source:   src.id(),
		Target:   dst.id(),
		Type:     entity.EdgeTrace,
		Polyline: polyline,
	})

	meta := entity.ImageMeta{Path: filepath.ToSlash(imagePath), Width: BoardWidth, Height: BoardHeight}
	g, err := entity.NewGraph(meta, nodes, edges)
	if err != nil {
		return nil, nil, err
	}
	return img, g, nil
}

// jitter возвращает целое из [-span, span].
func jitter(rng *rand.Rand, span int) int {
	return rng.IntN(2*span+1) - span
}

// fillRect заливает прямоугольник включительно по обеим границам.
func fillRect(dc *gg.Context, x0, y0, x1, y1 int, c color.RGBA) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0+1), float64(y1-y0+1))
	dc.Fill()
}

// fillDisk рисует площадку без сглаживания: маска детектора ищет точный цвет,
// а полутона на краю сглаженного круга в неё не попадают.
func fillDisk(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// strokePolyline рисует ломаную толщиной width. Осевая линия идёт по границам
// пикселей, поэтому горизонтальные и вертикальные участки чётной толщины без полутонов.
func strokePolyline(dc *gg.Context, pts []entity.Point, width int, c color.RGBA) {
	if len(pts) == 0 {
		return
	}
	dc.SetColor(c)
	dc.SetLineWidth(float64(width))
	dc.SetLineCapButt()
	dc.SetLineJoinRound()
	dc.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		dc.LineTo(p[0], p[1])
	}
	dc.Stroke()
}

// drawLabel пишет шелкографию; (x, y): левый верхний угол текста.
func drawLabel(dc *gg.Context, text string, x, y int, c color.RGBA) {
	face := basicfont.Face7x13
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(text, float64(x), float64(y+face.Ascent))
}

var _ port.SceneRenderer = (*SceneRenderer)(nil)
