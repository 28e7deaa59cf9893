package vision

import (
	"image"
	"image/color"
	"image/draw"
)

var testBoardColor = color.NRGBA{R: 24, G: 80, B: 45, A: 255}

func newBoard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: testBoardColor}, image.Point{}, draw.Src)
	return img
}

func fillDisk(img draw.Image, cx, cy, r int, c color.Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

func padColor() color.NRGBA {
	return color.NRGBA{R: 230, G: 200, B: 80, A: 255}
}
