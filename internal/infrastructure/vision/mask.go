package vision

import (
	"image"
	"image/color"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// NativeMasker строит маску на чистом Go, без OpenCV.
type NativeMasker struct{}

// NewNativeMasker создаёт маскер по умолчанию.
func NewNativeMasker() *NativeMasker {
	return &NativeMasker{}
}

// ExtractMask реализует port.MaskExtractor.
func (NativeMasker) ExtractMask(img image.Image, target color.RGBA, tolerance int) (*entity.Mask, error) {
	return ExtractMask(img, target, tolerance), nil
}

// ExtractMask включает пиксель, если max(|r-R|, |g-G|, |b-B|) ≤ tolerance.
// Координаты маски отсчитываются от img.Bounds().Min. Альфа-канал игнорируется.
func ExtractMask(img image.Image, target color.RGBA, tolerance int) *entity.Mask {
	b := img.Bounds()
	mask := entity.NewMask(b.Dx(), b.Dy())
	tr, tg, tb := int(target.R), int(target.G), int(target.B)

	match := func(r, g, bl uint8) bool {
		return absInt(int(r)-tr) <= tolerance &&
			absInt(int(g)-tg) <= tolerance &&
			absInt(int(bl)-tb) <= tolerance
	}

	// Быстрый путь для NRGBA: каналы уже без премультипликации.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < mask.Height; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+mask.Width*4]
			for x := 0; x < mask.Width; x++ {
				p := row[x*4 : x*4+3]
				if match(p[0], p[1], p[2]) {
					mask.Set(x, y, true)
				}
			}
		}
		return mask
	}

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if match(c.R, c.G, c.B) {
				mask.Set(x, y, true)
			}
		}
	}
	return mask
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

var _ port.MaskExtractor = (*NativeMasker)(nil)
