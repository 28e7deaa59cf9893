package vision

import "pcb-partgraph/internal/domain/entity"

// FindBlobs выделяет 8-связные компоненты маски и отбрасывает те, что меньше minArea.
//
// Затравки перебираются построчно сверху вниз, слева направо, поэтому порядок
// блобов воспроизводим. Обход идёт по явному стеку с плоской сеткой посещений,
// каждый пиксель попадает ровно в один блоб и посещается один раз.
func FindBlobs(mask *entity.Mask, minArea int) []entity.Blob {
	w, h := mask.Width, mask.Height
	seen := make([]bool, w*h)

	var blobs []entity.Blob
	var stack []entity.Pixel

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if seen[idx] || !mask.At(x, y) {
				continue
			}

			seen[idx] = true
			stack = append(stack[:0], entity.Pixel{X: x, Y: y})
			var blob entity.Blob

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				blob = append(blob, p)

				for ny := p.Y - 1; ny <= p.Y+1; ny++ {
					for nx := p.X - 1; nx <= p.X+1; nx++ {
						if nx == p.X && ny == p.Y {
							continue
						}
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						n := ny*w + nx
						if seen[n] || !mask.At(nx, ny) {
							continue
						}
						seen[n] = true
						stack = append(stack, entity.Pixel{X: nx, Y: ny})
					}
				}
			}

			if blob.Area() >= minArea {
				blobs = append(blobs, blob)
			}
		}
	}

	return blobs
}
