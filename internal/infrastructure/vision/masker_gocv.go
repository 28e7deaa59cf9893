//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// GoCVEnabled: сборка с OpenCV.
const GoCVEnabled = true

// GoCVMasker строит маску через OpenCV InRange.
// Условие |v-t| ≤ tol по каждому каналу эквивалентно t-tol ≤ v ≤ t+tol.
type GoCVMasker struct{}

// NewGoCVMasker создаёт маскер на OpenCV.
func NewGoCVMasker() *GoCVMasker {
	return &GoCVMasker{}
}

// ExtractMask реализует port.MaskExtractor.
func (m *GoCVMasker) ExtractMask(img image.Image, target color.RGBA, tolerance int) (*entity.Mask, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image to mat: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return entity.NewMask(0, 0), nil
	}

	// Mat хранит каналы в порядке BGR.
	lower := gocv.NewScalar(
		float64(clampChannel(int(target.B)-tolerance)),
		float64(clampChannel(int(target.G)-tolerance)),
		float64(clampChannel(int(target.R)-tolerance)),
		0,
	)
	upper := gocv.NewScalar(
		float64(clampChannel(int(target.B)+tolerance)),
		float64(clampChannel(int(target.G)+tolerance)),
		float64(clampChannel(int(target.R)+tolerance)),
		0,
	)

	inRange := gocv.NewMat()
	defer inRange.Close()
	gocv.InRangeWithScalar(mat, lower, upper, &inRange)

	cols, rows := inRange.Cols(), inRange.Rows()
	data := inRange.ToBytes()
	mask := entity.NewMask(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if data[y*cols+x] != 0 {
				mask.Set(x, y, true)
			}
		}
	}

	return mask, nil
}

var _ port.MaskExtractor = (*GoCVMasker)(nil)
