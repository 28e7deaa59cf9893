//go:build !gocv
// +build !gocv

package vision

import (
	"errors"
	"image"
	"image/color"

	"pcb-partgraph/internal/domain/entity"
)

// GoCVEnabled: сборка без OpenCV, GoCVMasker только возвращает ошибку.
const GoCVEnabled = false

// GoCVMasker заглушка для сборки без OpenCV.
type GoCVMasker struct{}

// NewGoCVMasker создаёт маскер-заглушку (без OpenCV).
func NewGoCVMasker() *GoCVMasker {
	return &GoCVMasker{}
}

// ExtractMask возвращает ошибку, если сборка без тега gocv.
func (m *GoCVMasker) ExtractMask(img image.Image, target color.RGBA, tolerance int) (*entity.Mask, error) {
	_ = img
	_ = target
	_ = tolerance
	return nil, errors.New("gocv build tag is not enabled")
}
