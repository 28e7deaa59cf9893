//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
)

func TestGoCVMasker_StubReturnsError(t *testing.T) {
	_, err := NewGoCVMasker().ExtractMask(newBoard(4, 4), entity.DefaultPadColor, 25)
	require.Error(t, err)
}

func TestGoCVEnabled_FalseWithoutTag(t *testing.T) {
	require.False(t, GoCVEnabled)
}
