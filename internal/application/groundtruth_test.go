package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
)

func TestGroundTruthPads_FiltersAndKeepsOrder(t *testing.T) {
	r := 6.0
	g, err := entity.NewGraph(entity.ImageMeta{Width: 100, Height: 100}, []entity.Node{
		{ID: "P2", Type: entity.NodePad, X: 5, Y: 6, Radius: &r},
		{ID: "U1", Type: entity.NodeComponent, X: 50, Y: 50, BBox: &entity.BBox{40, 40, 60, 60}},
		{ID: "P1", Type: entity.NodePad, X: 7, Y: 8},
	}, nil)
	require.NoError(t, err)

	pads := GroundTruthPads(g, entity.DefaultPadRadius)
	require.Equal(t, []entity.GroundTruthPad{
		{ID: "P2", X: 5, Y: 6, Radius: 6},
		{ID: "P1", X: 7, Y: 8, Radius: 8},
	}, pads)
}

func TestGroundTruthPads_Empty(t *testing.T) {
	g, err := entity.NewGraph(entity.ImageMeta{Width: 10, Height: 10}, nil, nil)
	require.NoError(t, err)
	require.Empty(t, GroundTruthPads(g, 8))
}
