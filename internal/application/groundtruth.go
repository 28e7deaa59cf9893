package app

import "pcb-partgraph/internal/domain/entity"

// GroundTruthPads извлекает площадки графа в исходном порядке.
// Площадка без radius получает defaultRadius.
func GroundTruthPads(g *entity.Graph, defaultRadius float64) []entity.GroundTruthPad {
	pads := g.Pads()
	out := make([]entity.GroundTruthPad, 0, len(pads))
	for _, n := range pads {
		r := defaultRadius
		if n.Radius != nil {
			r = *n.Radius
		}
		out = append(out, entity.GroundTruthPad{ID: n.ID, X: n.X, Y: n.Y, Radius: r})
	}
	return out
}
