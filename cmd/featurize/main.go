// Command featurize строит тензоры графовой модели по graph.json.
package main

import (
	"context"
	"fmt"
	"os"

	"pcb-partgraph/config"
	"pcb-partgraph/internal/container"
	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/storage"
	"pcb-partgraph/internal/logger"
)

func main() {
	fs := config.NewFlagSet("featurize")
	fs.String("graph", "", "annotation graph JSON")
	fs.String("out", "", "write tensors JSON here")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Graph == "" {
		fmt.Println("Usage: featurize --graph <graph.json> [--out <features.json>]")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	c := container.New(cfg, log)

	features, err := c.FeaturizationService.FeaturizeFile(context.Background(), cfg.Graph)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Featurization failed: %v\n", err)
		os.Exit(1)
	}

	edges := features.DirectedEdgeCount()
	fmt.Printf("nodes: %d\n", features.NodeCount())
	fmt.Printf("x.shape: (%d, %d)\n", features.NodeCount(), entity.NodeFeatureWidth)
	fmt.Printf("edge_index.shape: (2, %d)\n", edges)
	fmt.Printf("edge_attr.shape: (%d, %d)\n", edges, entity.EdgeTypeCount)

	if cfg.Out == "" {
		return
	}
	if err := storage.WriteFeatures(cfg.Out, features); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write features: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote features: %s\n", cfg.Out)
}
