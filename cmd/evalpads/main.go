// Command evalpads сравнивает найденные площадки с разметкой графа.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"pcb-partgraph/config"
	"pcb-partgraph/internal/container"
	"pcb-partgraph/internal/logger"
)

func main() {
	fs := config.NewFlagSet("evalpads")
	fs.String("image", "", "board image (PNG, JPEG, TIFF, BMP); defaults to image.path from the graph")
	fs.String("graph", "", "annotation graph JSON")
	fs.String("overlay", "", "write evaluation overlay PNG here")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Graph == "" && cfg.Image == "" {
		fmt.Println("Usage: evalpads --graph <graph.json> [--image <pcb.png>] [--overlay <out.png>]")
		fmt.Println("       evalpads --image <pcb.png>    (detection only)")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log = log.With().Str("run_id", uuid.New().String()).Logger()

	c := container.New(cfg, log)
	ctx := context.Background()

	if cfg.Graph == "" {
		dets, err := c.EvaluationService.DetectFile(ctx, cfg.Image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Detections: %d\n", len(dets))
		for i, d := range dets {
			fmt.Printf("  %d: x=%.1f y=%.1f r=%.1f\n", i, d.X, d.Y, d.R)
		}
		return
	}

	report, err := c.EvaluationService.Evaluate(ctx, cfg.Image, cfg.Graph)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	m := report.Metrics
	fmt.Printf("GT pads: %d\n", m.GTCount)
	fmt.Printf("Detections: %d\n", m.DetectionCount)
	fmt.Printf("TP: %d  FP: %d  FN: %d\n", m.TP, m.FP, m.FN)
	fmt.Printf("Precision: %.3f  Recall: %.3f  F1: %.3f\n", m.Precision, m.Recall, m.F1)

	if cfg.Overlay == "" {
		return
	}

	if err := c.EvaluationService.WriteOverlay(ctx, report.ImagePath, cfg.Overlay, report); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write overlay: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote overlay: %s\n", cfg.Overlay)
}
