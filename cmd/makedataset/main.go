// Command makedataset рисует синтетические платы с разметкой и оценивает на них детектор.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"pcb-partgraph/config"
	"pcb-partgraph/internal/container"
	"pcb-partgraph/internal/infrastructure/storage"
	"pcb-partgraph/internal/logger"
)

func main() {
	fs := config.NewFlagSet("makedataset")
	fs.String("dataset_dir", "data/ds_v1", "output directory")
	fs.Int("samples", 5, "number of samples")
	fs.Uint64("seed", 0, "random seed")
	fs.Int("workers", 4, "parallel evaluations")
	fs.String("out", "", "write batch report JSON here")
	noEval := fs.Bool("no-eval", false, "only generate, skip evaluation")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	c := container.New(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	samples, err := c.DatasetService.Generate(ctx, cfg.DatasetDir, cfg.Samples, cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d samples under %s\n", len(samples), cfg.DatasetDir)

	if *noEval {
		return
	}

	batch, err := c.DatasetService.EvaluateAll(ctx, cfg.DatasetDir, cfg.Workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	for _, s := range batch.Samples {
		m := s.Metrics
		fmt.Printf("%s  TP: %d  FP: %d  FN: %d  F1: %.3f\n", s.Sample.Name, m.TP, m.FP, m.FN, m.F1)
	}
	m := batch.Total
	fmt.Printf("Run %s\n", batch.RunID)
	fmt.Printf("GT pads: %d\n", m.GTCount)
	fmt.Printf("Detections: %d\n", m.DetectionCount)
	fmt.Printf("TP: %d  FP: %d  FN: %d\n", m.TP, m.FP, m.FN)
	fmt.Printf("Precision: %.3f  Recall: %.3f  F1: %.3f\n", m.Precision, m.Recall, m.F1)

	if cfg.Out == "" {
		return
	}
	if err := storage.WriteBatchReport(cfg.Out, batch); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote report: %s\n", cfg.Out)
}
