package config

import (
	"github.com/spf13/pflag"

	"pcb-partgraph/internal/domain/entity"
)

// NewFlagSet создаёт набор флагов с общими для всех бинарников ключами.
// Имена флагов совпадают с ключами конфигурации.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)

	fs.String("log_level", "info", "log level: debug, info, warn, error")
	fs.String("log_format", "console", "log format: console or json")
	fs.String("mask_backend", "native", "mask extractor: native or gocv")

	fs.Int("pad_r", int(entity.DefaultPadColor.R), "pad color, red channel")
	fs.Int("pad_g", int(entity.DefaultPadColor.G), "pad color, green channel")
	fs.Int("pad_b", int(entity.DefaultPadColor.B), "pad color, blue channel")
	fs.Int("color_tolerance", entity.DefaultColorTolerance, "max per-channel deviation from the pad color")
	fs.Int("min_area", entity.DefaultMinArea, "blobs with fewer pixels are dropped")
	fs.Float64("tolerance_factor", entity.DefaultToleranceFactor, "match if distance <= factor * radius")
	fs.Float64("default_radius", entity.DefaultPadRadius, "ground truth radius when the graph has none")

	return fs
}
