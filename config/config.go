package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/vision"
)

const (
	// FileName необязательный файл конфигурации в рабочем каталоге.
	FileName = "partgraph.toml"
	// EnvPrefix префикс переменных окружения, например PARTGRAPH_MIN_AREA=60.
	EnvPrefix = "PARTGRAPH_"
)

// Config настройки всех бинарников проекта.
type Config struct {
	TelegramToken string `koanf:"telegram_token"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	MaskBackend     string  `koanf:"mask_backend"`
	PadR            int     `koanf:"pad_r"`
	PadG            int     `koanf:"pad_g"`
	PadB            int     `koanf:"pad_b"`
	ColorTolerance  int     `koanf:"color_tolerance"`
	MinArea         int     `koanf:"min_area"`
	ToleranceFactor float64 `koanf:"tolerance_factor"`
	DefaultRadius   float64 `koanf:"default_radius"`

	Image   string `koanf:"image"`
	Graph   string `koanf:"graph"`
	Overlay string `koanf:"overlay"`
	Out     string `koanf:"out"`

	DatasetDir string `koanf:"dataset_dir"`
	Samples    int    `koanf:"samples"`
	Seed       uint64 `koanf:"seed"`
	Workers    int    `koanf:"workers"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"telegram_token":   "",
		"log_level":        "info",
		"log_format":       "console",
		"mask_backend":     "native",
		"pad_r":            int(entity.DefaultPadColor.R),
		"pad_g":            int(entity.DefaultPadColor.G),
		"pad_b":            int(entity.DefaultPadColor.B),
		"color_tolerance":  entity.DefaultColorTolerance,
		"min_area":         entity.DefaultMinArea,
		"tolerance_factor": entity.DefaultToleranceFactor,
		"default_radius":   entity.DefaultPadRadius,
		"image":            "",
		"graph":            "",
		"overlay":          "",
		"out":              "",
		"dataset_dir":      "data/ds_v1",
		"samples":          5,
		"seed":             0,
		"workers":          4,
	}
}

// Load собирает конфигурацию. Приоритет: флаги > окружение (.env) > partgraph.toml > значения по умолчанию.
func Load(f *pflag.FlagSet) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(makeMapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if _, err := os.Stat(FileName); err == nil {
		if err := k.Load(file.Provider(FileName), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", FileName, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", FileName, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// старое имя переменной из .env бота
	if cfg.TelegramToken == "" {
		cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for name, v := range map[string]int{"pad_r": c.PadR, "pad_g": c.PadG, "pad_b": c.PadB} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%s must be within 0..255, got %d", name, v)
		}
	}
	if c.ColorTolerance < 0 {
		return fmt.Errorf("color_tolerance must be non-negative, got %d", c.ColorTolerance)
	}
	if c.ToleranceFactor <= 0 {
		return fmt.Errorf("tolerance_factor must be positive, got %v", c.ToleranceFactor)
	}
	switch c.MaskBackend {
	case "native":
	case "gocv":
		if !vision.GoCVEnabled {
			return fmt.Errorf("mask_backend %q requires a build with -tags gocv", c.MaskBackend)
		}
	default:
		return fmt.Errorf("unknown mask_backend %q", c.MaskBackend)
	}
	return nil
}

// DetectionSettings параметры детектора площадок.
func (c *Config) DetectionSettings() entity.DetectionSettings {
	return entity.DetectionSettings{
		PadColor:  color.RGBA{R: uint8(c.PadR), G: uint8(c.PadG), B: uint8(c.PadB), A: 255},
		Tolerance: c.ColorTolerance,
		MinArea:   c.MinArea,
	}
}

// MatchSettings параметры сопоставления с разметкой.
func (c *Config) MatchSettings() entity.MatchSettings {
	return entity.MatchSettings{
		ToleranceFactor: c.ToleranceFactor,
		DefaultRadius:   c.DefaultRadius,
	}
}

type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
