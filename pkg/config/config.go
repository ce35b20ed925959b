// Package config собирает настройки приложения: значения по умолчанию, затем
// необязательный YAML-файл, затем переменные окружения DBSCAN_* (у них приоритет выше).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	ModeWeb  = "web"
	ModeText = "text"

	DatasetRandom = "random"
	DatasetGrid   = "grid"
	DatasetCSV    = "csv"
)

type Config struct {
	Mode       string     `yaml:"mode" validate:"oneof=web text"`
	Server     Server     `yaml:"server"`
	Dataset    Dataset    `yaml:"dataset"`
	Clustering Clustering `yaml:"clustering"`
}

type Server struct {
	Addr string `yaml:"addr" validate:"required"`
}

// Dataset - откуда берутся точки.
type Dataset struct {
	Kind     string  `yaml:"kind" validate:"oneof=random grid csv"`
	Points   int     `yaml:"points" validate:"min=0"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max" validate:"gtefield=Min"`
	Decimals int     `yaml:"decimals" validate:"min=0,max=15"`
	Width    float64 `yaml:"width" validate:"gt=0"`
	Height   float64 `yaml:"height" validate:"gt=0"`
	// 0 - затравка от текущего времени
	Seed int64  `yaml:"seed"`
	File string `yaml:"file" validate:"required_if=Kind csv"`
}

type Clustering struct {
	Epsilon   float64 `yaml:"epsilon"`
	MinPoints int     `yaml:"min_points" validate:"min=0"`
}

// Default - настройки демо: 1000 случайных точек в [-100, 100] с двумя знаками,
// epsilon 5 и minPts 5.
func Default() *Config {
	return &Config{
		Mode: ModeWeb,
		Server: Server{
			Addr: ":8080",
		},
		Dataset: Dataset{
			Kind:     DatasetRandom,
			Points:   1000,
			Min:      -100,
			Max:      100,
			Decimals: 2,
			Width:    200,
			Height:   200,
		},
		Clustering: Clustering{
			Epsilon:   5,
			MinPoints: 5,
		},
	}
}

// Load собирает конфиг. Отсутствующий файл не ошибка, пустой path - файл не читаем.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.loadEnvironmentVariables(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadEnvironmentVariables() error {
	if v := os.Getenv("DBSCAN_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("DBSCAN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("DBSCAN_DATASET"); v != "" {
		c.Dataset.Kind = v
	}
	if v := os.Getenv("DBSCAN_FILE"); v != "" {
		c.Dataset.File = v
	}

	if v := os.Getenv("DBSCAN_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DBSCAN_POINTS: %w", err)
		}
		c.Dataset.Points = n
	}
	if v := os.Getenv("DBSCAN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DBSCAN_SEED: %w", err)
		}
		c.Dataset.Seed = seed
	}
	if v := os.Getenv("DBSCAN_EPSILON"); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("DBSCAN_EPSILON: %w", err)
		}
		c.Clustering.Epsilon = eps
	}
	if v := os.Getenv("DBSCAN_MIN_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DBSCAN_MIN_POINTS: %w", err)
		}
		c.Clustering.MinPoints = n
	}

	return nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}
