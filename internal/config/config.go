package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir    = ".valleyviz"
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 15
	DefaultSamples    = 5000
	DefaultMean       = 0.5
	DefaultXMax       = 50.0
	DefaultPoints     = 1000
)

type Config struct {
	DataDir   string          `yaml:"data_dir"`
	Plot      PlotConfig      `yaml:"plot"`
	Generator GeneratorConfig `yaml:"generator"`
	Staircase StaircaseConfig `yaml:"staircase"`
}

type PlotConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Markers bool `yaml:"markers"`
}

type GeneratorConfig struct {
	Samples int     `yaml:"samples"`
	Mean    float64 `yaml:"mean"`
	Workers int     `yaml:"workers"`
}

type StaircaseConfig struct {
	XMax   float64 `yaml:"x_max"`
	Points int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Plot: PlotConfig{
			Width:   DefaultPlotWidth,
			Height:  DefaultPlotHeight,
			Markers: true,
		},
		Generator: GeneratorConfig{
			Samples: DefaultSamples,
			Mean:    DefaultMean,
		},
		Staircase: StaircaseConfig{
			XMax:   DefaultXMax,
			Points: DefaultPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
