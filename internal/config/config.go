package config

import (
	"encoding/json"
	"os"

	"github.com/fcurrie/ledwall-golang/internal/ingest"
	"github.com/fcurrie/ledwall-golang/pkg/hub75"
)

// Config is the application configuration.
type Config struct {
	Matrix  hub75.Options `json:"matrix"`
	Network NetworkConfig `json:"network"`
	Labels  LabelConfig   `json:"labels"`
}

// NetworkConfig covers the UDP ingest side.
type NetworkConfig struct {
	Port      int `json:"port"`
	Receivers int `json:"receivers"`
}

// LabelConfig is the text on the idle screen.
type LabelConfig struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// Load reads the configuration from a file.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := Default()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Matrix: hub75.DefaultOptions(),
		Network: NetworkConfig{
			Port:      ingest.DefaultPort,
			Receivers: 2,
		},
		Labels: LabelConfig{
			Line1: "Hacklab",
			Line2: "LED System",
		},
	}
}
