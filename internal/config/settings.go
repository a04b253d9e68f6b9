package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/cephalopod/internal/domain"
)

// Settings holds the runtime options shared by the CLI and the web server.
type Settings struct {
	Engine   domain.EngineKind `yaml:"engine"`
	Workers  int               `yaml:"workers"`
	LogLevel string            `yaml:"log_level"`
	Server   ServerSettings    `yaml:"server"`
}

type ServerSettings struct {
	Addr        string `yaml:"addr"`
	PersistPath string `yaml:"persist_path"`
}

func Defaults() Settings {
	return Settings{
		Engine:   domain.EngineMemo,
		Workers:  0, // NumCPU
		LogLevel: "info",
		Server: ServerSettings{
			Addr:        ":8080",
			PersistPath: "./data",
		},
	}
}

// LoadSettings overlays the YAML file at path on Defaults. An empty path
// returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Workers < 0 {
		return s, fmt.Errorf("parse settings %s: workers must be >= 0, got %d", path, s.Workers)
	}
	return s, nil
}
