package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvRecords overrides RecordsPath when set.
const EnvRecords = "GOLECTURES_RECORDS"

// Config holds the knobs shared by the CLI and the lectures.
type Config struct {
	Numbers     []float64 `yaml:"numbers"`      // data set for the algorithms lecture
	RecordsPath string    `yaml:"records_path"` // album file for the records lecture
	SourceDir   string    `yaml:"source_dir"`   // any path inside the module, for the capability report
	LogFile     string    `yaml:"log_file"`
	LogLevel    string    `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Numbers:     []float64{7.6, 9.5, 6.2, 3.6, 2.8, 5.4, 1.2, 8.9, 8.3, 5.6},
		RecordsPath: "albums.csv",
		SourceDir:   ".",
		LogFile:     "logs/golectures.log",
		LogLevel:    "info",
	}
}

// Load reads a YAML file over Default. Keys missing from the file keep their
// default value. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if v := os.Getenv(EnvRecords); v != "" {
		cfg.RecordsPath = v
	}
	return cfg, nil
}
