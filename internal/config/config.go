package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's persisted defaults, loaded from a YAML file so
// repeated invocations don't need to repeat the same flags.
type Config struct {
	ECL          string `yaml:"ecl"`
	ByteEncoding string `yaml:"byte_encoding"`
	LogLevel     string `yaml:"loglevel"`
	OutputDir    string `yaml:"output_dir"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		ECL:          "x",
		ByteEncoding: "shift-jis",
		LogLevel:     "warn",
		OutputDir:    "",
	}
}

// Load reads a YAML config file at path, overlaying it onto Defaults. A
// missing file is not an error: Defaults alone are returned.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
