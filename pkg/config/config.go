package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SourceText   = "text"
	SourceSQLite = "sqlite"
)

type Config struct {
	Input InputConfig `yaml:"input"`
	Bench BenchConfig `yaml:"bench"`
}

type InputConfig struct {
	Source        string `yaml:"source"`         // text | sqlite
	DirectoryPath string `yaml:"directory_path"` // one "<phone> <name>" per line
	QueriesPath   string `yaml:"queries_path"`   // one query per line
	SQLitePath    string `yaml:"sqlite_path"`
}

type BenchConfig struct {
	FallbackFactor int  `yaml:"fallback_factor"`
	TreeIndex      bool `yaml:"tree_index"`
}

func defaults() *Config {
	return &Config{
		Input: InputConfig{
			Source:        SourceText,
			DirectoryPath: "directory.txt",
			QueriesPath:   "find.txt",
			SQLitePath:    "phonebook.db",
		},
		Bench: BenchConfig{
			FallbackFactor: 10,
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath == "" {
		for _, p := range []string{"configs/phonebench.yaml", "phonebench.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Input.Source == "" {
		cfg.Input.Source = SourceText
	}
	if cfg.Input.SQLitePath == "" {
		cfg.Input.SQLitePath = "phonebook.db"
	}
	if cfg.Bench.FallbackFactor <= 0 {
		cfg.Bench.FallbackFactor = 10
	}
}
