package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for colredact.
type FileConfig struct {
	Rules     *string `yaml:"rules,omitempty"`
	Enable    *string `yaml:"enable,omitempty"`
	Disable   *string `yaml:"disable,omitempty"`
	Format    *string `yaml:"format,omitempty"`
	NoColor   *bool   `yaml:"no_color,omitempty"`
	Sheet     *string `yaml:"sheet,omitempty"`
	Delimiter *string `yaml:"delimiter,omitempty"`
	OutputDir *string `yaml:"output_dir,omitempty"`
	LogLevel  *string `yaml:"log_level,omitempty"`
	LogFormat *string `yaml:"log_format,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a project-local config file in dir.
// It supports .colredact.yml/.yaml and colredact.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".colredact.yml", ".colredact.yaml", "colredact.yml", "colredact.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "colredact", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Resolve returns the explicit config when path is set, otherwise the local
// and global files. Missing files are not an error; an explicit path that
// cannot be read is.
func Resolve(path, dir string) (local, global FileConfig, err error) {
	if path != "" {
		local, err = LoadFile(path)
		return local, global, err
	}
	if c, err := LoadLocal(dir); err == nil {
		local = c
	}
	if c, err := LoadGlobal(); err == nil {
		global = c
	}
	return local, global, nil
}
