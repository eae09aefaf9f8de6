package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type exclusionsFile struct {
	Exclusions struct {
		Exact   []string `yaml:"exact"`
		Partial []string `yaml:"partial"`
	} `yaml:"exclusions"`
}

// OverlayExclusions appends denylist terms from a user-maintained side
// file. A missing file is fine; people curate this one by hand between
// releases.
func OverlayExclusions(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var ef exclusionsFile
	if err := yaml.Unmarshal(b, &ef); err != nil {
		return err
	}

	cfg.Exclusions.Exact = append(cfg.Exclusions.Exact, ef.Exclusions.Exact...)
	cfg.Exclusions.Partial = append(cfg.Exclusions.Partial, ef.Exclusions.Partial...)
	return nil
}
