package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Run struct {
		BudgetSeconds   int     `yaml:"budget_seconds"`
		IntervalSeconds int     `yaml:"interval_seconds"`
		TimeoutSeconds  int     `yaml:"timeout_seconds"`
		CooldownSeconds int     `yaml:"cooldown_429_seconds"`
		RequestsPerSec  float64 `yaml:"requests_per_sec"`
		SearchPerMinute float64 `yaml:"search_per_minute"`
	} `yaml:"run"`

	Cache struct {
		TTLDays       int      `yaml:"ttl_days"`
		AlwaysRefresh []string `yaml:"always_refresh"`
	} `yaml:"cache"`

	Enrichment struct {
		BaseURL        string `yaml:"base_url"`
		KeyringAccount string `yaml:"keyring_account"`
		APIKeyEnv      string `yaml:"api_key_env"`
	} `yaml:"enrichment"`

	Source struct {
		ListingsFile string `yaml:"listings_file"`
	} `yaml:"source"`

	Exclusions struct {
		Exact   []string `yaml:"exact"`
		Partial []string `yaml:"partial"`
	} `yaml:"exclusions"`

	Titles struct {
		Priority []string `yaml:"priority"`
	} `yaml:"titles"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
