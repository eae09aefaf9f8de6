package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	var cfg Config
	cfg.App.Port = 38472
	cfg.Enrichment.BaseURL = "https://api.example.com"
	cfg.Source.ListingsFile = "listings.json"
	cfg.Titles.Priority = []string{"ceo"}
	return cfg
}

func TestNormalizeAndValidateDefaults(t *testing.T) {
	cfg := validConfig()
	out, vr := NormalizeAndValidate(cfg)

	assert.True(t, vr.OK(), "errors: %v", vr.Errors)
	assert.Equal(t, 15, out.Run.TimeoutSeconds)
	assert.Equal(t, 30, out.Run.CooldownSeconds)
	assert.Equal(t, 30, out.Cache.TTLDays)
	assert.Equal(t, 1.0, out.Run.RequestsPerSec)
}

func TestNormalizeAndValidateRequiresBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Enrichment.BaseURL = ""

	_, vr := NormalizeAndValidate(cfg)
	assert.False(t, vr.OK())
	assert.Contains(t, vr.Errors[0], "enrichment.base_url")
}

func TestNormalizeAndValidateListCleanup(t *testing.T) {
	cfg := validConfig()
	cfg.Exclusions.Exact = []string{" Gecko Hospitality ", "gecko hospitality", "", "Aramark"}
	cfg.Exclusions.Partial = []string{"staffing", "Aramark"}

	out, vr := NormalizeAndValidate(cfg)
	assert.True(t, vr.OK())
	assert.Equal(t, []string{"Gecko Hospitality", "Aramark"}, out.Exclusions.Exact)

	found := false
	for _, w := range vr.Warnings {
		if strings.Contains(w, "both exact and partial") {
			found = true
		}
	}
	assert.True(t, found, "expected a both-lists warning, got %v", vr.Warnings)
}

func TestNormalizeAndValidateNegativeIntervals(t *testing.T) {
	cfg := validConfig()
	cfg.Run.BudgetSeconds = -1
	cfg.Run.IntervalSeconds = -5

	_, vr := NormalizeAndValidate(cfg)
	assert.Len(t, vr.Errors, 2)
}
