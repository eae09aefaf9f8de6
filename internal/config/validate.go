package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it. Defaults are filled here so downstream code never
// re-checks them.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Exclusions.Exact = trimList(out.Exclusions.Exact)
	out.Exclusions.Partial = trimList(out.Exclusions.Partial)
	out.Titles.Priority = trimList(out.Titles.Priority)
	out.Cache.AlwaysRefresh = trimList(out.Cache.AlwaysRefresh)

	// ---- defaults ----

	if out.App.Port == 0 {
		out.App.Port = 38472
	}
	if out.Run.TimeoutSeconds <= 0 {
		out.Run.TimeoutSeconds = 15
	}
	if out.Run.CooldownSeconds <= 0 {
		out.Run.CooldownSeconds = 30
	}
	if out.Run.RequestsPerSec <= 0 {
		out.Run.RequestsPerSec = 1
	}
	if out.Run.SearchPerMinute <= 0 {
		out.Run.SearchPerMinute = 10
	}
	if out.Cache.TTLDays <= 0 {
		out.Cache.TTLDays = 30
	}
	if out.Enrichment.BaseURL == "" {
		res.addErr("enrichment.base_url is required")
	}

	// ---- validation rules ----

	if out.App.Port < 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Run.BudgetSeconds < 0 {
		res.addErr("run.budget_seconds must be >= 0 (0 disables the budget)")
	}
	if out.Run.IntervalSeconds < 0 {
		res.addErr("run.interval_seconds must be >= 0 (0 disables scheduled runs)")
	} else if out.Run.IntervalSeconds > 0 && out.Run.IntervalSeconds < 60 {
		res.addWarn("run.interval_seconds is very low (%d) and may hammer the directory API.", out.Run.IntervalSeconds)
	}

	if out.Run.RequestsPerSec > 5 {
		res.addWarn("run.requests_per_sec is high (%.1f); the directory may rate-limit you.", out.Run.RequestsPerSec)
	}

	if out.Source.ListingsFile == "" {
		res.addWarn("source.listings_file is empty; /run will have nothing to process.")
	}

	if len(out.Titles.Priority) == 0 {
		res.addWarn("titles.priority is empty; built-in defaults will be used.")
	}

	// an exclusion that is both exact and partial is redundant
	partialSet := map[string]bool{}
	for _, p := range out.Exclusions.Partial {
		partialSet[strings.ToLower(p)] = true
	}
	for _, e := range out.Exclusions.Exact {
		if partialSet[strings.ToLower(e)] {
			res.addWarn("exclusion appears in both exact and partial: %q", e)
		}
	}

	return out, res
}
