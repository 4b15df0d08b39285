// ============================================================================
// helper - Utility CLI and Libraries
// ============================================================================
//
// Package:     fleet
// Description: Known fleet API environments
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package fleet

import (
	"sort"
	"strings"

	herror "github.com/msto63/helper/foundation/core/error"
)

// DefaultEndpoints returns the built-in environment to base URL table.
// A fresh map is returned on every call.
func DefaultEndpoints() map[string]string {
	return map[string]string{
		"prod_web":        "https://fleet.badger-technologies.com/api/web/v1",
		"prod_insight":    "https://fleet.badger-technologies.com/api/insight/v1",
		"staging_web":     "https://staging.btdev.team/api/web/v1",
		"staging_insight": "https://staging.btdev.team/api/insight/v1",
		"dev_web":         "https://dev.btdev.team/api/web/v1",
		"dev_insight":     "https://dev.btdev.team/api/insight/v1",
		"demo_web":        "https://demo.badger-service.com/api/web/v1",
		"demo_insight":    "https://demo.badger-service.com/api/insight/v1",
	}
}

// MergeEndpoints returns base overlaid with overrides
func MergeEndpoints(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for env, url := range base {
		merged[env] = url
	}
	for env, url := range overrides {
		merged[env] = url
	}
	return merged
}

// Environments returns the sorted environment names of an endpoint table
func Environments(endpoints map[string]string) []string {
	names := make([]string, 0, len(endpoints))
	for env := range endpoints {
		names = append(names, env)
	}
	sort.Strings(names)
	return names
}

// ForEnvironment creates a client for the named environment
func ForEnvironment(endpoints map[string]string, env string, cfg Config) (*Client, error) {
	env = strings.Trim(env, `"`)
	url, ok := endpoints[env]
	if !ok {
		valid := Environments(endpoints)
		return nil, herror.Newf("invalid fleet environment %q, valid options: %s", env, strings.Join(valid, ", ")).
			WithCode(herror.CodeInvalidConfig).
			WithOperation("fleet.ForEnvironment").
			WithDetail("environment", env).
			WithDetail("valid", valid)
	}
	cfg.BaseURL = url
	return NewClient(cfg), nil
}
