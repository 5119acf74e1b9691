// Package seed provides the fixed platform registry plus demo posts,
// messages, and analytics data. Demo data is for development and testing;
// the registry is the canonical seed for the platform collection.
package seed

import (
	_ "embed"
	"fmt"

	"postdeck/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed platforms.yml
var platformsYAML []byte

type platformRegistry struct {
	Platforms []models.Platform `yaml:"platforms"`
}

// Platforms returns the seed platform registry in fixed file order. Each
// call returns fresh copies so callers can mutate freely.
func Platforms() []*models.Platform {
	var reg platformRegistry
	if err := yaml.Unmarshal(platformsYAML, &reg); err != nil {
		// The registry is embedded and validated by tests; failing to parse
		// it is a build defect, not a runtime condition.
		panic(fmt.Sprintf("seed: parse embedded platform registry: %v", err))
	}
	out := make([]*models.Platform, len(reg.Platforms))
	for i := range reg.Platforms {
		p := reg.Platforms[i]
		out[i] = &p
	}
	return out
}
