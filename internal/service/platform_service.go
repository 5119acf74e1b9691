package service

import (
	"context"
	"math"

	"postdeck/internal/models"
	"postdeck/internal/repository"
)

// PlatformService wraps the platform registry.
type PlatformService struct {
	platformRepo repository.PlatformRepository
}

// NewPlatformService creates a new platform service.
func NewPlatformService(platformRepo repository.PlatformRepository) *PlatformService {
	return &PlatformService{platformRepo: platformRepo}
}

// ListPlatforms returns all platforms in fixed seed order.
func (s *PlatformService) ListPlatforms(ctx context.Context) ([]*models.Platform, error) {
	return s.platformRepo.List(ctx)
}

// ToggleConnection flips a platform's connected flag and returns the
// updated platform.
func (s *PlatformService) ToggleConnection(ctx context.Context, id string) (*models.Platform, error) {
	return s.platformRepo.ToggleConnection(ctx, id)
}

// ConnectionSummary reports connected/total coverage for the platforms
// overview card.
type ConnectionSummary struct {
	Connected   int `json:"connected"`
	Total       int `json:"total"`
	CoveragePct int `json:"coveragePct"`
}

// Summary computes the current connection coverage.
func (s *PlatformService) Summary(ctx context.Context) (*ConnectionSummary, error) {
	platforms, err := s.platformRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &ConnectionSummary{Total: len(platforms)}
	for _, p := range platforms {
		if p.Connected {
			out.Connected++
		}
	}
	if out.Total > 0 {
		out.CoveragePct = int(math.Round(float64(out.Connected) / float64(out.Total) * 100))
	}
	return out, nil
}
