package service

import (
	"postdeck/internal/models"
	"postdeck/internal/seed"
)

// AnalyticsService serves the mocked analytics report. All numbers are
// fixed demo data; nothing is derived from the post collection here.
type AnalyticsService struct{}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// AnalyticsReport bundles everything the analytics page renders.
type AnalyticsReport struct {
	Metrics             []models.AnalyticsMetric     `json:"metrics"`
	PlatformPerformance []models.PlatformPerformance `json:"platformPerformance"`
	Engagement          []models.EngagementSlice     `json:"engagement"`
	TotalEngagement     int                          `json:"totalEngagement"`
	WeeklyViews         []models.ViewsPoint          `json:"weeklyViews"`
	TopPosts            []models.TopPost             `json:"topPosts"`
}

// Report assembles the full analytics payload.
func (s *AnalyticsService) Report() *AnalyticsReport {
	engagement := seed.EngagementSplit()
	total := 0
	for _, e := range engagement {
		total += e.Value
	}
	return &AnalyticsReport{
		Metrics:             seed.AnalyticsMetrics(),
		PlatformPerformance: seed.PlatformPerformance(),
		Engagement:          engagement,
		TotalEngagement:     total,
		WeeklyViews:         seed.WeeklyViews(),
		TopPosts:            seed.TopPosts(),
	}
}
