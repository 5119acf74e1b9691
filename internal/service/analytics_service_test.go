package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsReport(t *testing.T) {
	report := NewAnalyticsService().Report()

	require.NotEmpty(t, report.Metrics)
	require.NotEmpty(t, report.PlatformPerformance)
	require.NotEmpty(t, report.WeeklyViews)
	require.NotEmpty(t, report.TopPosts)

	require.Len(t, report.Engagement, 3)
	total := 0
	for _, slice := range report.Engagement {
		total += slice.Value
	}
	assert.Equal(t, total, report.TotalEngagement)
	assert.Equal(t, 10548, report.TotalEngagement)
}
