package seed

import "postdeck/internal/models"

// AnalyticsMetrics returns the headline metrics for the analytics overview.
func AnalyticsMetrics() []models.AnalyticsMetric {
	return []models.AnalyticsMetric{
		{Label: "Total Views", Value: 144300, Change: 12.5, Icon: "Eye", Color: "#6366f1"},
		{Label: "Total Likes", Value: 7061, Change: 8.2, Icon: "Heart", Color: "#f43f5e"},
		{Label: "Comments", Value: 1167, Change: -2.4, Icon: "MessageSquare", Color: "#10b981"},
		{Label: "Shares", Value: 2320, Change: 5.7, Icon: "Share2", Color: "#3b82f6"},
	}
}

// PlatformPerformance returns per-platform reach numbers.
func PlatformPerformance() []models.PlatformPerformance {
	return []models.PlatformPerformance{
		{Platform: "Twitter/X", Views: 91155, Engagement: 12.1, Posts: 24},
		{Platform: "LinkedIn", Views: 78432, Engagement: 10.8, Posts: 18},
		{Platform: "Instagram", Views: 65789, Engagement: 9.7, Posts: 31},
		{Platform: "Facebook", Views: 42210, Engagement: 6.3, Posts: 15},
	}
}

// EngagementSplit returns the likes/comments/shares split.
func EngagementSplit() []models.EngagementSlice {
	return []models.EngagementSlice{
		{Name: "Likes", Value: 7061, Color: "#f43f5e"},
		{Name: "Comments", Value: 1167, Color: "#10b981"},
		{Name: "Shares", Value: 2320, Color: "#3b82f6"},
	}
}

// WeeklyViews returns the views-over-time series.
func WeeklyViews() []models.ViewsPoint {
	return []models.ViewsPoint{
		{Name: "Jan 14", Views: 19500}, {Name: "Jan 21", Views: 17800},
		{Name: "Jan 28", Views: 16200}, {Name: "Feb 4", Views: 14500},
		{Name: "Feb 11", Views: 13800}, {Name: "Feb 18", Views: 11200},
		{Name: "Feb 25", Views: 9800}, {Name: "Mar 4", Views: 8500},
		{Name: "Mar 11", Views: 7200}, {Name: "Mar 18", Views: 6100},
		{Name: "Mar 25", Views: 5200}, {Name: "Apr 1", Views: 4300},
		{Name: "Apr 8", Views: 3800}, {Name: "Apr 15", Views: 3200},
		{Name: "Apr 22", Views: 2800},
	}
}

// TopPosts returns the best-performing posts for the report.
func TopPosts() []models.TopPost {
	return []models.TopPost{
		{ID: 1, Content: "Behind the scenes look at our office culture 📸 We're hiring! #WorkCulture #Jobs", Platform: "Twitter/X", Views: 91155, Likes: 7061, Comments: 1167, Engagement: 12.1},
		{ID: 2, Content: "New product launch announcement! 🚀 Check out what we've been working on #ProductLaunch", Platform: "LinkedIn", Views: 78432, Likes: 5234, Comments: 892, Engagement: 10.8},
		{ID: 3, Content: "Customer success story: How we helped @company achieve 300% growth 📈 #CaseStudy", Platform: "Instagram", Views: 65789, Likes: 4521, Comments: 678, Engagement: 9.7},
	}
}
