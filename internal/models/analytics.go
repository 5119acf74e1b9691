package models

// AnalyticsMetric is a headline number for the analytics overview.
type AnalyticsMetric struct {
	Label  string  `json:"label"`
	Value  int     `json:"value"`
	Change float64 `json:"change"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
}

// PlatformPerformance summarizes reach per platform.
type PlatformPerformance struct {
	Platform   string  `json:"platform"`
	Views      int     `json:"views"`
	Engagement float64 `json:"engagement"`
	Posts      int     `json:"posts"`
}

// EngagementSlice is one segment of the engagement split (likes, comments,
// shares).
type EngagementSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// ViewsPoint is one step of the weekly views series.
type ViewsPoint struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
}

// TopPost is a best-performing post in the analytics report.
type TopPost struct {
	ID         int     `json:"id"`
	Content    string  `json:"content"`
	Platform   string  `json:"platform"`
	Views      int     `json:"views"`
	Likes      int     `json:"likes"`
	Comments   int     `json:"comments"`
	Engagement float64 `json:"engagement"`
}
