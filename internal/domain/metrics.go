package domain

// IntentCount is one row of the top-intents board.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// TrendPoint is one day of ticket volume.
type TrendPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// MetricsSummary is the dashboard read model.
type MetricsSummary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	TopIntents []IntentCount  `json:"topIntents"`
	Trend      []TrendPoint   `json:"trend"`
}
