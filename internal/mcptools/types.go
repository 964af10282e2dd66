package mcptools

// GetEntryInput is the input schema for the get_entry MCP tool. An
// empty date means today.
type GetEntryInput struct {
	Date string `json:"date,omitempty" jsonschema-description:"Entry date as YYYY-MM-DD; omit for today"`
}

// GetEntryOutput is the output schema for the get_entry MCP tool.
type GetEntryOutput struct {
	Found   bool   `json:"found"`
	Date    string `json:"date"`
	Content string `json:"content,omitempty"`
	Mood    string `json:"mood,omitempty"`
}

// WriteEntryInput is the input schema for the write_entry MCP tool.
type WriteEntryInput struct {
	Content string `json:"content" jsonschema-description:"Entry content; replaces any existing content for today"`
	Mood    string `json:"mood,omitempty" jsonschema-description:"One of sad, normal, happy, cheerful"`
}

// WriteEntryOutput is the output schema for the write_entry MCP tool.
type WriteEntryOutput struct {
	Date string `json:"date"`
}

// AppendTodayInput is the input schema for the append_today MCP tool.
type AppendTodayInput struct {
	Text string `json:"text" jsonschema-description:"Text to append to today's entry"`
}

// AppendTodayOutput is the output schema for the append_today MCP tool.
type AppendTodayOutput struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// SearchInput is the input schema for the search_entries MCP tool.
type SearchInput struct {
	Query string `json:"query" jsonschema-description:"Literal text to search for in entry content"`
}

// SearchOutput is the output schema for the search_entries MCP tool.
type SearchOutput struct {
	Entries []SearchResult `json:"entries"`
}

// SearchResult is one search match with the query occurrences marked.
type SearchResult struct {
	Date        string `json:"date"`
	Highlighted string `json:"highlighted"`
}

// MonthMoodsInput is the input schema for the month_moods MCP tool.
type MonthMoodsInput struct {
	Year  int `json:"year" jsonschema-description:"Calendar year, e.g. 2024"`
	Month int `json:"month" jsonschema-description:"Month number 1-12"`
}

// MonthMoodsOutput is the output schema for the month_moods MCP tool.
type MonthMoodsOutput struct {
	Moods        map[string]string `json:"moods"`
	FirstWeekday int               `json:"first_weekday"`
	Days         int               `json:"days"`
}

// MoodTrendInput is the input schema for the mood_trend MCP tool.
type MoodTrendInput struct {
	Last int `json:"last,omitempty" jsonschema-description:"Keep only the most recent N points; 0 for all"`
}

// MoodTrendOutput is the output schema for the mood_trend MCP tool.
type MoodTrendOutput struct {
	Points []TrendPoint `json:"points"`
}

// TrendPoint is one (date, level) pair of the mood series.
type TrendPoint struct {
	Date  string `json:"date"`
	Level int    `json:"level"`
}
