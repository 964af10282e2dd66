// Package trend produces the chronological mood series used for
// charting.
package trend

import (
	"fmt"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
)

// Point is one charted value: a date and its numeric mood level.
type Point struct {
	Date  string `json:"date"`
	Level int    `json:"level"`
}

// Build maps every entry with a set mood to a (date, level) point,
// ascending by date. An empty series means nothing to chart, not an
// error.
func Build(store storage.Storage) ([]Point, error) {
	entries, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	points := []Point{}
	for _, e := range entries {
		if e.Mood == journal.MoodNone {
			continue
		}
		points = append(points, Point{Date: e.Date, Level: e.Mood.Level()})
	}
	return points, nil
}

// Last keeps the most recent n points, still ascending by date.
func Last(points []Point, n int) []Point {
	if n <= 0 || n >= len(points) {
		return points
	}
	return points[len(points)-n:]
}
