// ABOUTME: Pure aggregation helpers over activity and metrics histories.
// ABOUTME: Trailing-window volume, latest metrics, average pace, counts.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/harperreed/contratempo/internal/models"
)

// parseDate accepts the date formats entries carry: plain ISO dates from
// the UI and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inWindow reports whether the date falls within the trailing days*24h
// window measured from now, inclusive of the cutoff instant. Unparseable
// dates fall outside every window.
func inWindow(date string, days int, now time.Time) bool {
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	return !t.Before(cutoff)
}

// WeeklyVolume sums distanceKm over activities within the trailing
// days*24h window.
func WeeklyVolume(activities []models.ActivityEntry, days int) float64 {
	return weeklyVolumeAt(activities, days, time.Now())
}

func weeklyVolumeAt(activities []models.ActivityEntry, days int, now time.Time) float64 {
	var sum float64
	for _, a := range activities {
		if inWindow(a.Date, days, now) {
			sum += float64(a.DistanceKm)
		}
	}
	return sum
}

// LatestMetrics returns the entry with the maximum date, or nil if the
// history is empty. Ties resolve to whichever sorts first under a stable
// descending sort.
func LatestMetrics(metrics []models.MetricsEntry) *models.MetricsEntry {
	if len(metrics) == 0 {
		return nil
	}

	sorted := make([]models.MetricsEntry, len(metrics))
	copy(sorted, metrics)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := parseDate(sorted[i].Date)
		tj, _ := parseDate(sorted[j].Date)
		return ti.After(tj)
	})

	return &sorted[0]
}

// RecentActivityCount counts activities within the trailing days*24h
// window.
func RecentActivityCount(activities []models.ActivityEntry, days int) int {
	now := time.Now()
	count := 0
	for _, a := range activities {
		if inWindow(a.Date, days, now) {
			count++
		}
	}
	return count
}

// AveragePace returns the average pace over the trailing window as a
// min/km string: total time divided by total distance, "0:00" when total
// distance is 0.
func AveragePace(activities []models.ActivityEntry, days int) string {
	now := time.Now()
	var totalKm, totalMin float64
	for _, a := range activities {
		if inWindow(a.Date, days, now) {
			totalKm += float64(a.DistanceKm)
			totalMin += float64(a.TimeMin)
		}
	}
	if totalKm == 0 {
		return FormatPace(0)
	}
	return FormatPace(totalMin / totalKm)
}

// FormatPace renders a decimal minutes-per-km value as M:SS.
func FormatPace(minPerKm float64) string {
	if minPerKm <= 0 || math.IsNaN(minPerKm) || math.IsInf(minPerKm, 0) {
		return "0:00"
	}
	totalSeconds := int(math.Round(minPerKm * 60))
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
