package domain

import (
	"sort"
	"time"
)

// ComputeProgress projects a user's assignment history into completion
// statistics. Skipped-but-not-completed days count toward the total and
// dilute the completion rate; only completed days feed the streak walk.
func ComputeProgress(assignments []DailyAssignment, now time.Time) HabitProgress {
	total := len(assignments)

	dates := make([]string, 0, total)
	completed := 0
	for _, a := range assignments {
		if a.Completed {
			completed++
			dates = append(dates, a.Date)
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	current, longest := streaks(dates, now)

	return HabitProgress{
		TotalHabits:     total,
		CompletedHabits: completed,
		CurrentStreak:   current,
		LongestStreak:   longest,
		CompletionRate:  rate,
	}
}

// streaks walks the completed dates newest-first counting runs of
// consecutive calendar days. The newest run only counts as the current
// streak while it is still alive, meaning the most recent completion is
// today or yesterday; a lapsed streak reports zero even though the longest
// streak still reflects it.
func streaks(dates []string, now time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	// YYYY-MM-DD sorts chronologically as text.
	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	newestRun := 0
	run := 1
	for i := 0; i < len(sorted)-1; i++ {
		switch dayDiff(sorted[i], sorted[i+1]) {
		case 0:
			// Duplicate records for one date extend nothing.
		case 1:
			run++
		default:
			if newestRun == 0 {
				newestRun = run
			}
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if newestRun == 0 {
		newestRun = run
	}
	if run > longest {
		longest = run
	}

	today := now.Format(DateFormat)
	yesterday := now.AddDate(0, 0, -1).Format(DateFormat)
	if sorted[0] == today || sorted[0] == yesterday {
		current = newestRun
	}
	return current, longest
}

// dayDiff returns the whole calendar days between two YYYY-MM-DD strings
// (newer first). Unparseable dates break the run.
func dayDiff(newer, older string) int {
	a, err := time.Parse(DateFormat, newer)
	if err != nil {
		return -1
	}
	b, err := time.Parse(DateFormat, older)
	if err != nil {
		return -1
	}
	return int(a.Sub(b).Hours() / 24)
}
