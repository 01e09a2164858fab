// Package analytics computes the dashboard aggregates: department
// averages, the rating histogram, the leaderboard and the summary
// cards. Everything here is a pure function of the employee collection;
// nothing is cached or persisted.
package analytics

import (
	"math"
	"sort"
	"strconv"

	"github.com/hrops/hr-dashboard/internal/employee"
)

// DepartmentStat aggregates one department.
type DepartmentStat struct {
	Department    string              `json:"department"`
	Count         int                 `json:"count"`
	AverageRating float64             `json:"average_rating"`
	Members       []employee.Employee `json:"members,omitempty"`
}

// LeaderboardEntry is one ranked row. Score is the rating on a 0-100
// scale, sized for a progress bar.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	EmployeeID int64  `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Image      string `json:"image"`
	Rating     int    `json:"rating"`
	Score      int    `json:"score"`
}

// HistogramBucket is one non-empty star bucket.
type HistogramBucket struct {
	Label      string  `json:"label"`
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary holds the four headline metrics.
type Summary struct {
	TotalEmployees int    `json:"total_employees"`
	AverageRating  string `json:"average_rating"`
	HighPerformers int    `json:"high_performers"`
	Bookmarked     int    `json:"bookmarked"`
}

// Snapshot is the full analytics payload, derived and never stored.
type Snapshot struct {
	Summary         Summary                      `json:"summary"`
	DepartmentStats []DepartmentStat             `json:"department_stats"`
	Histogram       []HistogramBucket            `json:"rating_distribution"`
	Leaderboard     []LeaderboardEntry           `json:"leaderboard"`
	TopPerformers   map[string]employee.Employee `json:"top_performers"`
}

// DefaultLeaderboardSize matches the dashboard's top-10 board.
const DefaultLeaderboardSize = 10

// round1 rounds half away from zero to one decimal, the same rule the
// dashboard applied everywhere a rating is displayed.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// DepartmentStats groups employees by department and computes per-
// department count, average rating and membership. Result order is
// average rating descending; departments tied on average stay in
// first-appearance order.
func DepartmentStats(employees []employee.Employee) []DepartmentStat {
	index := make(map[string]int)
	var stats []DepartmentStat
	totals := make(map[string]int)

	for _, emp := range employees {
		dept := emp.Company.Department
		i, ok := index[dept]
		if !ok {
			i = len(stats)
			index[dept] = i
			stats = append(stats, DepartmentStat{Department: dept})
		}
		stats[i].Count++
		stats[i].Members = append(stats[i].Members, emp)
		totals[dept] += emp.Rating
	}

	for i := range stats {
		stats[i].AverageRating = round1(float64(totals[stats[i].Department]) / float64(stats[i].Count))
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].AverageRating > stats[b].AverageRating
	})

	return stats
}

// Leaderboard ranks the topN employees by rating descending. Ties break
// on first name descending (reverse lexicographic): the board has
// always ordered "Bob" above "Amy" at the same rating. Rank is the
// 1-based position after sorting; tied ratings do not share a rank.
// The input slice is never reordered.
func Leaderboard(employees []employee.Employee, topN int) []LeaderboardEntry {
	if topN <= 0 {
		topN = DefaultLeaderboardSize
	}

	ranked := make([]employee.Employee, len(employees))
	copy(ranked, employees)

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Rating != ranked[b].Rating {
			return ranked[a].Rating > ranked[b].Rating
		}
		return ranked[a].FirstName > ranked[b].FirstName
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	entries := make([]LeaderboardEntry, len(ranked))
	for i, emp := range ranked {
		entries[i] = LeaderboardEntry{
			Rank:       i + 1,
			EmployeeID: emp.ID,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			Department: emp.Company.Department,
			Image:      emp.Image,
			Rating:     emp.Rating,
			Score:      emp.Rating * 20,
		}
	}
	return entries
}

var bucketLabels = map[int]string{
	1: "1 Star",
	2: "2 Stars",
	3: "3 Stars",
	4: "4 Stars",
	5: "5 Stars",
}

// RatingHistogram buckets employees by rating. Buckets are emitted in
// display order (5 stars first) and zero-count buckets are omitted. An
// empty collection yields an empty histogram; the percentage of an
// empty bucket space is 0, never a division by zero.
func RatingHistogram(employees []employee.Employee) []HistogramBucket {
	counts := make(map[int]int)
	for _, emp := range employees {
		counts[emp.Rating]++
	}

	total := len(employees)
	var buckets []HistogramBucket
	for rating := 5; rating >= 1; rating-- {
		count := counts[rating]
		if count == 0 {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = round1(float64(count) / float64(total) * 100)
		}
		buckets = append(buckets, HistogramBucket{
			Label:      bucketLabels[rating],
			Rating:     rating,
			Count:      count,
			Percentage: pct,
		})
	}
	return buckets
}

// TopPerformerPerDepartment picks each department's highest-rated
// member. Ties keep the first member in the department's original
// relative order (strict greater-than scan).
func TopPerformerPerDepartment(stats []DepartmentStat) map[string]employee.Employee {
	top := make(map[string]employee.Employee, len(stats))
	for _, stat := range stats {
		if len(stat.Members) == 0 {
			continue
		}
		best := stat.Members[0]
		for _, member := range stat.Members[1:] {
			if member.Rating > best.Rating {
				best = member
			}
		}
		top[stat.Department] = best
	}
	return top
}

// Summarize computes the headline metrics. The bookmark count comes
// from the bookmark store, not from the collection.
func Summarize(employees []employee.Employee, bookmarkCount int) Summary {
	avg := "0"
	if len(employees) > 0 {
		var sum int
		for _, emp := range employees {
			sum += emp.Rating
		}
		avg = strconv.FormatFloat(round1(float64(sum)/float64(len(employees))), 'f', 1, 64)
	}

	high := 0
	for _, emp := range employees {
		if emp.Rating >= 4 {
			high++
		}
	}

	return Summary{
		TotalEmployees: len(employees),
		AverageRating:  avg,
		HighPerformers: high,
		Bookmarked:     bookmarkCount,
	}
}
