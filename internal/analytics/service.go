package analytics

import (
	"context"
	"log/slog"

	"github.com/hrops/hr-dashboard/internal/employee"
)

// CollectionReader supplies the canonical employee collection.
type CollectionReader interface {
	All(ctx context.Context) []employee.Employee
}

// BookmarkCounter is the only thing analytics reads from the bookmark
// store.
type BookmarkCounter interface {
	Count() int
}

type Service struct {
	employees CollectionReader
	bookmarks BookmarkCounter
	logger    *slog.Logger
}

func NewService(employees CollectionReader, bookmarks BookmarkCounter, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		bookmarks: bookmarks,
		logger:    logger,
	}
}

// Snapshot recomputes the full analytics payload from the current
// collection. Synchronous and run to completion on every call.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	all := s.employees.All(ctx)
	stats := DepartmentStats(all)

	return Snapshot{
		Summary:         Summarize(all, s.bookmarks.Count()),
		DepartmentStats: stats,
		Histogram:       RatingHistogram(all),
		Leaderboard:     Leaderboard(all, DefaultLeaderboardSize),
		TopPerformers:   TopPerformerPerDepartment(stats),
	}
}
