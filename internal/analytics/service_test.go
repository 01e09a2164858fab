package analytics

import (
	"context"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrops/hr-dashboard/internal/employee"
	"github.com/hrops/hr-dashboard/pkg/logger"
)

// Mock collection and bookmark sources for testing
type mockCollection struct {
	employees []employee.Employee
}

func (m *mockCollection) All(ctx context.Context) []employee.Employee {
	return m.employees
}

type mockBookmarks struct {
	count int
}

func (m *mockBookmarks) Count() int {
	return m.count
}

var _ = ginkgo.Describe("AnalyticsService", func() {
	var (
		service   *Service
		employees *mockCollection
		bookmarks *mockBookmarks
	)

	ginkgo.BeforeEach(func() {
		employees = &mockCollection{employees: []employee.Employee{
			member(1, "Amy", "Engineering", 5),
			member(2, "Bob", "Engineering", 5),
			member(3, "Cal", "Sales", 2),
		}}
		bookmarks = &mockBookmarks{count: 2}
		service = NewService(employees, bookmarks, logger.LoggerWrapper())
	})

	ginkgo.Describe("Snapshot", func() {
		ginkgo.It("should derive every aggregate from the same collection read", func() {
			// When
			snap := service.Snapshot(context.Background())

			// Then
			gomega.Expect(snap.Summary.TotalEmployees).To(gomega.Equal(3))
			gomega.Expect(snap.Summary.Bookmarked).To(gomega.Equal(2))
			gomega.Expect(snap.DepartmentStats).To(gomega.HaveLen(2))
			gomega.Expect(snap.Histogram).To(gomega.HaveLen(2))
			gomega.Expect(snap.Leaderboard).To(gomega.HaveLen(3))
			gomega.Expect(snap.TopPerformers).To(gomega.HaveKey("Engineering"))
			gomega.Expect(snap.TopPerformers).To(gomega.HaveKey("Sales"))
		})

		ginkgo.It("should reflect collection changes on the next call", func() {
			first := service.Snapshot(context.Background())
			gomega.Expect(first.Summary.TotalEmployees).To(gomega.Equal(3))

			employees.employees = append(employees.employees, member(4, "Dee", "Legal", 4))

			second := service.Snapshot(context.Background())
			gomega.Expect(second.Summary.TotalEmployees).To(gomega.Equal(4))
		})

		ginkgo.It("should produce an empty but well-formed snapshot for no employees", func() {
			employees.employees = nil
			bookmarks.count = 0

			snap := service.Snapshot(context.Background())

			gomega.Expect(snap.Summary.TotalEmployees).To(gomega.Equal(0))
			gomega.Expect(snap.Summary.AverageRating).To(gomega.Equal("0"))
			gomega.Expect(snap.DepartmentStats).To(gomega.BeEmpty())
			gomega.Expect(snap.Histogram).To(gomega.BeEmpty())
			gomega.Expect(snap.Leaderboard).To(gomega.BeEmpty())
		})
	})
})
