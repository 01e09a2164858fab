package employee

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func testEmployee(id int64, first, last, email, dept string, rating int) Employee {
	return Employee{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Rating:    rating,
		Company:   Company{Department: dept},
	}
}

var _ = ginkgo.Describe("Filter", func() {
	var collection []Employee

	ginkgo.BeforeEach(func() {
		collection = []Employee{
			testEmployee(1, "Alice", "Nguyen", "alice@corp.com", "Engineering", 5),
			testEmployee(2, "Bob", "Smith", "bob@corp.com", "Marketing", 3),
			testEmployee(3, "Carol", "Engel", "carol@corp.com", "Sales", 4),
			testEmployee(4, "Dave", "Jones", "dave.eng@corp.com", "HR", 2),
			testEmployee(5, "Eve", "Adams", "eve@corp.com", "Engineering", 3),
		}
	})

	ginkgo.Context("with zero criteria", func() {
		ginkgo.It("should return every employee in source order", func() {
			// When
			got := Filter(collection, Criteria{})

			// Then
			gomega.Expect(got).To(gomega.HaveLen(len(collection)))
			for i := range got {
				gomega.Expect(got[i].ID).To(gomega.Equal(collection[i].ID))
			}
		})
	})

	ginkgo.Context("with a search term", func() {
		ginkgo.It("should match case-insensitively across name, email and department", func() {
			// "eng" hits Alice and Eve (Engineering), Carol (last name
			// Engel) and Dave (email dave.eng@).
			got := Filter(collection, Criteria{SearchText: "ENG"})

			ids := make([]int64, len(got))
			for i, emp := range got {
				ids[i] = emp.ID
			}
			gomega.Expect(ids).To(gomega.Equal([]int64{1, 3, 4, 5}))
		})

		ginkgo.It("should return empty for a term matching nothing", func() {
			got := Filter(collection, Criteria{SearchText: "zzz"})
			gomega.Expect(got).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("with department and rating restrictions", func() {
		ginkgo.It("should treat empty sets as no restriction", func() {
			got := Filter(collection, Criteria{Departments: nil, Ratings: nil})
			gomega.Expect(got).To(gomega.HaveLen(5))
		})

		ginkgo.It("should AND all predicates together", func() {
			got := Filter(collection, Criteria{
				Departments: []string{"Engineering"},
				Ratings:     []int{3},
			})

			gomega.Expect(got).To(gomega.HaveLen(1))
			gomega.Expect(got[0].ID).To(gomega.Equal(int64(5)))
		})

		ginkgo.It("should OR within a single predicate's set", func() {
			got := Filter(collection, Criteria{Ratings: []int{2, 5}})

			gomega.Expect(got).To(gomega.HaveLen(2))
			gomega.Expect(got[0].ID).To(gomega.Equal(int64(1)))
			gomega.Expect(got[1].ID).To(gomega.Equal(int64(4)))
		})
	})

	ginkgo.It("should be idempotent", func() {
		criteria := Criteria{SearchText: "eng", Departments: []string{"Engineering"}}

		once := Filter(collection, criteria)
		twice := Filter(once, criteria)

		gomega.Expect(twice).To(gomega.Equal(once))
	})

	ginkgo.It("should never mutate its input", func() {
		before := make([]Employee, len(collection))
		copy(before, collection)

		_ = Filter(collection, Criteria{SearchText: "a", Ratings: []int{4, 5}})

		gomega.Expect(collection).To(gomega.Equal(before))
	})
})

var _ = ginkgo.Describe("Criteria", func() {
	ginkgo.Describe("IsZero", func() {
		ginkgo.It("should be true only when nothing is restricted", func() {
			gomega.Expect(Criteria{}.IsZero()).To(gomega.BeTrue())
			gomega.Expect(Criteria{SearchText: "x"}.IsZero()).To(gomega.BeFalse())
			gomega.Expect(Criteria{Departments: []string{"HR"}}.IsZero()).To(gomega.BeFalse())
			gomega.Expect(Criteria{Ratings: []int{1}}.IsZero()).To(gomega.BeFalse())
		})
	})
})
