package employee

import (
	"fmt"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Paginate", func() {
	var items []Employee

	ginkgo.BeforeEach(func() {
		items = make([]Employee, 20)
		for i := range items {
			items[i] = testEmployee(int64(i+1), fmt.Sprintf("First%d", i+1), "Last", "e@corp.com", "Engineering", 3)
		}
	})

	ginkgo.It("should split 20 items into 4 pages of 6", func() {
		page := Paginate(items, 1, 6)

		gomega.Expect(page.TotalItems).To(gomega.Equal(20))
		gomega.Expect(page.TotalPages).To(gomega.Equal(4))
		gomega.Expect(page.Items).To(gomega.HaveLen(6))
		gomega.Expect(page.StartIndex).To(gomega.Equal(0))
		gomega.Expect(page.EndIndex).To(gomega.Equal(6))
	})

	ginkgo.It("should leave the remainder on the last page", func() {
		page := Paginate(items, 4, 6)

		gomega.Expect(page.Items).To(gomega.HaveLen(2))
		gomega.Expect(page.Items[0].ID).To(gomega.Equal(int64(19)))
		gomega.Expect(page.Items[1].ID).To(gomega.Equal(int64(20)))
	})

	ginkgo.It("should reconstruct the collection from consecutive pages", func() {
		var rebuilt []Employee
		for p := 1; p <= 4; p++ {
			rebuilt = append(rebuilt, Paginate(items, p, 6).Items...)
		}
		gomega.Expect(rebuilt).To(gomega.Equal(items))
	})

	ginkgo.It("should never hand out more than pageSize items", func() {
		for p := 1; p <= 5; p++ {
			for _, size := range AllowedPageSizes {
				got := Paginate(items, p, size)
				gomega.Expect(len(got.Items)).To(gomega.BeNumerically("<=", size))
			}
		}
	})

	ginkgo.Context("with an out-of-range page", func() {
		ginkgo.It("should return an empty window, not an error", func() {
			page := Paginate(items, 9, 6)

			gomega.Expect(page.Items).To(gomega.BeEmpty())
			gomega.Expect(page.TotalItems).To(gomega.Equal(20))
			gomega.Expect(page.TotalPages).To(gomega.Equal(4))
		})
	})

	ginkgo.Context("with an empty collection", func() {
		ginkgo.It("should report zero pages", func() {
			page := Paginate(nil, 1, 6)

			gomega.Expect(page.Items).To(gomega.BeEmpty())
			gomega.Expect(page.TotalItems).To(gomega.Equal(0))
			gomega.Expect(page.TotalPages).To(gomega.Equal(0))
		})
	})

	ginkgo.It("should treat a non-positive page size as 1", func() {
		page := Paginate(items, 1, 0)
		gomega.Expect(page.Items).To(gomega.HaveLen(1))
		gomega.Expect(page.TotalPages).To(gomega.Equal(20))
	})
})

var _ = ginkgo.Describe("ClampPage", func() {
	ginkgo.It("should pull an overshooting page back to the last page", func() {
		gomega.Expect(ClampPage(7, 4)).To(gomega.Equal(4))
	})

	ginkgo.It("should floor at page one", func() {
		gomega.Expect(ClampPage(0, 4)).To(gomega.Equal(1))
		gomega.Expect(ClampPage(-3, 4)).To(gomega.Equal(1))
	})

	ginkgo.It("should leave an in-range page alone", func() {
		gomega.Expect(ClampPage(2, 4)).To(gomega.Equal(2))
	})

	ginkgo.It("should keep page one when there are no pages at all", func() {
		gomega.Expect(ClampPage(3, 0)).To(gomega.Equal(3))
		gomega.Expect(ClampPage(0, 0)).To(gomega.Equal(1))
	})
})
