package bookmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hrops/hr-dashboard/internal"
	"github.com/hrops/hr-dashboard/internal/bookmark"
	bookmarkSqlite "github.com/hrops/hr-dashboard/internal/bookmark/sqlite"
	"github.com/hrops/hr-dashboard/internal/core/events"
	"github.com/hrops/hr-dashboard/internal/employee"
	"github.com/hrops/hr-dashboard/pkg/logger"
)

// stub resolver over a fixed collection
type stubEmployees struct {
	known map[int64]employee.Employee
	order []int64
}

func (s *stubEmployees) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if emp, ok := s.known[id]; ok {
		e := emp
		return &e, nil
	}
	return nil, internal.ErrEmployeeNotFound
}

func (s *stubEmployees) Bookmarked(ctx context.Context, ids []int64) []employee.Employee {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []employee.Employee
	for _, id := range s.order {
		if _, ok := want[id]; ok {
			out = append(out, s.known[id])
		}
	}
	return out
}

var _ = Describe("Bookmark Handler Integration", func() {
	var (
		store     *bookmark.Store
		handler   *bookmark.Handler
		router    *chi.Mux
		employees *stubEmployees
	)

	BeforeEach(func() {
		storage, err := bookmarkSqlite.Open(":memory:")
		Expect(err).NotTo(HaveOccurred())

		store = bookmark.NewStore(storage, logger.LoggerWrapper())
		employees = &stubEmployees{
			known: map[int64]employee.Employee{
				1: {ID: 1, FirstName: "Alice"},
				2: {ID: 2, FirstName: "Bob"},
			},
			order: []int64{1, 2},
		}
		handler = bookmark.NewHandler(store, employees, events.NewEventBus(logger.LoggerWrapper()))

		router = chi.NewRouter()
		router.Get("/bookmarks", handler.List)
		router.Post("/bookmarks/actions", handler.BulkAction)
		router.Put("/bookmarks/{id}", handler.Add)
		router.Delete("/bookmarks/{id}", handler.Remove)
	})

	Describe("PUT /bookmarks/{id}", func() {
		It("should bookmark a known employee", func() {
			req := httptest.NewRequest(http.MethodPut, "/bookmarks/1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(store.Has(1)).To(BeTrue())

			var body map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["bookmarked"]).To(BeTrue())
			Expect(body["total"]).To(BeNumerically("==", 1))
		})

		It("should stay idempotent on a repeated bookmark", func() {
			for i := 0; i < 2; i++ {
				req := httptest.NewRequest(http.MethodPut, "/bookmarks/1", nil)
				router.ServeHTTP(httptest.NewRecorder(), req)
			}

			Expect(store.Count()).To(Equal(1))
		})

		It("should reject an unknown employee with 404", func() {
			req := httptest.NewRequest(http.MethodPut, "/bookmarks/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(store.Count()).To(Equal(0))
		})

		It("should reject a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodPut, "/bookmarks/abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /bookmarks/{id}", func() {
		It("should remove an existing bookmark", func() {
			Expect(store.Add(1)).To(Succeed())

			req := httptest.NewRequest(http.MethodDelete, "/bookmarks/1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(store.Has(1)).To(BeFalse())
		})
	})

	Describe("GET /bookmarks", func() {
		It("should return ids and resolved employees", func() {
			Expect(store.Add(2)).To(Succeed())
			Expect(store.Add(1)).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				IDs       []int64             `json:"ids"`
				Employees []employee.Employee `json:"employees"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.IDs).To(Equal([]int64{2, 1}))
			// resolution follows collection order, not bookmark order
			Expect(body.Employees[0].FirstName).To(Equal("Alice"))
			Expect(body.Employees[1].FirstName).To(Equal("Bob"))
		})
	})

	Describe("POST /bookmarks/actions", func() {
		It("should report the affected ids for a known action", func() {
			Expect(store.Add(1)).To(Succeed())
			Expect(store.Add(2)).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/bookmarks/actions",
				strings.NewReader(`{"action":"promote"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				Action      string  `json:"action"`
				EmployeeIDs []int64 `json:"employee_ids"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Action).To(Equal("promote"))
			Expect(body.EmployeeIDs).To(Equal([]int64{1, 2}))
		})

		It("should leave the bookmark set untouched", func() {
			Expect(store.Add(1)).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/bookmarks/actions",
				strings.NewReader(`{"action":"assign-project"}`))
			router.ServeHTTP(httptest.NewRecorder(), req)

			Expect(store.All()).To(Equal([]int64{1}))
		})

		It("should reject an unknown action", func() {
			req := httptest.NewRequest(http.MethodPost, "/bookmarks/actions",
				strings.NewReader(`{"action":"terminate"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/bookmarks/actions",
				strings.NewReader(`{broken`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
