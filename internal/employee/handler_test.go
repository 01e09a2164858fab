package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hrops/hr-dashboard/internal/core/events"
	"github.com/hrops/hr-dashboard/internal/directory"
	"github.com/hrops/hr-dashboard/internal/employee"
	"github.com/hrops/hr-dashboard/pkg/logger"
)

type staticSource struct {
	records []directory.UserRecord
}

func (s *staticSource) FetchUsers(ctx context.Context) ([]directory.UserRecord, error) {
	return s.records, nil
}

var _ = Describe("Employee Handler Integration", func() {
	var (
		handler *employee.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		source := &staticSource{}
		for i := int64(1); i <= 8; i++ {
			source.records = append(source.records, directory.UserRecord{
				ID:        i,
				FirstName: "Person",
				LastName:  "Number",
				Email:     "person@corp.com",
				Age:       30,
			})
		}

		service := employee.NewService(source, events.NewEventBus(logger.LoggerWrapper()), 0, 0, logger.LoggerWrapper())
		handler = employee.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/employees", handler.List)
		router.Post("/employees", handler.Create)
		router.Get("/employees/departments", handler.ListDepartments)
		router.Get("/employees/{id}", handler.Get)
		router.Post("/employees/{id}/feedback", handler.SubmitFeedback)
	})

	Describe("GET /employees", func() {
		It("should return the first page with defaults", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				Employees  []employee.Employee `json:"employees"`
				Page       int                 `json:"page"`
				PageSize   int                 `json:"page_size"`
				TotalItems int                 `json:"total_items"`
				TotalPages int                 `json:"total_pages"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Page).To(Equal(1))
			Expect(body.PageSize).To(Equal(employee.DefaultPageSize))
			Expect(body.TotalItems).To(Equal(8))
			Expect(body.TotalPages).To(Equal(2))
			Expect(body.Employees).To(HaveLen(6))
		})

		It("should window the second page", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?page=2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var body struct {
				Employees []employee.Employee `json:"employees"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Employees).To(HaveLen(2))
		})

		It("should ignore a page size outside the allowed set", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?page_size=7", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var body struct {
				PageSize int `json:"page_size"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.PageSize).To(Equal(employee.DefaultPageSize))
		})

		It("should return an empty page rather than erroring past the end", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?page=99", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var body struct {
				Employees []employee.Employee `json:"employees"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Employees).To(BeEmpty())
		})
	})

	Describe("GET /employees/{id}", func() {
		It("should return the decorated employee", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/3", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&emp)).To(Succeed())
			Expect(emp.ID).To(Equal(int64(3)))
			Expect(emp.Rating).To(BeNumerically(">=", 1))
			Expect(emp.Company.Department).NotTo(BeEmpty())
		})

		It("should 404 an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /employees", func() {
		It("should create and return the employee", func() {
			payload := `{
				"first_name": "Dana",
				"last_name": "Field",
				"email": "dana@corp.com",
				"phone": "+1 555 0199",
				"age": 28,
				"department": "Engineering",
				"title": "Backend Engineer"
			}`
			req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(payload))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var emp employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&emp)).To(Succeed())
			Expect(emp.ID).To(Equal(int64(9)))
			Expect(emp.FirstName).To(Equal("Dana"))
		})

		It("should return all field errors on an invalid payload", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"age": 5}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details struct {
						Errors []struct {
							Field string `json:"field"`
						} `json:"errors"`
					} `json:"details"`
				} `json:"error"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Error.Code).To(Equal("VALIDATION_FAILED"))
			Expect(len(body.Error.Details.Errors)).To(BeNumerically(">=", 5))
		})
	})

	Describe("POST /employees/{id}/feedback", func() {
		It("should store the feedback entry", func() {
			payload := `{"reviewer": "Pat Manager", "rating": 4, "comment": "Solid"}`
			req := httptest.NewRequest(http.MethodPost, "/employees/1/feedback", strings.NewReader(payload))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var entry employee.Feedback
			Expect(json.NewDecoder(w.Body).Decode(&entry)).To(Succeed())
			Expect(entry.Reviewer).To(Equal("Pat Manager"))
			Expect(entry.Rating).To(Equal(4))
		})
	})

	Describe("GET /employees/departments", func() {
		It("should list the canonical department pool", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/departments", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				Departments []string `json:"departments"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Departments).To(Equal(employee.Departments))
		})
	})
})
