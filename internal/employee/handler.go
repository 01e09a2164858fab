package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"

	"github.com/hrops/hr-dashboard/internal/transport"
	"github.com/hrops/hr-dashboard/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// List handles GET /employees with search/filter/pagination query
// parameters. Unparseable values fall back to defaults rather than
// erroring; an out-of-range page just comes back empty.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := parseListQuery(r)
	result := h.Service.List(r.Context(), query)

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employees":     result.Page.Items,
		"page":          query.Page,
		"page_size":     query.PageSize,
		"total_items":   result.Page.TotalItems,
		"total_pages":   result.Page.TotalPages,
		"filtered_from": result.FilteredFrom,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("Get: invalid employee ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	emp, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Create: employee created",
		"employee_id", emp.ID,
		"department", emp.Company.Department)
	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("SubmitFeedback: invalid employee ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	var dto SubmitFeedbackDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitFeedback: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.SubmitFeedback(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, entry)
}

// ListDepartments handles GET /employees/departments. The pool is
// static; the filter panel and the create form both render it.
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"departments": Departments,
	})
}

func parseListQuery(r *http.Request) ListQuery {
	q := ListQuery{
		Page:     1,
		PageSize: DefaultPageSize,
	}

	vals := r.URL.Query()
	q.Criteria.SearchText = vals.Get("search")

	if deps := vals.Get("departments"); deps != "" {
		for _, d := range strings.Split(deps, ",") {
			if d = strings.TrimSpace(d); d != "" {
				q.Criteria.Departments = append(q.Criteria.Departments, d)
			}
		}
	}

	if ratings := vals.Get("ratings"); ratings != "" {
		for _, rs := range strings.Split(ratings, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(rs)); err == nil && n >= 1 && n <= 5 {
				q.Criteria.Ratings = append(q.Criteria.Ratings, n)
			}
		}
	}

	if pageStr := vals.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			q.Page = p
		}
	}

	if sizeStr := vals.Get("page_size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && IsAllowedPageSize(s) {
			q.PageSize = s
		}
	}

	return q
}
