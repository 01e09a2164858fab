package bookmark

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hrops/hr-dashboard/internal"
	"github.com/hrops/hr-dashboard/internal/core/events"
	"github.com/hrops/hr-dashboard/internal/employee"
	"github.com/hrops/hr-dashboard/internal/transport"
	"github.com/hrops/hr-dashboard/pkg/logger"
)

// EmployeeResolver maps bookmarked ids back to employee records.
type EmployeeResolver interface {
	GetByID(ctx context.Context, id int64) (*employee.Employee, error)
	Bookmarked(ctx context.Context, ids []int64) []employee.Employee
}

// Publisher is the slice of the event bus the handler needs.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Bulk actions the bookmarks page offers. Both are simulations: they
// log, publish an event and change nothing else.
const (
	ActionPromote       = "promote"
	ActionAssignProject = "assign-project"
)

type Handler struct {
	*transport.BaseHandler
	Store     *Store
	Employees EmployeeResolver
	Bus       Publisher
}

func NewHandler(store *Store, employees EmployeeResolver, bus Publisher) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Store:       store,
		Employees:   employees,
		Bus:         bus,
	}
}

// List handles GET /bookmarks: the raw id set plus the matching
// employee records in collection order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ids := h.Store.All()
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ids":       ids,
		"employees": h.Employees.Bookmarked(r.Context(), ids),
	})
}

// Add handles PUT /bookmarks/{id}. Bookmarking an unknown employee is a
// 404; re-bookmarking an existing one is idempotent.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if _, err := h.Employees.GetByID(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Store.Add(id); err != nil {
		h.HandleServiceError(w, internal.NewInternalError("failed to persist bookmark", err))
		return
	}

	_ = h.Bus.Publish(r.Context(), events.NewBookmarkAddedEvent(id, h.Store.Count()))
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bookmarked": true,
		"total":      h.Store.Count(),
	})
}

// Remove handles DELETE /bookmarks/{id}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Store.Remove(id); err != nil {
		h.HandleServiceError(w, internal.NewInternalError("failed to persist bookmark removal", err))
		return
	}

	_ = h.Bus.Publish(r.Context(), events.NewBookmarkRemovedEvent(id, h.Store.Count()))
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bookmarked": false,
		"total":      h.Store.Count(),
	})
}

type bulkActionDTO struct {
	Action string `json:"action"`
}

// BulkAction handles POST /bookmarks/actions. In a real deployment this
// would fan out to HR systems; here it logs and reports the ids it
// would have touched.
func (h *Handler) BulkAction(w http.ResponseWriter, r *http.Request) {
	var dto bulkActionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("BulkAction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if dto.Action != ActionPromote && dto.Action != ActionAssignProject {
		h.HandleServiceError(w, internal.NewValidationError("unknown bulk action", internal.ErrCodeUnknownAction))
		return
	}

	ids := h.Store.All()
	h.Logger.Info("performing bulk action on bookmarked employees (simulated)",
		"action", dto.Action,
		"employee_ids", ids,
		"requested_by", internal.UserEmailFromContext(r.Context()))
	_ = h.Bus.Publish(r.Context(), events.NewBookmarkBulkActionEvent(dto.Action, ids))

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"action":       dto.Action,
		"employee_ids": ids,
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid bookmark employee ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return 0, false
	}
	return id, true
}
