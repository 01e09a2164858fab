package employee

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hrops/hr-dashboard/internal"
	"github.com/hrops/hr-dashboard/internal/core/events"
	"github.com/hrops/hr-dashboard/internal/directory"
	"github.com/hrops/hr-dashboard/internal/seedrand"
)

// Source is the read-only remote record feed.
type Source interface {
	FetchUsers(ctx context.Context) ([]directory.UserRecord, error)
}

// Publisher is the slice of the event bus the service needs.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service owns the canonical in-memory collection. The fetched base is
// immutable once loaded; simulated writes (created employees, submitted
// feedback) live in an overlay merged into every snapshot, so a late
// or repeated fetch can never clobber them.
type Service struct {
	source     Source
	bus        Publisher
	writeDelay time.Duration
	cacheTTL   time.Duration
	logger     *slog.Logger

	mu        sync.RWMutex
	base      []Employee
	loaded    bool
	fetchedAt time.Time

	created  []Employee            // newest first, prepended to the base
	feedback map[int64][]Feedback  // locally submitted entries per employee

	group singleflight.Group
}

func NewService(source Source, bus Publisher, writeDelay, cacheTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		source:     source,
		bus:        bus,
		writeDelay: writeDelay,
		cacheTTL:   cacheTTL,
		logger:     logger,
		feedback:   make(map[int64][]Feedback),
	}
}

// ensureLoaded fetches the base collection once. Concurrent callers
// share a single in-flight fetch; a failed fetch degrades to an empty
// collection and is not retried until the cache expires (if a TTL is
// configured at all).
func (s *Service) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	fresh := s.loaded && (s.cacheTTL <= 0 || time.Since(s.fetchedAt) < s.cacheTTL)
	s.mu.RUnlock()
	if fresh {
		return
	}

	_, _, _ = s.group.Do("collection", func() (interface{}, error) {
		records, err := s.source.FetchUsers(ctx)
		if err != nil {
			s.logger.Error("failed to fetch employees, serving empty collection", "error", err)
			records = nil
		}

		emps := make([]Employee, 0, len(records))
		for _, rec := range records {
			emps = append(emps, FromRecord(rec))
		}

		s.mu.Lock()
		s.base = emps
		s.loaded = true
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		if err == nil {
			s.logger.Info("employee collection loaded", "count", len(emps))
		}
		return nil, nil
	})
}

// snapshot merges base, local creations and local feedback into the
// collection every downstream consumer reads. Callers own the result.
func (s *Service) snapshot() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Employee, 0, len(s.created)+len(s.base))
	all = append(all, s.created...)
	all = append(all, s.base...)

	for i := range all {
		if extra, ok := s.feedback[all[i].ID]; ok {
			merged := make([]Feedback, 0, len(all[i].Feedback)+len(extra))
			merged = append(merged, all[i].Feedback...)
			merged = append(merged, extra...)
			all[i].Feedback = merged
		}
	}
	return all
}

// All returns the full canonical collection.
func (s *Service) All(ctx context.Context) []Employee {
	s.ensureLoaded(ctx)
	return s.snapshot()
}

// ListResult is one windowed view of the filtered collection.
type ListResult struct {
	Page         Page
	FilteredFrom int // size of the unfiltered collection
}

// List runs the full derived-state pipeline: collection -> filter ->
// paginate. The filter re-evaluates from scratch on every call.
func (s *Service) List(ctx context.Context, q ListQuery) ListResult {
	all := s.All(ctx)

	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	filtered := Filter(all, q.Criteria)
	return ListResult{
		Page:         Paginate(filtered, page, size),
		FilteredFrom: len(all),
	}
}

// GetByID looks one employee up, surfacing a not-found condition for
// unknown identifiers rather than an empty record.
func (s *Service) GetByID(ctx context.Context, id int64) (*Employee, error) {
	for _, emp := range s.All(ctx) {
		if emp.ID == id {
			e := emp
			return &e, nil
		}
	}
	return nil, internal.ErrEmployeeNotFound
}

// Bookmarked resolves a set of identifiers against the collection,
// preserving collection order. Ids without a matching employee are
// skipped (a stale bookmark is not an error).
func (s *Service) Bookmarked(ctx context.Context, ids []int64) []Employee {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var matched []Employee
	for _, emp := range s.All(ctx) {
		if _, ok := want[emp.ID]; ok {
			matched = append(matched, emp)
		}
	}
	return matched
}

// Create simulates a write: after an artificial delay the new employee
// is prepended to the in-memory collection. Nothing is sent anywhere.
// The rating is seeded from the assigned identifier like every fetched
// record, so it survives re-reads the same way.
func (s *Service) Create(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("create employee validation failed", "error", err)
		return nil, err
	}

	if err := s.simulateWrite(ctx); err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	s.mu.Lock()
	id := s.nextIDLocked()

	bio := dto.Bio
	if bio == "" {
		bio = "Experienced professional in " + dto.Department + ". Passionate about innovation and team collaboration."
	}

	emp := Employee{
		ID:        id,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Age:       dto.Age,
		Phone:     dto.Phone,
		Image:     "/placeholder.svg",
		Address: Address{
			Address:    dto.Address,
			City:       dto.City,
			State:      dto.State,
			PostalCode: dto.PostalCode,
			Country:    dto.Country,
		},
		Company: Company{
			Department: dto.Department,
			Name:       defaultCompanyName,
			Title:      dto.Title,
		},
		Rating:   seedrand.Rating(id),
		Bio:      bio,
		Projects: []Project{},
		Feedback: []Feedback{},
	}
	s.created = append([]Employee{emp}, s.created...)
	s.mu.Unlock()

	s.logger.Info("employee created (simulated)",
		"employee_id", emp.ID,
		"department", emp.Company.Department,
		"rating", emp.Rating)
	_ = s.bus.Publish(ctx, events.NewEmployeeCreatedEvent(emp.ID, emp.Company.Department, emp.Rating))

	return &emp, nil
}

// SubmitFeedback simulates a feedback write against one employee. The
// entry is only appended in memory.
func (s *Service) SubmitFeedback(ctx context.Context, id int64, dto SubmitFeedbackDTO) (*Feedback, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("submit feedback validation failed", "employee_id", id, "error", err)
		return nil, err
	}

	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.simulateWrite(ctx); err != nil {
		return nil, err
	}

	entry := Feedback{
		ID:       int64(len(emp.Feedback) + 1),
		Reviewer: dto.Reviewer,
		Rating:   dto.Rating,
		Comment:  dto.Comment,
		Date:     time.Now().Format("2006-01-02"),
	}

	s.mu.Lock()
	s.feedback[id] = append(s.feedback[id], entry)
	s.mu.Unlock()

	s.logger.Info("feedback submitted (simulated)",
		"employee_id", id,
		"rating", entry.Rating)
	_ = s.bus.Publish(ctx, events.NewFeedbackSubmittedEvent(id, entry.Rating))

	return &entry, nil
}

// simulateWrite provides the artificial backend latency of the original
// create flow. Cancelling the request cancels the wait.
func (s *Service) simulateWrite(ctx context.Context) error {
	if s.writeDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.writeDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) nextIDLocked() int64 {
	var maxID int64
	for _, emp := range s.base {
		if emp.ID > maxID {
			maxID = emp.ID
		}
	}
	for _, emp := range s.created {
		if emp.ID > maxID {
			maxID = emp.ID
		}
	}
	return maxID + 1
}
