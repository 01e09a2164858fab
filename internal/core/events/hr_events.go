package events

import (
	"time"

	"github.com/google/uuid"
)

// The dashboard's "writes" are simulations, so these events are the
// only durable-ish trace they leave: an audit subscriber logs them at
// startup.
const (
	EventTypeEmployeeCreated    = "employee.created"
	EventTypeFeedbackSubmitted  = "feedback.submitted"
	EventTypeBookmarkAdded      = "bookmark.added"
	EventTypeBookmarkRemoved    = "bookmark.removed"
	EventTypeBookmarkBulkAction = "bookmarks.bulk_action"
)

type EmployeeCreatedEvent struct {
	BaseEvent
	EmployeeID int64  `json:"employee_id"`
	Department string `json:"department"`
	Rating     int    `json:"rating"`
}

func NewEmployeeCreatedEvent(employeeID int64, department string, rating int) *EmployeeCreatedEvent {
	return &EmployeeCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"department":  department,
				"rating":      rating,
			},
		},
		EmployeeID: employeeID,
		Department: department,
		Rating:     rating,
	}
}

type FeedbackSubmittedEvent struct {
	BaseEvent
	EmployeeID int64 `json:"employee_id"`
	Rating     int   `json:"rating"`
}

func NewFeedbackSubmittedEvent(employeeID int64, rating int) *FeedbackSubmittedEvent {
	return &FeedbackSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeFeedbackSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"rating":      rating,
			},
		},
		EmployeeID: employeeID,
		Rating:     rating,
	}
}

type BookmarkMutatedEvent struct {
	BaseEvent
	EmployeeID int64 `json:"employee_id"`
	Total      int   `json:"total"`
}

func NewBookmarkAddedEvent(employeeID int64, total int) *BookmarkMutatedEvent {
	return newBookmarkMutatedEvent(EventTypeBookmarkAdded, employeeID, total)
}

func NewBookmarkRemovedEvent(employeeID int64, total int) *BookmarkMutatedEvent {
	return newBookmarkMutatedEvent(EventTypeBookmarkRemoved, employeeID, total)
}

func newBookmarkMutatedEvent(eventType string, employeeID int64, total int) *BookmarkMutatedEvent {
	return &BookmarkMutatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"total":       total,
			},
		},
		EmployeeID: employeeID,
		Total:      total,
	}
}

type BookmarkBulkActionEvent struct {
	BaseEvent
	Action      string  `json:"action"`
	EmployeeIDs []int64 `json:"employee_ids"`
}

func NewBookmarkBulkActionEvent(action string, employeeIDs []int64) *BookmarkBulkActionEvent {
	return &BookmarkBulkActionEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeBookmarkBulkAction,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"action":       action,
				"employee_ids": employeeIDs,
			},
		},
		Action:      action,
		EmployeeIDs: employeeIDs,
	}
}
