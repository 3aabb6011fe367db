package domain

import "time"

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnacks    Category = "snacks"
	CategoryBeverages Category = "beverages"
)

// Categories in menu display order.
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks, CategoryBeverages}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// ServiceItem is an immutable room-service menu entry.
type ServiceItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Available   bool     `json:"available"`
}

type RequestKind string

const (
	KindRoomService  RequestKind = "room-service"
	KindHousekeeping RequestKind = "housekeeping"
	KindMaintenance  RequestKind = "maintenance"
)

func (k RequestKind) Valid() bool {
	switch k {
	case KindRoomService, KindHousekeeping, KindMaintenance:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type ServiceRequest struct {
	ID          string      `json:"id"`
	Kind        RequestKind `json:"kind"`
	Description string      `json:"description"`
	Priority    Priority    `json:"priority"`
	Status      Status      `json:"status"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// RequestSummary partitions a ledger snapshot by status, each in submission order.
type RequestSummary struct {
	Pending    []ServiceRequest `json:"pending"`
	InProgress []ServiceRequest `json:"in_progress"`
	Completed  []ServiceRequest `json:"completed"`
}

func (s RequestSummary) Total() int { return len(s.Pending) + len(s.InProgress) + len(s.Completed) }
