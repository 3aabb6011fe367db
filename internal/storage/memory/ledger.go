package memory

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"aadhira_hotel/internal/domain"
)

var (
	ErrDuplicateRequest = errors.New("ledger: duplicate request id")
	ErrInvalidRequest   = errors.New("ledger: invalid request")
)

var idPrefix = map[domain.RequestKind]string{
	domain.KindRoomService:  "rs",
	domain.KindHousekeeping: "hk",
	domain.KindMaintenance:  "mt",
}

// Ledger is the append-only, in-memory store of service requests.
// Safe for concurrent use.
type Ledger struct {
	seq atomic.Uint64
	now func() time.Time

	mu   sync.RWMutex
	reqs []domain.ServiceRequest
	ids  map[string]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{now: time.Now, ids: make(map[string]struct{})}
}

// Submit records a new pending request and returns it with its generated id.
func (l *Ledger) Submit(kind domain.RequestKind, description string, priority domain.Priority) domain.ServiceRequest {
	r := domain.ServiceRequest{
		Kind:        kind,
		Description: description,
		Priority:    priority,
		Status:      domain.StatusPending,
		SubmittedAt: l.now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		r.ID = fmt.Sprintf("%s_%d", prefix(kind), l.seq.Add(1))
		if _, taken := l.ids[r.ID]; !taken {
			break
		}
	}
	l.insert(r)
	return r
}

// Append stores a fully-formed request as given, keeping its id and status.
// It is the seam for seeding or restoring a ledger.
func (l *Ledger) Append(r domain.ServiceRequest) error {
	if r.ID == "" || !r.Kind.Valid() {
		return fmt.Errorf("%w: id=%q kind=%q", ErrInvalidRequest, r.ID, r.Kind)
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = l.now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.ids[r.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateRequest, r.ID)
	}
	l.insert(r)
	return nil
}

// All returns a copy of every request in submission order.
func (l *Ledger) All() []domain.ServiceRequest {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.ServiceRequest(nil), l.reqs...)
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.reqs)
}

func (l *Ledger) Summary() domain.RequestSummary {
	var s domain.RequestSummary
	for _, r := range l.All() {
		switch r.Status {
		case domain.StatusPending:
			s.Pending = append(s.Pending, r)
		case domain.StatusInProgress:
			s.InProgress = append(s.InProgress, r)
		case domain.StatusCompleted:
			s.Completed = append(s.Completed, r)
		}
	}
	return s
}

// caller holds mu
func (l *Ledger) insert(r domain.ServiceRequest) {
	l.reqs = append(l.reqs, r)
	l.ids[r.ID] = struct{}{}
}

func prefix(k domain.RequestKind) string {
	if p, ok := idPrefix[k]; ok {
		return p
	}
	return "rq"
}
