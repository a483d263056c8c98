package complaint

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

var transitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress, StatusResolved},
	StatusInProgress: {StatusOpen, StatusResolved},
	StatusResolved:   {StatusOpen},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanMoveTo reports whether the workflow allows s -> next. Staying put is always allowed.
func (s Status) CanMoveTo(next Status) bool {
	if s == next {
		return true
	}

	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Complaint is a breakdown or service call logged against a customer site.
type Complaint struct {
	ID          uuid.UUID
	ReferenceID string
	CustomerID  uuid.UUID
	AMCID       *uuid.UUID
	Subject     string
	Description string
	Status      Status
	ReportedOn  time.Time
	ResolvedOn  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
