package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"sales-request-system/pkg/constants"
)

// Request is a customer service request moving through the fixed status
// pipeline. DurationDays is derived: recomputed live for open requests and
// frozen once the request is closed.
type Request struct {
	ID                  uint64
	CustomID            string
	CustomerName        string
	Description         string
	ProjectType         string // legacy label, kept for old records
	ServiceType         string
	Status              string
	BoqCost             null.Float64
	RequesterName       null.String
	Department          null.String
	DateRequestReceived time.Time
	TargetDays          null.Int
	SentOutDate         null.Time
	DurationDays        int
	TeamMemberInvolved  string
	Comment             null.String
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsClosed reports whether the request reached the terminal pipeline state.
func (r Request) IsClosed() bool {
	return r.Status == constants.StatusClosed
}

// IsOverdue reports whether the request exceeded its target duration,
// regardless of status: a closed request that overran its target before
// closing stays flagged. Missing or non-positive targets never count.
func (r Request) IsOverdue() bool {
	return r.TargetDays.Valid && r.TargetDays.Int > 0 && r.DurationDays > r.TargetDays.Int
}
