package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// RequestLog is one append-only activity record: who changed which field of
// which request, with the old and new values as text. Rows are never updated
// or deleted.
type RequestLog struct {
	ID        uint64
	RequestID uint64
	UserID    uint64
	UserName  string
	Action    string
	FieldName null.String
	OldValue  null.String
	NewValue  null.String
	Timestamp time.Time

	// CustomerName is joined in for report activity listings.
	CustomerName string
}
