package ports

import (
	"context"
	"time"
)

// AuditEntry is a validation-failure record shipped to the external log
// sink. Category groups entries by operation, e.g. "users/create".
type AuditEntry struct {
	Category string    `json:"category"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// AuditTrail is the fire-and-forget side used by services. Record never
// blocks and never fails; delivery is best effort.
type AuditTrail interface {
	Record(entry AuditEntry)
}

// AuditSink is the write side consumed by the dispatcher workers.
type AuditSink interface {
	Write(ctx context.Context, entry AuditEntry) error
}
