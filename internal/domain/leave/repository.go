package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// List returns requests joined with employee display fields, newest
	// request date first. from/to bound requestDate inclusively when non-zero.
	List(ctx context.Context, from, to *time.Time) ([]LeaveRequest, error)

	ListPending(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	MarkRead(ctx context.Context, id string) error
}
