package leave

import "context"

type LeaveService interface {
	// List applies the status/date-range filter and returns matching requests.
	List(ctx context.Context, filter Filter) ([]LeaveRequestResponse, error)

	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)

	// UpdateStatus applies a pending→approved or pending→rejected transition.
	// Any other transition fails with ErrAlreadyProcessed.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)

	MarkRead(ctx context.Context, id string) error
}
