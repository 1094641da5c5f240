package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if filter.From != "" {
		t, _ := time.Parse("2006-01-02", filter.From)
		from = &t
	}
	if filter.To != "" {
		t, _ := time.Parse("2006-01-02", filter.To)
		to = &t
	}

	requests, err := s.LeaveRequestRepository.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	// Status narrows in memory so one query serves every tab.
	if filter.Status != "" {
		filtered := requests[:0]
		for _, r := range requests {
			if r.Status == filter.Status {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}

	return leave.ToResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	current, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !current.CanTransitionTo(req.Status) {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	current.Status = req.Status
	return leave.ToResponse(current), nil
}

// MarkRead implements leave.LeaveService.
func (s *LeaveServiceImpl) MarkRead(ctx context.Context, id string) error {
	if err := s.LeaveRequestRepository.MarkRead(ctx, id); err != nil {
		return err
	}
	return nil
}
