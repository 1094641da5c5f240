package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendo-app/attendo-backend-go/internal/domain/leave"
)

type fakeLeaveRepository struct {
	requests []leave.LeaveRequest
	read     map[string]bool
}

func (f *fakeLeaveRepository) List(ctx context.Context, from, to *time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if from != nil && r.RequestDate.Before(*from) {
			continue
		}
		if to != nil && r.RequestDate.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeLeaveRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.Status == leave.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	for i, r := range f.requests {
		if r.ID == id {
			f.requests[i].Status = status
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepository) MarkRead(ctx context.Context, id string) error {
	if f.read == nil {
		f.read = make(map[string]bool)
	}
	f.read[id] = true
	return nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seedRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{ID: "l1", EmployeeName: "alice", Status: leave.StatusPending, RequestDate: date("2025-06-10"), StartDate: date("2025-06-12"), EndDate: date("2025-06-14"), Type: "sick"},
		{ID: "l2", EmployeeName: "bob", Status: leave.StatusApproved, RequestDate: date("2025-06-05"), StartDate: date("2025-06-06"), EndDate: date("2025-06-07"), Type: "vacation"},
		{ID: "l3", EmployeeName: "carol", Status: leave.StatusPending, RequestDate: date("2025-05-20"), StartDate: date("2025-05-22"), EndDate: date("2025-05-23"), Type: "personal"},
	}
}

func TestListFiltersByStatusInMemory(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepository{requests: seedRequests()})

	out, err := svc.List(context.Background(), leave.Filter{Status: leave.StatusPending})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, leave.StatusPending, r.Status)
	}
}

func TestListAppliesDateBounds(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepository{requests: seedRequests()})

	out, err := svc.List(context.Background(), leave.Filter{From: "2025-06-01", To: "2025-06-30"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListRejectsBadFilter(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepository{requests: seedRequests()})

	_, err := svc.List(context.Background(), leave.Filter{Status: "cancelled"})
	assert.Error(t, err)
}

func TestUpdateStatusApprovesPending(t *testing.T) {
	repo := &fakeLeaveRepository{requests: seedRequests()}
	svc := NewLeaveService(repo)

	out, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{ID: "l1", Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, out.Status)
	assert.Equal(t, leave.StatusApproved, repo.requests[0].Status)
}

func TestUpdateStatusRejectsProcessedRequest(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepository{requests: seedRequests()})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{ID: "l2", Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepository{requests: seedRequests()})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{ID: "missing", Status: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeLeaveRepository{requests: seedRequests()}
	svc := NewLeaveService(repo)

	require.NoError(t, svc.MarkRead(context.Background(), "l1"))
	assert.True(t, repo.read["l1"])
}
