package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepository,
	}
}

// GetAll implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) GetAll(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.AnnouncementRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcement.ToResponses(announcements), nil
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req *announcement.AnnouncementRequest) (*announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	resp := announcement.ToResponse(created)
	return &resp, nil
}

// Update implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, req *announcement.AnnouncementRequest) (*announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.AnnouncementRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	current.Title = req.Title
	current.Description = req.Description
	current.Date = date

	if err := s.AnnouncementRepository.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	resp := announcement.ToResponse(current)
	return &resp, nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AnnouncementRepository.Delete(ctx, id)
}
