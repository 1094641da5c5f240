package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepository,
	}
}

// GetAll implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetAll(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holiday.ToResponses(holidays), nil
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req *holiday.HolidayRequest) (*holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing, err := s.HolidayRepository.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if existing != nil {
		return nil, holiday.ErrHolidayExists
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:  req.Name,
		Date:  date,
		Type:  req.Type,
		Notes: req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	resp := holiday.ToResponse(created)
	return &resp, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req *holiday.HolidayRequest) (*holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	current.Name = req.Name
	current.Date = date
	current.Type = req.Type
	current.Notes = req.Notes

	if err := s.HolidayRepository.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}

	resp := holiday.ToResponse(current)
	return &resp, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}
