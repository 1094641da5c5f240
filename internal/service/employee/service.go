package employee

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/storage"
	"github.com/attendo-app/attendo-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	storage storage.FileStorage
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, fileStorage storage.FileStorage) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		storage:            fileStorage,
	}
}

func (s *EmployeeServiceImpl) uploadPhoto(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*string, error) {
	if file == nil || header == nil {
		return nil, nil
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("employees/%s%s", uuid.NewString(), ext)

	stored, err := s.storage.Upload(ctx, file, path, header.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to upload employee photo: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photo url: %w", err)
	}

	return &url, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.ToResponses(employees), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	image, err := s.uploadPhoto(ctx, req.File, req.FileHeader)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.EmployeeRepository.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to check employee ID: %w", err)
		}
		if existing != nil {
			return employee.ErrEmployeeCodeExists
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			Username:    req.Username,
			EmployeeID:  req.EmployeeID,
			DeviceID:    req.DeviceID,
			Telephone:   req.Telephone,
			JobTitle:    req.JobTitle,
			Department:  req.Department,
			Branch:      req.Branch,
			Image:       image,
			TimetableID: req.TimetableID,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Username != nil {
		current.Username = *req.Username
	}
	if req.EmployeeID != nil && *req.EmployeeID != current.EmployeeID {
		existing, err := s.EmployeeRepository.GetByEmployeeID(ctx, *req.EmployeeID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee ID: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		current.EmployeeID = *req.EmployeeID
	}
	if req.DeviceID != nil {
		current.DeviceID = *req.DeviceID
	}
	if req.Telephone != nil {
		current.Telephone = *req.Telephone
	}
	if req.JobTitle != nil {
		current.JobTitle = *req.JobTitle
	}
	if req.Department != nil {
		current.Department = *req.Department
	}
	if req.Branch != nil {
		current.Branch = *req.Branch
	}
	if req.TimetableID != nil {
		if *req.TimetableID == "" {
			current.TimetableID = nil
		} else {
			current.TimetableID = req.TimetableID
		}
	}

	if req.File != nil && req.FileHeader != nil {
		image, err := s.uploadPhoto(ctx, req.File, req.FileHeader)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		current.Image = image
	}

	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(current), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
