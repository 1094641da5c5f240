package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// escapeLikePattern neutralizes ILIKE metacharacters so a search term
// matches as a plain substring.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

const employeeColumns = `
	e.id, e.username, e.employee_id, e.device_id, e.telephone, e.job_title,
	e.department, e.branch, e.image, e.timetable_id, e.created_at, e.updated_at,
	t.name AS timetable_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.EmployeeID,
		&e.DeviceID,
		&e.Telephone,
		&e.JobTitle,
		&e.Department,
		&e.Branch,
		&e.Image,
		&e.TimetableID,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.TimetableName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			username, employee_id, device_id, telephone, job_title,
			department, branch, image, timetable_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Username,
		emp.EmployeeID,
		emp.DeviceID,
		emp.Telephone,
		emp.JobTitle,
		emp.Department,
		emp.Branch,
		emp.Image,
		emp.TimetableID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN timetables t ON t.id = e.timetable_id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN timetables t ON t.id = e.timetable_id
		WHERE e.employee_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN timetables t ON t.id = e.timetable_id
	`
	args := []interface{}{}

	if search != "" {
		query += `
		WHERE e.username ILIKE $1 OR e.employee_id ILIKE $1 OR e.device_id ILIKE $1
		   OR e.telephone ILIKE $1 OR e.job_title ILIKE $1 OR e.department ILIKE $1
		   OR e.branch ILIKE $1
		`
		args = append(args, "%"+escapeLikePattern(search)+"%")
	}

	query += ` ORDER BY e.username ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET username = $1, employee_id = $2, device_id = $3, telephone = $4,
			job_title = $5, department = $6, branch = $7, image = $8,
			timetable_id = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		emp.Username,
		emp.EmployeeID,
		emp.DeviceID,
		emp.Telephone,
		emp.JobTitle,
		emp.Department,
		emp.Branch,
		emp.Image,
		emp.TimetableID,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListByTimetable implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByTimetable(ctx context.Context, timetableID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN timetables t ON t.id = e.timetable_id
		WHERE e.timetable_id = $1
		ORDER BY e.username ASC
	`

	rows, err := q.Query(ctx, query, timetableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
