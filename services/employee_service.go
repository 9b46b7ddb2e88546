package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"
	"github.com/mdowais-techno/team-hub-server/utils"

	"gorm.io/gorm"
)

type EmployeeInput struct {
	FullName     string
	Email        string
	Password     string
	DepartmentID uint
	JobProfileID uint
	JobTitle     string
	StartDate    *time.Time
	Status       string
	Phone        string
	Role         string
}

type ListEmployeesInput struct {
	DepartmentID *uint
	Status       string
	Search       string
	Page         int
	PageSize     int
}

type EmployeeStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	Active     int64            `json:"active"`
	Onboarding int64            `json:"onboarding"`
	OnLeave    int64            `json:"on_leave"`
}

type EmployeeService interface {
	ListEmployees(ctx context.Context, in ListEmployeesInput) ([]models.Employee, int64, error)
	GetEmployee(ctx context.Context, employeeID uint) (models.Employee, error)
	CreateEmployee(ctx context.Context, in EmployeeInput) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID uint, in EmployeeInput) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID uint) error
	GetEmployeeStats(ctx context.Context) (EmployeeStats, error)
}

type employeeService struct {
	employees   repositories.EmployeeRepository
	departments repositories.DepartmentRepository
	profiles    repositories.JobProfileRepository
}

func NewEmployeeService(employees repositories.EmployeeRepository, departments repositories.DepartmentRepository, profiles repositories.JobProfileRepository) EmployeeService {
	return &employeeService{employees: employees, departments: departments, profiles: profiles}
}

func (s *employeeService) ListEmployees(ctx context.Context, in ListEmployeesInput) ([]models.Employee, int64, error) {
	page, pageSize := normalizePage(in.Page, in.PageSize)
	filter := repositories.ListEmployeesInput{
		DepartmentID: in.DepartmentID,
		Status:       in.Status,
		Search:       in.Search,
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	}

	total, err := s.employees.Count(ctx, nil, filter)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to count employees", err)
	}

	employees, err := s.employees.List(ctx, nil, filter)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to list employees", err)
	}

	return employees, total, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID uint) (models.Employee, error) {
	employee, err := s.employees.GetByID(ctx, nil, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, newAppError(http.StatusNotFound, "employee not found", nil)
		}
		return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to query employee", err)
	}
	return employee, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, in EmployeeInput) (models.Employee, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return models.Employee{}, newAppError(http.StatusBadRequest, "full name is required", nil)
	}
	if in.StartDate == nil {
		return models.Employee{}, newAppError(http.StatusBadRequest, "start date is required", nil)
	}
	if len(in.Password) < 6 {
		return models.Employee{}, newAppError(http.StatusBadRequest, "password must be at least 6 characters long", nil)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	count, err := s.employees.CountByEmail(ctx, nil, email, 0)
	if err != nil {
		return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to check email", err)
	}
	if count > 0 {
		return models.Employee{}, newAppError(http.StatusBadRequest, "employee already exists with this email", nil)
	}

	department, err := s.departments.GetByID(ctx, nil, in.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, newAppError(http.StatusNotFound, "department not found", nil)
		}
		return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
	}

	if _, err := s.profiles.GetByID(ctx, nil, in.JobProfileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, newAppError(http.StatusNotFound, "job profile not found", nil)
		}
		return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to query job profile", err)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to hash password", err)
	}

	employee := models.Employee{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		Password:     hashed,
		DepartmentID: in.DepartmentID,
		JobProfileID: in.JobProfileID,
		JobTitle:     in.JobTitle,
		StartDate:    *in.StartDate,
		Status:       defaultString(in.Status, "Active"),
		EmployeeID:   generateEmployeeID(department.Name),
		Phone:        in.Phone,
		Role:         defaultString(in.Role, models.RoleEmployee),
	}
	if err := s.employees.Create(ctx, nil, &employee); err != nil {
		return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to create employee", err)
	}
	return s.GetEmployee(ctx, employee.ID)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID uint, in EmployeeInput) (models.Employee, error) {
	if _, err := s.GetEmployee(ctx, employeeID); err != nil {
		return models.Employee{}, err
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(in.FullName); name != "" {
		updates["full_name"] = name
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		count, err := s.employees.CountByEmail(ctx, nil, email, employeeID)
		if err != nil {
			return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to check email", err)
		}
		if count > 0 {
			return models.Employee{}, newAppError(http.StatusBadRequest, "employee already exists with this email", nil)
		}
		updates["email"] = email
	}
	if in.DepartmentID != 0 {
		if _, err := s.departments.GetByID(ctx, nil, in.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Employee{}, newAppError(http.StatusNotFound, "department not found", nil)
			}
			return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
		}
		updates["department_id"] = in.DepartmentID
	}
	if in.JobProfileID != 0 {
		updates["job_profile_id"] = in.JobProfileID
	}
	if in.JobTitle != "" {
		updates["job_title"] = in.JobTitle
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}
	if in.Phone != "" {
		updates["phone"] = in.Phone
	}
	if in.Role != "" {
		updates["role"] = in.Role
	}

	if len(updates) > 0 {
		if err := s.employees.UpdateByID(ctx, nil, employeeID, updates); err != nil {
			return models.Employee{}, newAppError(http.StatusInternalServerError, "failed to update employee", err)
		}
	}

	return s.GetEmployee(ctx, employeeID)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID uint) error {
	if _, err := s.GetEmployee(ctx, employeeID); err != nil {
		return err
	}
	if err := s.employees.DeleteByID(ctx, nil, employeeID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete employee", err)
	}
	return nil
}

func (s *employeeService) GetEmployeeStats(ctx context.Context) (EmployeeStats, error) {
	byStatus, err := s.employees.CountByStatus(ctx, nil)
	if err != nil {
		return EmployeeStats{}, newAppError(http.StatusInternalServerError, "failed to count employees", err)
	}

	stats := EmployeeStats{ByStatus: byStatus}
	for status, count := range byStatus {
		stats.Total += count
		switch status {
		case "Active":
			stats.Active = count
		case "Onboarding":
			stats.Onboarding = count
		case "On Leave":
			stats.OnLeave = count
		}
	}
	return stats, nil
}
