package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"

	"gorm.io/gorm"
)

type DepartmentInput struct {
	Name           string
	Description    string
	HeadID         *uint
	BudgetAmount   float64
	BudgetCurrency string
	Location       string
	Status         string
}

type DepartmentService interface {
	ListDepartments(ctx context.Context, search string, page, pageSize int) ([]models.Department, int64, error)
	GetDepartment(ctx context.Context, departmentID uint) (models.Department, error)
	CreateDepartment(ctx context.Context, in DepartmentInput) (models.Department, error)
	UpdateDepartment(ctx context.Context, departmentID uint, in DepartmentInput) (models.Department, error)
	DeleteDepartment(ctx context.Context, departmentID uint) error
}

type departmentService struct {
	departments repositories.DepartmentRepository
}

func NewDepartmentService(departments repositories.DepartmentRepository) DepartmentService {
	return &departmentService{departments: departments}
}

func (s *departmentService) ListDepartments(ctx context.Context, search string, page, pageSize int) ([]models.Department, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	total, err := s.departments.Count(ctx, nil, search)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to count departments", err)
	}

	departments, err := s.departments.List(ctx, nil, repositories.ListInput{
		Search: search,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to list departments", err)
	}

	ids := make([]uint, 0, len(departments))
	for _, d := range departments {
		ids = append(ids, d.ID)
	}
	counts, err := s.departments.EmployeeCounts(ctx, nil, ids)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to count department members", err)
	}
	for i := range departments {
		departments[i].EmployeeCount = counts[departments[i].ID]
	}

	return departments, total, nil
}

func (s *departmentService) GetDepartment(ctx context.Context, departmentID uint) (models.Department, error) {
	department, err := s.departments.GetByID(ctx, nil, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Department{}, newAppError(http.StatusNotFound, "department not found", nil)
		}
		return models.Department{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
	}

	counts, err := s.departments.EmployeeCounts(ctx, nil, []uint{department.ID})
	if err != nil {
		return models.Department{}, newAppError(http.StatusInternalServerError, "failed to count department members", err)
	}
	department.EmployeeCount = counts[department.ID]

	return department, nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, in DepartmentInput) (models.Department, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Department{}, newAppError(http.StatusBadRequest, "department name is required", nil)
	}

	count, err := s.departments.CountByName(ctx, nil, name, 0)
	if err != nil {
		return models.Department{}, newAppError(http.StatusInternalServerError, "failed to check department name", err)
	}
	if count > 0 {
		return models.Department{}, newAppError(http.StatusBadRequest, "department already exists with this name", nil)
	}

	department := models.Department{
		Name:           name,
		Description:    in.Description,
		HeadID:         in.HeadID,
		BudgetAmount:   in.BudgetAmount,
		BudgetCurrency: defaultString(in.BudgetCurrency, "USD"),
		Location:       in.Location,
		Status:         defaultString(in.Status, "active"),
	}
	if err := s.departments.Create(ctx, nil, &department); err != nil {
		return models.Department{}, newAppError(http.StatusInternalServerError, "failed to create department", err)
	}
	return department, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID uint, in DepartmentInput) (models.Department, error) {
	if _, err := s.departments.GetByID(ctx, nil, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Department{}, newAppError(http.StatusNotFound, "department not found", nil)
		}
		return models.Department{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(in.Name); name != "" {
		count, err := s.departments.CountByName(ctx, nil, name, departmentID)
		if err != nil {
			return models.Department{}, newAppError(http.StatusInternalServerError, "failed to check department name", err)
		}
		if count > 0 {
			return models.Department{}, newAppError(http.StatusBadRequest, "department already exists with this name", nil)
		}
		updates["name"] = name
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.HeadID != nil {
		updates["head_id"] = *in.HeadID
	}
	if in.BudgetAmount > 0 {
		updates["budget_amount"] = in.BudgetAmount
	}
	if in.BudgetCurrency != "" {
		updates["budget_currency"] = in.BudgetCurrency
	}
	if in.Location != "" {
		updates["location"] = in.Location
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}

	if len(updates) > 0 {
		if err := s.departments.UpdateByID(ctx, nil, departmentID, updates); err != nil {
			return models.Department{}, newAppError(http.StatusInternalServerError, "failed to update department", err)
		}
	}

	return s.GetDepartment(ctx, departmentID)
}

func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID uint) error {
	if _, err := s.departments.GetByID(ctx, nil, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "department not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query department", err)
	}

	counts, err := s.departments.EmployeeCounts(ctx, nil, []uint{departmentID})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to count department members", err)
	}
	if counts[departmentID] > 0 {
		return newAppError(http.StatusBadRequest, "cannot delete department with assigned members", nil)
	}

	if err := s.departments.DeleteByID(ctx, nil, departmentID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete department", err)
	}
	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
