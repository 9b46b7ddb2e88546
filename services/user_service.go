package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"

	"gorm.io/gorm"
)

type ListUsersInput struct {
	DepartmentID *uint
	Role         string
	Status       string
	Search       string
	Page         int
	PageSize     int
}

type UserService interface {
	ListUsers(ctx context.Context, in ListUsersInput) ([]models.User, int64, error)
	GetUser(ctx context.Context, userID uint) (models.User, error)
	UpdateUserRole(ctx context.Context, userID uint, role string) (models.User, error)
	SetUserStatus(ctx context.Context, userID uint, status string) (models.User, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context, in ListUsersInput) ([]models.User, int64, error) {
	page, pageSize := normalizePage(in.Page, in.PageSize)
	users, total, err := s.users.List(ctx, nil, repositories.ListUsersInput{
		DepartmentID: in.DepartmentID,
		Role:         in.Role,
		Status:       in.Status,
		Search:       in.Search,
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	})
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to list users", err)
	}
	return users, total, nil
}

func (s *userService) GetUser(ctx context.Context, userID uint) (models.User, error) {
	user, err := s.users.GetByID(ctx, nil, userID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}
	return user, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, userID uint, role string) (models.User, error) {
	switch role {
	case models.RoleAdmin, models.RoleHR, models.RoleManager, models.RoleEmployee:
	default:
		return models.User{}, newAppError(http.StatusBadRequest, "invalid role", nil)
	}

	if err := s.users.UpdateByID(ctx, nil, userID, map[string]interface{}{"role": role}); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update role", err)
	}
	return s.GetUser(ctx, userID)
}

func (s *userService) SetUserStatus(ctx context.Context, userID uint, status string) (models.User, error) {
	if status != "active" && status != "inactive" {
		return models.User{}, newAppError(http.StatusBadRequest, "invalid status", nil)
	}

	if err := s.users.UpdateByID(ctx, nil, userID, map[string]interface{}{"status": status}); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update status", err)
	}
	return s.GetUser(ctx, userID)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
