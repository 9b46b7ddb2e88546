package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"
	"github.com/mdowais-techno/team-hub-server/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	DepartmentID *uint
	JobProfileID *uint
	JobTitle     string
	StartDate    *time.Time
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (LoginOutput, error)
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
	GetProfile(ctx context.Context, userID uint) (models.User, error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (models.User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	EnsureAdminUser(ctx context.Context, name, email, password string) error
}

type authService struct {
	txManager   TxManager
	users       repositories.UserRepository
	departments repositories.DepartmentRepository
}

func NewAuthService(txManager TxManager, users repositories.UserRepository, departments repositories.DepartmentRepository) AuthService {
	return &authService{txManager: txManager, users: users, departments: departments}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (LoginOutput, error) {
	count, err := s.users.CountByEmail(ctx, in.Email)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to check email", err)
	}
	if count > 0 {
		return LoginOutput{}, newAppError(http.StatusBadRequest, "user already exists with this email", nil)
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to hash password", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleEmployee
	}

	departmentName := ""
	if in.DepartmentID != nil {
		department, err := s.departments.GetByID(ctx, nil, *in.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return LoginOutput{}, newAppError(http.StatusNotFound, "department not found", nil)
			}
			return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
		}
		departmentName = department.Name
	}

	user := models.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Password:     hashedPassword,
		Role:         role,
		DepartmentID: in.DepartmentID,
		JobProfileID: in.JobProfileID,
		JobTitle:     in.JobTitle,
		EmployeeID:   generateEmployeeID(departmentName),
		StartDate:    in.StartDate,
	}
	if err := s.users.Create(ctx, nil, &user); err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to create user", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.DepartmentID, user.JobProfileID)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to generate token", err)
	}

	return LoginOutput{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, nil, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginOutput{}, newAppError(http.StatusUnauthorized, "invalid credentials", nil)
		}
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	if !utils.CheckPassword(in.Password, user.Password) {
		return LoginOutput{}, newAppError(http.StatusUnauthorized, "invalid credentials", nil)
	}

	now := time.Now()
	if err := s.users.UpdateByID(ctx, nil, user.ID, map[string]interface{}{"last_login": now}); err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to update last login", err)
	}
	user.LastLogin = &now

	token, err := utils.GenerateToken(user.ID, user.Role, user.DepartmentID, user.JobProfileID)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "failed to generate token", err)
	}

	return LoginOutput{Token: token, User: user}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (models.User, error) {
	user, err := s.users.GetByID(ctx, nil, userID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (models.User, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}

	if len(updates) > 0 {
		if err := s.users.UpdateByID(ctx, nil, userID, updates); err != nil {
			return models.User{}, newAppError(http.StatusInternalServerError, "failed to update profile", err)
		}
	}

	return s.GetProfile(ctx, userID)
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return newAppError(http.StatusBadRequest, "new password must be at least 6 characters long", nil)
	}

	user, err := s.users.GetByID(ctx, nil, userID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "user not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query user", err)
	}

	if !utils.CheckPassword(currentPassword, user.Password) {
		return newAppError(http.StatusBadRequest, "current password is incorrect", nil)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to hash password", err)
	}

	if err := s.users.UpdateByID(ctx, nil, userID, map[string]interface{}{"password": hashed}); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to change password", err)
	}
	return nil
}

// EnsureAdminUser seeds the default admin account on startup when absent.
func (s *authService) EnsureAdminUser(ctx context.Context, name, email, password string) error {
	count, err := s.users.CountByEmail(ctx, email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:            name,
		Email:           email,
		Password:        hashed,
		Role:            models.RoleAdmin,
		Status:          "active",
		EmployeeID:      generateEmployeeID(""),
		IsEmailVerified: true,
	}
	return s.users.Create(ctx, nil, &admin)
}

// generateEmployeeID builds an 8-character ID from the department name's
// first word (letters only, max 3) plus a random 5-digit suffix.
func generateEmployeeID(departmentName string) string {
	prefix := "GEN"
	if departmentName != "" {
		first := strings.Fields(departmentName)[0]
		var letters []rune
		for _, r := range strings.ToUpper(first) {
			if unicode.IsLetter(r) && r < 128 {
				letters = append(letters, r)
			}
			if len(letters) == 3 {
				break
			}
		}
		if len(letters) > 0 {
			prefix = string(letters)
		}
	}

	id := fmt.Sprintf("%s%05d", prefix, 10000+rand.Intn(90000))
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
