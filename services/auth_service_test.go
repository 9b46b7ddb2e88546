package services

import (
	"context"
	"strings"
	"testing"

	"github.com/mdowais-techno/team-hub-server/config"
	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/utils"
)

func testAuthConfig() {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	}
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	testAuthConfig()
	users := newFakeUserRepo()
	svc := NewAuthService(fakeTxManager{}, users, stubDepartments())

	out, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jamie",
		Email:    "Jamie@Example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("expected a token")
	}
	if out.User.Email != "jamie@example.com" {
		t.Fatalf("email not normalized: %q", out.User.Email)
	}
	if out.User.Role != models.RoleEmployee {
		t.Fatalf("default role = %q, want %q", out.User.Role, models.RoleEmployee)
	}
	if len(out.User.EmployeeID) == 0 || len(out.User.EmployeeID) > 8 {
		t.Fatalf("employee id %q out of range", out.User.EmployeeID)
	}

	login, err := svc.Login(context.Background(), LoginInput{Email: "jamie@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.LastLogin == nil {
		t.Fatalf("last login not recorded")
	}
}

func TestAuthServiceRegisterConflict(t *testing.T) {
	testAuthConfig()
	users := newFakeUserRepo()
	svc := NewAuthService(fakeTxManager{}, users, stubDepartments())

	in := RegisterInput{Name: "Jamie", Email: "jamie@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), in)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 400 {
		t.Fatalf("expected 400 AppError, got %v", err)
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	testAuthConfig()
	users := newFakeUserRepo()
	svc := NewAuthService(fakeTxManager{}, users, stubDepartments())

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Jamie", Email: "jamie@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "jamie@example.com", Password: "wrong"})
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 401 {
		t.Fatalf("expected 401 AppError, got %v", err)
	}
}

func TestAuthServiceChangePassword(t *testing.T) {
	testAuthConfig()
	users := newFakeUserRepo()
	svc := NewAuthService(fakeTxManager{}, users, stubDepartments())

	out, err := svc.Register(context.Background(), RegisterInput{Name: "Jamie", Email: "jamie@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), out.User.ID, "wrong", "newsecret"); err == nil {
		t.Fatalf("expected error for wrong current password")
	}
	if err := svc.ChangePassword(context.Background(), out.User.ID, "secret123", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	stored := users.users[out.User.ID]
	if !utils.CheckPassword("newsecret", stored.Password) {
		t.Fatalf("new password not persisted")
	}
}

func TestAuthServiceEnsureAdminUserIdempotent(t *testing.T) {
	testAuthConfig()
	users := newFakeUserRepo()
	svc := NewAuthService(fakeTxManager{}, users, stubDepartments())

	if err := svc.EnsureAdminUser(context.Background(), "Admin User", "admin@teamhub.com", "password"); err != nil {
		t.Fatalf("EnsureAdminUser: %v", err)
	}
	if err := svc.EnsureAdminUser(context.Background(), "Admin User", "admin@teamhub.com", "password"); err != nil {
		t.Fatalf("EnsureAdminUser again: %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected one admin user, got %d", len(users.users))
	}
	for _, u := range users.users {
		if u.Role != models.RoleAdmin {
			t.Fatalf("seeded role = %q", u.Role)
		}
	}
}

func TestGenerateEmployeeIDPrefix(t *testing.T) {
	id := generateEmployeeID("Engineering Team")
	if !strings.HasPrefix(id, "ENG") {
		t.Fatalf("id %q should carry the department prefix", id)
	}
	if len(id) != 8 {
		t.Fatalf("id %q should be 8 characters", id)
	}

	generic := generateEmployeeID("")
	if !strings.HasPrefix(generic, "GEN") {
		t.Fatalf("id %q should fall back to the generic prefix", generic)
	}
}
