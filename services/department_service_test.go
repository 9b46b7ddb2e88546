package services

import (
	"context"
	"testing"
)

func TestDepartmentServiceCreateRejectsDuplicateName(t *testing.T) {
	svc := NewDepartmentService(stubDepartments())

	if _, err := svc.CreateDepartment(context.Background(), DepartmentInput{Name: "Engineering"}); err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	_, err := svc.CreateDepartment(context.Background(), DepartmentInput{Name: "Engineering"})
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 400 {
		t.Fatalf("expected 400 AppError, got %v", err)
	}
}

func TestDepartmentServiceCreateAppliesDefaults(t *testing.T) {
	svc := NewDepartmentService(stubDepartments())

	department, err := svc.CreateDepartment(context.Background(), DepartmentInput{Name: "Sales"})
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if department.BudgetCurrency != "USD" || department.Status != "active" {
		t.Fatalf("defaults not applied: %+v", department)
	}
}

func TestDepartmentServiceDeleteMissing(t *testing.T) {
	svc := NewDepartmentService(stubDepartments())

	err := svc.DeleteDepartment(context.Background(), 42)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}
