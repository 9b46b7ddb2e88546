package services

import (
	"context"
	"testing"

	"github.com/mdowais-techno/team-hub-server/models"
)

func TestCreateJobProfileRejectsInvertedSalaryRange(t *testing.T) {
	departments := stubDepartments()
	department := models.Department{Name: "Engineering", Status: "active"}
	if err := departments.Create(context.Background(), nil, &department); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	svc := NewJobProfileService(stubJobProfiles(), departments)

	_, err := svc.CreateJobProfile(context.Background(), 1, JobProfileInput{
		Title:        "Backend Engineer",
		Description:  "Builds services",
		DepartmentID: department.ID,
		SalaryMin:    90000,
		SalaryMax:    60000,
	})
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 400 {
		t.Fatalf("expected 400 AppError, got %v", err)
	}
	rng, ok := appErr.Data.(salaryRange)
	if !ok {
		t.Fatalf("expected salary range data, got %#v", appErr.Data)
	}
	if rng.Min != 90000 || rng.Max != 60000 {
		t.Fatalf("unexpected range data: %+v", rng)
	}
}

func TestCreateJobProfileAppliesDefaults(t *testing.T) {
	departments := stubDepartments()
	department := models.Department{Name: "Engineering", Status: "active"}
	if err := departments.Create(context.Background(), nil, &department); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	svc := NewJobProfileService(stubJobProfiles(), departments)

	profile, err := svc.CreateJobProfile(context.Background(), 1, JobProfileInput{
		Title:        "Backend Engineer",
		Description:  "Builds services",
		DepartmentID: department.ID,
		SalaryMin:    60000,
		SalaryMax:    90000,
	})
	if err != nil {
		t.Fatalf("CreateJobProfile: %v", err)
	}
	if profile.SalaryCurrency != "USD" || profile.EmploymentType != "full-time" || profile.Positions != 1 {
		t.Fatalf("defaults not applied: %+v", profile)
	}
}
