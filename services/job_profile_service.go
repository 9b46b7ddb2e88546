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

type JobProfileInput struct {
	Title            string
	Description      string
	DepartmentID     uint
	Responsibilities []string
	Requirements     []string
	Skills           []string
	Positions        int
	ExperienceLevel  string
	SalaryMin        float64
	SalaryMax        float64
	SalaryCurrency   string
	EmploymentType   string
	Location         string
	IsActive         *bool
}

// salaryRange rides on salary validation errors so the client can show
// the rejected bounds.
type salaryRange struct {
	Min float64 `json:"salary_min"`
	Max float64 `json:"salary_max"`
}

type JobProfileService interface {
	ListJobProfiles(ctx context.Context, search string, page, pageSize int) ([]models.JobProfile, int64, error)
	GetJobProfile(ctx context.Context, jobProfileID uint) (models.JobProfile, error)
	CreateJobProfile(ctx context.Context, createdByID uint, in JobProfileInput) (models.JobProfile, error)
	UpdateJobProfile(ctx context.Context, jobProfileID uint, in JobProfileInput) (models.JobProfile, error)
	DeleteJobProfile(ctx context.Context, jobProfileID uint) error
}

type jobProfileService struct {
	profiles    repositories.JobProfileRepository
	departments repositories.DepartmentRepository
}

func NewJobProfileService(profiles repositories.JobProfileRepository, departments repositories.DepartmentRepository) JobProfileService {
	return &jobProfileService{profiles: profiles, departments: departments}
}

func (s *jobProfileService) ListJobProfiles(ctx context.Context, search string, page, pageSize int) ([]models.JobProfile, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	total, err := s.profiles.Count(ctx, nil, search)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to count job profiles", err)
	}

	profiles, err := s.profiles.List(ctx, nil, repositories.ListInput{
		Search: search,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to list job profiles", err)
	}

	return profiles, total, nil
}

func (s *jobProfileService) GetJobProfile(ctx context.Context, jobProfileID uint) (models.JobProfile, error) {
	profile, err := s.profiles.GetByID(ctx, nil, jobProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.JobProfile{}, newAppError(http.StatusNotFound, "job profile not found", nil)
		}
		return models.JobProfile{}, newAppError(http.StatusInternalServerError, "failed to query job profile", err)
	}
	return profile, nil
}

func (s *jobProfileService) CreateJobProfile(ctx context.Context, createdByID uint, in JobProfileInput) (models.JobProfile, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return models.JobProfile{}, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	positions := in.Positions
	if positions < 1 {
		positions = 1
	}

	profile := models.JobProfile{
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		DepartmentID:     in.DepartmentID,
		Responsibilities: in.Responsibilities,
		Requirements:     in.Requirements,
		Skills:           in.Skills,
		Positions:        positions,
		ExperienceLevel:  defaultString(in.ExperienceLevel, "entry"),
		SalaryMin:        in.SalaryMin,
		SalaryMax:        in.SalaryMax,
		SalaryCurrency:   defaultString(in.SalaryCurrency, "USD"),
		EmploymentType:   defaultString(in.EmploymentType, "full-time"),
		Location:         defaultString(in.Location, "on-site"),
		IsActive:         isActive,
		CreatedByID:      createdByID,
	}
	if err := s.profiles.Create(ctx, nil, &profile); err != nil {
		return models.JobProfile{}, newAppError(http.StatusInternalServerError, "failed to create job profile", err)
	}
	return profile, nil
}

func (s *jobProfileService) UpdateJobProfile(ctx context.Context, jobProfileID uint, in JobProfileInput) (models.JobProfile, error) {
	profile, err := s.GetJobProfile(ctx, jobProfileID)
	if err != nil {
		return models.JobProfile{}, err
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		profile.Title = title
	}
	if in.Description != "" {
		profile.Description = in.Description
	}
	if in.DepartmentID != 0 {
		profile.DepartmentID = in.DepartmentID
	}
	if in.Responsibilities != nil {
		profile.Responsibilities = in.Responsibilities
	}
	if in.Requirements != nil {
		profile.Requirements = in.Requirements
	}
	if in.Skills != nil {
		profile.Skills = in.Skills
	}
	if in.Positions > 0 {
		profile.Positions = in.Positions
	}
	if in.ExperienceLevel != "" {
		profile.ExperienceLevel = in.ExperienceLevel
	}
	if in.SalaryMin > 0 {
		profile.SalaryMin = in.SalaryMin
	}
	if in.SalaryMax > 0 {
		profile.SalaryMax = in.SalaryMax
	}
	if in.SalaryCurrency != "" {
		profile.SalaryCurrency = in.SalaryCurrency
	}
	if in.EmploymentType != "" {
		profile.EmploymentType = in.EmploymentType
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.IsActive != nil {
		profile.IsActive = *in.IsActive
	}

	if profile.SalaryMin > profile.SalaryMax && profile.SalaryMax > 0 {
		return models.JobProfile{}, newAppErrorWithData(http.StatusBadRequest, "minimum salary cannot exceed maximum salary",
			salaryRange{Min: profile.SalaryMin, Max: profile.SalaryMax}, nil)
	}

	profile.Department = nil
	profile.CreatedBy = nil
	if err := s.profiles.Save(ctx, nil, &profile); err != nil {
		return models.JobProfile{}, newAppError(http.StatusInternalServerError, "failed to update job profile", err)
	}
	return s.GetJobProfile(ctx, jobProfileID)
}

func (s *jobProfileService) DeleteJobProfile(ctx context.Context, jobProfileID uint) error {
	if _, err := s.GetJobProfile(ctx, jobProfileID); err != nil {
		return err
	}
	if err := s.profiles.DeleteByID(ctx, nil, jobProfileID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete job profile", err)
	}
	return nil
}

func (s *jobProfileService) validateInput(ctx context.Context, in JobProfileInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return newAppError(http.StatusBadRequest, "job title is required", nil)
	}
	if strings.TrimSpace(in.Description) == "" {
		return newAppError(http.StatusBadRequest, "job description is required", nil)
	}
	if in.DepartmentID == 0 {
		return newAppError(http.StatusBadRequest, "department is required", nil)
	}
	if in.SalaryMin > in.SalaryMax && in.SalaryMax > 0 {
		return newAppErrorWithData(http.StatusBadRequest, "minimum salary cannot exceed maximum salary",
			salaryRange{Min: in.SalaryMin, Max: in.SalaryMax}, nil)
	}

	if _, err := s.departments.GetByID(ctx, nil, in.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "department not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query department", err)
	}
	return nil
}
