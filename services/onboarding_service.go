package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"

	"gorm.io/gorm"
)

type OnboardingTaskInput struct {
	Title       string
	Description string
	MentorID    *uint
	Status      string
}

type OnboardingInput struct {
	Name         string
	Position     string
	StartDate    *time.Time
	DepartmentID uint
	Description  string
	Avatar       string
	Tasks        []OnboardingTaskInput
	TemplateID   *uint
}

type OnboardingService interface {
	ListOnboardings(ctx context.Context, search string, page, pageSize int) ([]models.Onboarding, int64, error)
	GetOnboarding(ctx context.Context, onboardingID uint) (models.Onboarding, error)
	CreateOnboarding(ctx context.Context, createdByID uint, in OnboardingInput) (models.Onboarding, error)
	UpdateOnboarding(ctx context.Context, onboardingID uint, in OnboardingInput) (models.Onboarding, error)
	UpdateTaskStatus(ctx context.Context, onboardingID, taskID uint, status string) (models.Onboarding, error)
	DeleteOnboarding(ctx context.Context, onboardingID uint) error
}

type onboardingService struct {
	txManager   TxManager
	onboardings repositories.OnboardingRepository
	templates   repositories.OnboardingTemplateRepository
	departments repositories.DepartmentRepository
}

func NewOnboardingService(txManager TxManager, onboardings repositories.OnboardingRepository, templates repositories.OnboardingTemplateRepository, departments repositories.DepartmentRepository) OnboardingService {
	return &onboardingService{
		txManager:   txManager,
		onboardings: onboardings,
		templates:   templates,
		departments: departments,
	}
}

func (s *onboardingService) ListOnboardings(ctx context.Context, search string, page, pageSize int) ([]models.Onboarding, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	total, err := s.onboardings.Count(ctx, nil, search)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to count onboardings", err)
	}

	onboardings, err := s.onboardings.List(ctx, nil, repositories.ListInput{
		Search: search,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to list onboardings", err)
	}
	return onboardings, total, nil
}

func (s *onboardingService) GetOnboarding(ctx context.Context, onboardingID uint) (models.Onboarding, error) {
	onboarding, err := s.onboardings.GetByID(ctx, nil, onboardingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Onboarding{}, newAppError(http.StatusNotFound, "onboarding not found", nil)
		}
		return models.Onboarding{}, newAppError(http.StatusInternalServerError, "failed to query onboarding", err)
	}
	return onboarding, nil
}

func (s *onboardingService) CreateOnboarding(ctx context.Context, createdByID uint, in OnboardingInput) (models.Onboarding, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Onboarding{}, newAppError(http.StatusBadRequest, "name is required", nil)
	}
	if in.StartDate == nil {
		return models.Onboarding{}, newAppError(http.StatusBadRequest, "start date is required", nil)
	}
	if _, err := s.departments.GetByID(ctx, nil, in.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Onboarding{}, newAppError(http.StatusNotFound, "department not found", nil)
		}
		return models.Onboarding{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
	}

	tasks := make([]models.OnboardingTask, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		tasks = append(tasks, models.OnboardingTask{
			Title:       t.Title,
			Description: t.Description,
			MentorID:    t.MentorID,
			Status:      defaultString(t.Status, models.TaskStatusPending),
		})
	}

	// Seed tasks from a template when one is given and no explicit tasks are.
	if in.TemplateID != nil && len(tasks) == 0 {
		template, err := s.templates.GetByID(ctx, nil, *in.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Onboarding{}, newAppError(http.StatusNotFound, "template not found", nil)
			}
			return models.Onboarding{}, newAppError(http.StatusInternalServerError, "failed to query template", err)
		}
		for _, t := range template.Tasks {
			tasks = append(tasks, models.OnboardingTask{
				Title:       t.Title,
				Description: t.Description,
				MentorID:    t.MentorID,
				Status:      models.TaskStatusPending,
			})
		}
	}

	onboarding := models.Onboarding{
		Name:         strings.TrimSpace(in.Name),
		Position:     in.Position,
		StartDate:    *in.StartDate,
		DepartmentID: in.DepartmentID,
		Description:  in.Description,
		Avatar:       in.Avatar,
		Tasks:        tasks,
		CreatedByID:  createdByID,
	}
	if err := s.onboardings.Create(ctx, nil, &onboarding); err != nil {
		return models.Onboarding{}, newAppError(http.StatusInternalServerError, "failed to create onboarding", err)
	}
	return s.GetOnboarding(ctx, onboarding.ID)
}

func (s *onboardingService) UpdateOnboarding(ctx context.Context, onboardingID uint, in OnboardingInput) (models.Onboarding, error) {
	onboarding, err := s.GetOnboarding(ctx, onboardingID)
	if err != nil {
		return models.Onboarding{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		onboarding.Name = name
	}
	if in.Position != "" {
		onboarding.Position = in.Position
	}
	if in.StartDate != nil {
		onboarding.StartDate = *in.StartDate
	}
	if in.DepartmentID != 0 {
		onboarding.DepartmentID = in.DepartmentID
	}
	if in.Description != "" {
		onboarding.Description = in.Description
	}
	if in.Avatar != "" {
		onboarding.Avatar = in.Avatar
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if in.Tasks != nil {
			tasks := make([]models.OnboardingTask, 0, len(in.Tasks))
			for _, t := range in.Tasks {
				tasks = append(tasks, models.OnboardingTask{
					OnboardingID: onboardingID,
					Title:        t.Title,
					Description:  t.Description,
					MentorID:     t.MentorID,
					Status:       defaultString(t.Status, models.TaskStatusPending),
				})
			}
			if err := s.onboardings.ReplaceTasks(ctx, tx, onboardingID, tasks); err != nil {
				return err
			}
		}
		onboarding.Tasks = nil
		onboarding.Department = nil
		onboarding.CreatedBy = nil
		return s.onboardings.Save(ctx, tx, &onboarding)
	})
	if err != nil {
		return models.Onboarding{}, newAppError(http.StatusInternalServerError, "failed to update onboarding", err)
	}

	return s.GetOnboarding(ctx, onboardingID)
}

func (s *onboardingService) UpdateTaskStatus(ctx context.Context, onboardingID, taskID uint, status string) (models.Onboarding, error) {
	switch status {
	case models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusCompleted:
	default:
		return models.Onboarding{}, newAppError(http.StatusBadRequest, "invalid task status", nil)
	}

	onboarding, err := s.GetOnboarding(ctx, onboardingID)
	if err != nil {
		return models.Onboarding{}, err
	}

	found := false
	now := time.Now()
	for i := range onboarding.Tasks {
		if onboarding.Tasks[i].ID != taskID {
			continue
		}
		found = true
		onboarding.Tasks[i].Status = status
		if status == models.TaskStatusCompleted {
			onboarding.Tasks[i].CompletedAt = &now
		} else {
			onboarding.Tasks[i].CompletedAt = nil
		}
	}
	if !found {
		return models.Onboarding{}, newAppError(http.StatusNotFound, "task not found", nil)
	}

	if err := s.onboardings.ReplaceTasks(ctx, nil, onboardingID, onboarding.Tasks); err != nil {
		return models.Onboarding{}, newAppError(http.StatusInternalServerError, "failed to update task", err)
	}
	return s.GetOnboarding(ctx, onboardingID)
}

func (s *onboardingService) DeleteOnboarding(ctx context.Context, onboardingID uint) error {
	if _, err := s.GetOnboarding(ctx, onboardingID); err != nil {
		return err
	}
	if err := s.onboardings.DeleteByID(ctx, nil, onboardingID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete onboarding", err)
	}
	return nil
}
