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

type TemplateTaskInput struct {
	Title       string
	Description string
	MentorID    *uint
}

type OnboardingTemplateInput struct {
	Name         string
	DepartmentID *uint
	Description  string
	Tasks        []TemplateTaskInput
}

type OnboardingTemplateService interface {
	ListTemplates(ctx context.Context, search string, page, pageSize int) ([]models.OnboardingTemplate, int64, error)
	GetTemplate(ctx context.Context, templateID uint) (models.OnboardingTemplate, error)
	CreateTemplate(ctx context.Context, createdByID uint, in OnboardingTemplateInput) (models.OnboardingTemplate, error)
	UpdateTemplate(ctx context.Context, templateID uint, in OnboardingTemplateInput) (models.OnboardingTemplate, error)
	DeleteTemplate(ctx context.Context, templateID uint) error
}

type onboardingTemplateService struct {
	txManager TxManager
	templates repositories.OnboardingTemplateRepository
}

func NewOnboardingTemplateService(txManager TxManager, templates repositories.OnboardingTemplateRepository) OnboardingTemplateService {
	return &onboardingTemplateService{txManager: txManager, templates: templates}
}

func (s *onboardingTemplateService) ListTemplates(ctx context.Context, search string, page, pageSize int) ([]models.OnboardingTemplate, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	total, err := s.templates.Count(ctx, nil, search)
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to count templates", err)
	}

	templates, err := s.templates.List(ctx, nil, repositories.ListInput{
		Search: search,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, 0, newAppError(http.StatusInternalServerError, "failed to list templates", err)
	}
	return templates, total, nil
}

func (s *onboardingTemplateService) GetTemplate(ctx context.Context, templateID uint) (models.OnboardingTemplate, error) {
	template, err := s.templates.GetByID(ctx, nil, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OnboardingTemplate{}, newAppError(http.StatusNotFound, "template not found", nil)
		}
		return models.OnboardingTemplate{}, newAppError(http.StatusInternalServerError, "failed to query template", err)
	}
	return template, nil
}

func (s *onboardingTemplateService) CreateTemplate(ctx context.Context, createdByID uint, in OnboardingTemplateInput) (models.OnboardingTemplate, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.OnboardingTemplate{}, newAppError(http.StatusBadRequest, "template name is required", nil)
	}

	tasks := make([]models.TemplateTask, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		tasks = append(tasks, models.TemplateTask{
			Title:       t.Title,
			Description: t.Description,
			MentorID:    t.MentorID,
		})
	}

	template := models.OnboardingTemplate{
		Name:         strings.TrimSpace(in.Name),
		DepartmentID: in.DepartmentID,
		Description:  in.Description,
		Tasks:        tasks,
		CreatedByID:  createdByID,
	}
	if err := s.templates.Create(ctx, nil, &template); err != nil {
		return models.OnboardingTemplate{}, newAppError(http.StatusInternalServerError, "failed to create template", err)
	}
	return s.GetTemplate(ctx, template.ID)
}

func (s *onboardingTemplateService) UpdateTemplate(ctx context.Context, templateID uint, in OnboardingTemplateInput) (models.OnboardingTemplate, error) {
	template, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return models.OnboardingTemplate{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		template.Name = name
	}
	if in.DepartmentID != nil {
		template.DepartmentID = in.DepartmentID
	}
	if in.Description != "" {
		template.Description = in.Description
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if in.Tasks != nil {
			tasks := make([]models.TemplateTask, 0, len(in.Tasks))
			for _, t := range in.Tasks {
				tasks = append(tasks, models.TemplateTask{
					TemplateID:  templateID,
					Title:       t.Title,
					Description: t.Description,
					MentorID:    t.MentorID,
				})
			}
			if err := s.templates.ReplaceTasks(ctx, tx, templateID, tasks); err != nil {
				return err
			}
		}
		template.Tasks = nil
		template.Department = nil
		template.CreatedBy = nil
		return s.templates.Save(ctx, tx, &template)
	})
	if err != nil {
		return models.OnboardingTemplate{}, newAppError(http.StatusInternalServerError, "failed to update template", err)
	}

	return s.GetTemplate(ctx, templateID)
}

func (s *onboardingTemplateService) DeleteTemplate(ctx context.Context, templateID uint) error {
	if _, err := s.GetTemplate(ctx, templateID); err != nil {
		return err
	}
	if err := s.templates.DeleteByID(ctx, nil, templateID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete template", err)
	}
	return nil
}
