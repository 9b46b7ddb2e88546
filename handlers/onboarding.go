package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type OnboardingTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MentorID    *uint  `json:"mentor_id"`
	Status      string `json:"status"`
}

type OnboardingRequest struct {
	Name         string                  `json:"name"`
	Position     string                  `json:"position"`
	StartDate    *time.Time              `json:"start_date"`
	DepartmentID uint                    `json:"department_id"`
	Description  string                  `json:"description"`
	Avatar       string                  `json:"avatar"`
	Tasks        []OnboardingTaskRequest `json:"tasks"`
	TemplateID   *uint                   `json:"template_id"`
}

type TaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OnboardingRequest) toInput() services.OnboardingInput {
	in := services.OnboardingInput{
		Name:         r.Name,
		Position:     r.Position,
		StartDate:    r.StartDate,
		DepartmentID: r.DepartmentID,
		Description:  r.Description,
		Avatar:       r.Avatar,
		TemplateID:   r.TemplateID,
	}
	if r.Tasks != nil {
		in.Tasks = make([]services.OnboardingTaskInput, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			in.Tasks = append(in.Tasks, services.OnboardingTaskInput{
				Title:       t.Title,
				Description: t.Description,
				MentorID:    t.MentorID,
				Status:      t.Status,
			})
		}
	}
	return in
}

func ListOnboardings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	onboardings, total, err := getServices().Onboardings.ListOnboardings(c.Request.Context(), c.Query("search"), page, pageSize)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"onboardings": onboardings,
		"pagination":  paginationData(page, pageSize, total),
	})
}

func GetOnboarding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid onboarding id")
		return
	}

	onboarding, svcErr := getServices().Onboardings.GetOnboarding(c.Request.Context(), uint(id))
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, onboarding)
}

func CreateOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	onboarding, err := getServices().Onboardings.CreateOnboarding(c.Request.Context(), c.GetUint("user_id"), req.toInput())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, onboarding)
}

func UpdateOnboarding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid onboarding id")
		return
	}

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	onboarding, svcErr := getServices().Onboardings.UpdateOnboarding(c.Request.Context(), uint(id), req.toInput())
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, onboarding)
}

func UpdateOnboardingTaskStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid onboarding id")
		return
	}
	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var req TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	onboarding, svcErr := getServices().Onboardings.UpdateTaskStatus(c.Request.Context(), uint(id), uint(taskID), req.Status)
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, onboarding)
}

func DeleteOnboarding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid onboarding id")
		return
	}

	if respondServiceError(c, getServices().Onboardings.DeleteOnboarding(c.Request.Context(), uint(id))) {
		return
	}
	utils.SuccessWithMessage(c, "onboarding deleted", nil)
}
