package handlers

import (
	"net/http"
	"strconv"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type TemplateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MentorID    *uint  `json:"mentor_id"`
}

type OnboardingTemplateRequest struct {
	Name         string                `json:"name"`
	DepartmentID *uint                 `json:"department_id"`
	Description  string                `json:"description"`
	Tasks        []TemplateTaskRequest `json:"tasks"`
}

func (r OnboardingTemplateRequest) toInput() services.OnboardingTemplateInput {
	in := services.OnboardingTemplateInput{
		Name:         r.Name,
		DepartmentID: r.DepartmentID,
		Description:  r.Description,
	}
	if r.Tasks != nil {
		in.Tasks = make([]services.TemplateTaskInput, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			in.Tasks = append(in.Tasks, services.TemplateTaskInput{
				Title:       t.Title,
				Description: t.Description,
				MentorID:    t.MentorID,
			})
		}
	}
	return in
}

func ListOnboardingTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	templates, total, err := getServices().Templates.ListTemplates(c.Request.Context(), c.Query("search"), page, pageSize)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"templates":  templates,
		"pagination": paginationData(page, pageSize, total),
	})
}

func GetOnboardingTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid template id")
		return
	}

	template, svcErr := getServices().Templates.GetTemplate(c.Request.Context(), uint(id))
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, template)
}

func CreateOnboardingTemplate(c *gin.Context) {
	var req OnboardingTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	template, err := getServices().Templates.CreateTemplate(c.Request.Context(), c.GetUint("user_id"), req.toInput())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, template)
}

func UpdateOnboardingTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid template id")
		return
	}

	var req OnboardingTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	template, svcErr := getServices().Templates.UpdateTemplate(c.Request.Context(), uint(id), req.toInput())
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, template)
}

func DeleteOnboardingTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid template id")
		return
	}

	if respondServiceError(c, getServices().Templates.DeleteTemplate(c.Request.Context(), uint(id))) {
		return
	}
	utils.SuccessWithMessage(c, "template deleted", nil)
}
