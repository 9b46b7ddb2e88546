package handlers

import (
	"net/http"
	"strconv"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type JobProfileRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DepartmentID     uint     `json:"department_id"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	Positions        int      `json:"positions"`
	ExperienceLevel  string   `json:"experience_level"`
	SalaryMin        float64  `json:"salary_min"`
	SalaryMax        float64  `json:"salary_max"`
	SalaryCurrency   string   `json:"salary_currency"`
	EmploymentType   string   `json:"employment_type"`
	Location         string   `json:"location"`
	IsActive         *bool    `json:"is_active"`
}

func (r JobProfileRequest) toInput() services.JobProfileInput {
	return services.JobProfileInput{
		Title:            r.Title,
		Description:      r.Description,
		DepartmentID:     r.DepartmentID,
		Responsibilities: r.Responsibilities,
		Requirements:     r.Requirements,
		Skills:           r.Skills,
		Positions:        r.Positions,
		ExperienceLevel:  r.ExperienceLevel,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		SalaryCurrency:   r.SalaryCurrency,
		EmploymentType:   r.EmploymentType,
		Location:         r.Location,
		IsActive:         r.IsActive,
	}
}

func ListJobProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	profiles, total, err := getServices().JobProfiles.ListJobProfiles(c.Request.Context(), c.Query("search"), page, pageSize)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"job_profiles": profiles,
		"pagination":   paginationData(page, pageSize, total),
	})
}

func GetJobProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid job profile id")
		return
	}

	profile, svcErr := getServices().JobProfiles.GetJobProfile(c.Request.Context(), uint(id))
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, profile)
}

func CreateJobProfile(c *gin.Context) {
	var req JobProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	profile, err := getServices().JobProfiles.CreateJobProfile(c.Request.Context(), c.GetUint("user_id"), req.toInput())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, profile)
}

func UpdateJobProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid job profile id")
		return
	}

	var req JobProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	profile, svcErr := getServices().JobProfiles.UpdateJobProfile(c.Request.Context(), uint(id), req.toInput())
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, profile)
}

func DeleteJobProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid job profile id")
		return
	}

	if respondServiceError(c, getServices().JobProfiles.DeleteJobProfile(c.Request.Context(), uint(id))) {
		return
	}
	utils.SuccessWithMessage(c, "job profile deleted", nil)
}
