package handlers

import (
	"net/http"
	"strconv"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	HeadID         *uint   `json:"head_id"`
	BudgetAmount   float64 `json:"budget_amount"`
	BudgetCurrency string  `json:"budget_currency"`
	Location       string  `json:"location"`
	Status         string  `json:"status"`
}

func (r DepartmentRequest) toInput() services.DepartmentInput {
	return services.DepartmentInput{
		Name:           r.Name,
		Description:    r.Description,
		HeadID:         r.HeadID,
		BudgetAmount:   r.BudgetAmount,
		BudgetCurrency: r.BudgetCurrency,
		Location:       r.Location,
		Status:         r.Status,
	}
}

func ListDepartments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	departments, total, err := getServices().Departments.ListDepartments(c.Request.Context(), c.Query("search"), page, pageSize)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"departments": departments,
		"pagination":  paginationData(page, pageSize, total),
	})
}

func GetDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid department id")
		return
	}

	department, svcErr := getServices().Departments.GetDepartment(c.Request.Context(), uint(id))
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, department)
}

func CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	department, err := getServices().Departments.CreateDepartment(c.Request.Context(), req.toInput())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, department)
}

func UpdateDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid department id")
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	department, svcErr := getServices().Departments.UpdateDepartment(c.Request.Context(), uint(id), req.toInput())
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, department)
}

func DeleteDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid department id")
		return
	}

	if respondServiceError(c, getServices().Departments.DeleteDepartment(c.Request.Context(), uint(id))) {
		return
	}
	utils.SuccessWithMessage(c, "department deleted", nil)
}
