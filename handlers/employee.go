package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type EmployeeRequest struct {
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	DepartmentID uint       `json:"department_id"`
	JobProfileID uint       `json:"job_profile_id"`
	JobTitle     string     `json:"job_title"`
	StartDate    *time.Time `json:"start_date"`
	Status       string     `json:"status"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
}

func (r EmployeeRequest) toInput() services.EmployeeInput {
	return services.EmployeeInput{
		FullName:     r.FullName,
		Email:        r.Email,
		Password:     r.Password,
		DepartmentID: r.DepartmentID,
		JobProfileID: r.JobProfileID,
		JobTitle:     r.JobTitle,
		StartDate:    r.StartDate,
		Status:       r.Status,
		Phone:        r.Phone,
		Role:         r.Role,
	}
}

func ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	in := services.ListEmployeesInput{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid department id")
			return
		}
		deptID := uint(id)
		in.DepartmentID = &deptID
	}

	employees, total, err := getServices().Employees.ListEmployees(c.Request.Context(), in)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"employees":  employees,
		"pagination": paginationData(page, pageSize, total),
	})
}

func GetEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	employee, svcErr := getServices().Employees.GetEmployee(c.Request.Context(), uint(id))
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, employee)
}

func CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	employee, err := getServices().Employees.CreateEmployee(c.Request.Context(), req.toInput())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, employee)
}

func UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	employee, svcErr := getServices().Employees.UpdateEmployee(c.Request.Context(), uint(id), req.toInput())
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, employee)
}

func DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	if respondServiceError(c, getServices().Employees.DeleteEmployee(c.Request.Context(), uint(id))) {
		return
	}
	utils.SuccessWithMessage(c, "employee deleted", nil)
}

func GetEmployeeStats(c *gin.Context) {
	stats, err := getServices().Employees.GetEmployeeStats(c.Request.Context())
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, stats)
}
