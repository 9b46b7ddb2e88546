package handlers

import (
	"net/http"
	"strconv"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	in := services.ListUsersInput{
		Role:     c.Query("role"),
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

	users, total, err := getServices().Users.ListUsers(c.Request.Context(), in)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"users":      users,
		"pagination": paginationData(page, pageSize, total),
	})
}

func GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, svcErr := getServices().Users.GetUser(c.Request.Context(), uint(id))
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, user)
}

func UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, svcErr := getServices().Users.UpdateUserRole(c.Request.Context(), uint(id), req.Role)
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, user)
}

func UpdateUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, svcErr := getServices().Users.SetUserStatus(c.Request.Context(), uint(id), req.Status)
	if respondServiceError(c, svcErr) {
		return
	}
	utils.Success(c, user)
}
