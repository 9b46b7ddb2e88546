package handlers

import (
	"net/http"
	"time"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name         string     `json:"name" binding:"required,min=2,max=50"`
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password" binding:"required,min=6"`
	Role         string     `json:"role"`
	DepartmentID *uint      `json:"department_id"`
	JobProfileID *uint      `json:"job_profile_id"`
	JobTitle     string     `json:"job_title"`
	StartDate    *time.Time `json:"start_date"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	out, err := getServices().Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
		JobProfileID: req.JobProfileID,
		JobTitle:     req.JobTitle,
		StartDate:    req.StartDate,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	out, err := getServices().Auth.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func GetProfile(c *gin.Context) {
	user, err := getServices().Auth.GetProfile(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := getServices().Auth.UpdateProfile(c.Request.Context(), c.GetUint("user_id"), services.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := getServices().Auth.ChangePassword(c.Request.Context(), c.GetUint("user_id"), req.CurrentPassword, req.NewPassword)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "password changed", nil)
}
