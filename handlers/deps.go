package handlers

import (
	"math"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

var appServices *services.Container

func SetServices(container *services.Container) {
	appServices = container
}

func getServices() *services.Container {
	if appServices == nil {
		panic("services container is not initialized")
	}
	return appServices
}

func respondServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*services.AppError); ok {
		if appErr.Data != nil {
			utils.ErrorWithData(c, appErr.HTTPCode, appErr.Message, appErr.Data)
		} else {
			utils.Error(c, appErr.HTTPCode, appErr.Message)
		}
		return true
	}
	utils.Error(c, 500, "internal error")
	return true
}

func paginationData(page, pageSize int, total int64) utils.PaginationData {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return utils.PaginationData{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func callerFromContext(c *gin.Context) services.Caller {
	caller := services.Caller{UserID: c.GetUint("user_id")}
	if v, ok := c.Get("department_id"); ok {
		if id, ok := v.(uint); ok {
			caller.DepartmentID = &id
		}
	}
	if v, ok := c.Get("job_profile_id"); ok {
		if id, ok := v.(uint); ok {
			caller.JobProfileID = &id
		}
	}
	return caller
}
