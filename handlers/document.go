package handlers

import (
	"net/http"
	"strings"

	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

type CreateFolderRequest struct {
	CurrentPath string `json:"currentPath"`
	FolderName  string `json:"folderName" binding:"required"`
}

type FileUploadRequest struct {
	Key  string `json:"key" binding:"required"`
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type FolderUploadFile struct {
	Path string `json:"path" binding:"required"`
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type FolderUploadRequest struct {
	FolderPath string             `json:"folderPath"`
	Files      []FolderUploadFile `json:"files" binding:"required"`
}

type ExternalLinkRequest struct {
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	CurrentPath string `json:"currentPath"`
}

type RenameRequest struct {
	OldPath string `json:"oldPath" binding:"required"`
	NewPath string `json:"newPath" binding:"required"`
}

type MoveRequest struct {
	SourceKey       string `json:"sourceKey" binding:"required"`
	DestinationPath string `json:"destinationPath"`
	IsExternalLink  bool   `json:"isExternalLink"`
}

type RemoveRequest struct {
	Key            string `json:"key" binding:"required"`
	IsExternalLink bool   `json:"isExternalLink"`
}

type SaveEditedImageRequest struct {
	Key       string `json:"key" binding:"required"`
	ImageData string `json:"imageData" binding:"required"`
}

type ShareRequest struct {
	Key          string `json:"key" binding:"required"`
	UserID       *uint  `json:"userId"`
	DepartmentID *uint  `json:"departmentId"`
	JobProfileID *uint  `json:"jobProfileId"`
	AccessType   string `json:"accessType"`
}

type RemoveShareRequest struct {
	Key          string `json:"key" binding:"required"`
	UserID       *uint  `json:"userId"`
	DepartmentID *uint  `json:"departmentId"`
	JobProfileID *uint  `json:"jobProfileId"`
}

func GetFileUploadURL(c *gin.Context) {
	path := c.Query("path")
	fileName := c.Query("fileName")

	uploadURL, key, err := getServices().Documents.GetUploadURL(c.Request.Context(), path, fileName)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"upload_url": uploadURL,
		"key":        key,
	})
}

func GetFileViewURL(c *gin.Context) {
	viewURL, err := getServices().Documents.GetViewURL(c.Request.Context(), c.Query("key"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"view_url": viewURL})
}

func ListDocuments(c *gin.Context) {
	listing, err := getServices().Documents.ListFolder(c.Request.Context(), callerFromContext(c), c.Query("path"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, listing)
}

func CreateFolder(c *gin.Context) {
	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	folder, err := getServices().Documents.CreateFolder(c.Request.Context(), c.GetUint("user_id"), req.CurrentPath, req.FolderName)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, folder)
}

func RecordFileUpload(c *gin.Context) {
	var req FileUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	record, err := getServices().Documents.RecordUpload(c.Request.Context(), c.GetUint("user_id"), services.RecordUploadInput{
		Key:  req.Key,
		Type: req.Type,
		Name: req.Name,
		Size: req.Size,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, record)
}

func UploadFolderStructure(c *gin.Context) {
	var req FolderUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	entries := make([]services.FolderUploadEntry, 0, len(req.Files))
	for _, f := range req.Files {
		entries = append(entries, services.FolderUploadEntry{
			Path: f.Path,
			Type: f.Type,
			Name: f.Name,
			Size: f.Size,
			URL:  f.URL,
		})
	}

	err := getServices().Documents.UploadFolder(c.Request.Context(), c.GetUint("user_id"), req.FolderPath, entries)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "folder uploaded", nil)
}

func CreateExternalLink(c *gin.Context) {
	var req ExternalLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	link, err := getServices().Documents.CreateExternalLink(c.Request.Context(), c.GetUint("user_id"), req.Name, req.URL, req.CurrentPath)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, link)
}

func RenameDocument(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := getServices().Documents.Rename(c.Request.Context(), c.GetUint("user_id"), req.OldPath, req.NewPath)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "renamed", nil)
}

func MoveDocument(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := getServices().Documents.Move(c.Request.Context(), c.GetUint("user_id"), req.SourceKey, req.DestinationPath, req.IsExternalLink)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "moved", nil)
}

func RemoveDocument(c *gin.Context) {
	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := getServices().Documents.Delete(c.Request.Context(), c.GetUint("user_id"), req.Key, req.IsExternalLink)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "deleted", nil)
}

func SaveEditedImage(c *gin.Context) {
	var req SaveEditedImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := getServices().Documents.SaveEditedImage(c.Request.Context(), c.GetUint("user_id"), req.Key, req.ImageData)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, result)
}

func shareWith(c *gin.Context, target services.ShareTarget, key, accessType string) {
	grant, err := getServices().Sharing.Share(c.Request.Context(), c.GetUint("user_id"), key, target, accessType)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, grant)
}

func ShareWithUser(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.UserID == nil {
		utils.Error(c, http.StatusBadRequest, "userId is required")
		return
	}
	shareWith(c, services.ShareTarget{UserID: req.UserID}, req.Key, req.AccessType)
}

func ShareWithDepartment(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.DepartmentID == nil {
		utils.Error(c, http.StatusBadRequest, "departmentId is required")
		return
	}
	shareWith(c, services.ShareTarget{DepartmentID: req.DepartmentID}, req.Key, req.AccessType)
}

func ShareWithJobProfile(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.JobProfileID == nil {
		utils.Error(c, http.StatusBadRequest, "jobProfileId is required")
		return
	}
	shareWith(c, services.ShareTarget{JobProfileID: req.JobProfileID}, req.Key, req.AccessType)
}

func SharedWithMe(c *gin.Context) {
	resources, err := getServices().Sharing.SharedWithCaller(c.Request.Context(), callerFromContext(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, resources)
}

func SharedWithKey(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	grants, err := getServices().Sharing.GrantsForKey(c.Request.Context(), key)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, grants)
}

func RemoveShare(c *gin.Context) {
	var req RemoveShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := getServices().Sharing.Unshare(c.Request.Context(), req.Key, services.ShareTarget{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
		JobProfileID: req.JobProfileID,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "share revoked", nil)
}
