package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mdowais-techno/team-hub-server/logger"
	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"
	"github.com/mdowais-techno/team-hub-server/storage"

	"github.com/disintegration/imaging"
	"gorm.io/gorm"
)

type Caller struct {
	UserID       uint
	DepartmentID *uint
	JobProfileID *uint
}

type FolderListing struct {
	Path    string                `json:"path"`
	Folders []models.Folder       `json:"folders"`
	Files   []models.FileRecord   `json:"files"`
	Links   []models.ExternalLink `json:"external_links"`
}

type FolderUploadEntry struct {
	Path string
	Type string
	Name string
	Size int64
	URL  string
}

type RecordUploadInput struct {
	Key  string
	Type string
	Name string
	Size int64
}

type EditedImageResult struct {
	Key     string `json:"key"`
	Size    int64  `json:"size"`
	ViewURL string `json:"view_url"`
}

type DocumentService interface {
	GetUploadURL(ctx context.Context, path, fileName string) (string, string, error)
	GetViewURL(ctx context.Context, key string) (string, error)
	ListFolder(ctx context.Context, caller Caller, path string) (FolderListing, error)
	CreateFolder(ctx context.Context, userID uint, currentPath, folderName string) (models.Folder, error)
	RecordUpload(ctx context.Context, userID uint, in RecordUploadInput) (models.FileRecord, error)
	UploadFolder(ctx context.Context, userID uint, folderPath string, entries []FolderUploadEntry) error
	CreateExternalLink(ctx context.Context, userID uint, name, rawURL, currentPath string) (models.ExternalLink, error)
	Rename(ctx context.Context, userID uint, oldPath, newPath string) error
	Move(ctx context.Context, userID uint, sourceKey, destinationPath string, isExternalLink bool) error
	Delete(ctx context.Context, userID uint, key string, isExternalLink bool) error
	SaveEditedImage(ctx context.Context, userID uint, key, imageData string) (EditedImageResult, error)
}

type documentService struct {
	txManager TxManager
	store     storage.ObjectStore
	locker    PathLocker
	folders   repositories.FolderRepository
	files     repositories.FileRecordRepository
	links     repositories.ExternalLinkRepository
	shares    repositories.ShareGrantRepository
	users     repositories.UserRepository

	viewURLExpiry   time.Duration
	uploadURLExpiry time.Duration
	maxImageBytes   int64
}

type DocumentServiceConfig struct {
	ViewURLExpiry   time.Duration
	UploadURLExpiry time.Duration
	MaxImageBytes   int64
}

func NewDocumentService(
	txManager TxManager,
	store storage.ObjectStore,
	locker PathLocker,
	repos *repositories.Container,
	cfg DocumentServiceConfig,
) DocumentService {
	return &documentService{
		txManager:       txManager,
		store:           store,
		locker:          locker,
		folders:         repos.Folders,
		files:           repos.Files,
		links:           repos.Links,
		shares:          repos.Shares,
		users:           repos.Users,
		viewURLExpiry:   cfg.ViewURLExpiry,
		uploadURLExpiry: cfg.UploadURLExpiry,
		maxImageBytes:   cfg.MaxImageBytes,
	}
}

func (s *documentService) GetUploadURL(ctx context.Context, path, fileName string) (string, string, error) {
	if strings.TrimSpace(fileName) == "" {
		return "", "", newAppError(http.StatusBadRequest, "file name is required", nil)
	}
	if strings.Contains(fileName, pathSeparator) {
		return "", "", newAppError(http.StatusBadRequest, "file name cannot contain a path separator", nil)
	}

	key := NormalizeDirPath(path) + fileName
	uploadURL, err := s.store.PresignPut(ctx, key, s.uploadURLExpiry)
	if err != nil {
		return "", "", newAppError(http.StatusInternalServerError, "failed to generate upload url", err)
	}
	return uploadURL, key, nil
}

func (s *documentService) GetViewURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", newAppError(http.StatusBadRequest, "key is required", nil)
	}
	viewURL, err := s.store.PresignGet(ctx, key, s.viewURLExpiry)
	if err != nil {
		return "", newAppError(http.StatusInternalServerError, "failed to generate view url", err)
	}
	return viewURL, nil
}

func (s *documentService) ListFolder(ctx context.Context, caller Caller, path string) (FolderListing, error) {
	path = NormalizeDirPath(path)
	listing := FolderListing{
		Path:    path,
		Folders: []models.Folder{},
		Files:   []models.FileRecord{},
		Links:   []models.ExternalLink{},
	}

	folders, err := s.folders.ListByParentAndUser(ctx, nil, path, caller.UserID)
	if err != nil {
		return FolderListing{}, newAppError(http.StatusInternalServerError, "failed to list folders", err)
	}
	for i := range folders {
		folderCount, err := s.folders.CountByParent(ctx, nil, folders[i].Path)
		if err != nil {
			return FolderListing{}, newAppError(http.StatusInternalServerError, "failed to count folders", err)
		}
		fileCount, err := s.files.CountByPath(ctx, nil, folders[i].Path)
		if err != nil {
			return FolderListing{}, newAppError(http.StatusInternalServerError, "failed to count files", err)
		}
		folders[i].FolderCount = folderCount
		folders[i].FileCount = fileCount
	}
	listing.Folders = folders

	files, err := s.files.ListByPathAndUser(ctx, nil, path, caller.UserID)
	if err != nil {
		return FolderListing{}, newAppError(http.StatusInternalServerError, "failed to list files", err)
	}
	listing.Files = files

	links, err := s.links.ListByPathAndUser(ctx, nil, path, caller.UserID)
	if err != nil {
		return FolderListing{}, newAppError(http.StatusInternalServerError, "failed to list external links", err)
	}
	listing.Links = links

	if err := s.mergeSharedEntries(ctx, caller, path, &listing); err != nil {
		return FolderListing{}, err
	}
	return listing, nil
}

// mergeSharedEntries appends resources at path that another user shared
// with the caller, annotated with the owner's display name.
func (s *documentService) mergeSharedEntries(ctx context.Context, caller Caller, path string, listing *FolderListing) error {
	grants, err := s.shares.ListForCaller(ctx, nil, caller.UserID, caller.DepartmentID, caller.JobProfileID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to resolve shared resources", err)
	}
	if len(grants) == 0 {
		return nil
	}

	accessByKey := make(map[string]models.ShareGrant, len(grants))
	fileKeys := make([]string, 0, len(grants))
	folderPaths := make([]string, 0, len(grants))
	for _, g := range grants {
		if _, seen := accessByKey[g.Key]; seen {
			continue
		}
		accessByKey[g.Key] = g
		if IsDirKey(g.Key) {
			folderPaths = append(folderPaths, g.Key)
		} else {
			fileKeys = append(fileKeys, g.Key)
		}
	}

	ownerIDs := map[uint]struct{}{}

	var sharedFiles []models.FileRecord
	if len(fileKeys) > 0 {
		sharedFiles, err = s.files.ListSharedAtPath(ctx, nil, fileKeys, path, caller.UserID)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "failed to list shared files", err)
		}
		for _, f := range sharedFiles {
			ownerIDs[f.UserID] = struct{}{}
		}
	}

	var sharedFolders []models.Folder
	if len(folderPaths) > 0 {
		candidates, err := s.folders.ListByPaths(ctx, nil, folderPaths)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "failed to list shared folders", err)
		}
		for _, f := range candidates {
			if f.Parent != path || f.UserID == caller.UserID {
				continue
			}
			sharedFolders = append(sharedFolders, f)
			ownerIDs[f.UserID] = struct{}{}
		}
	}

	var sharedLinks []models.ExternalLink
	for _, key := range fileKeys {
		parts := SplitKey(key)
		if parts.Dir != path {
			continue
		}
		link, err := s.links.GetByNameAndPath(ctx, nil, parts.Name, parts.Dir)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return newAppError(http.StatusInternalServerError, "failed to list shared links", err)
		}
		if link.UserID == caller.UserID {
			continue
		}
		sharedLinks = append(sharedLinks, link)
		ownerIDs[link.UserID] = struct{}{}
	}

	for _, g := range accessByKey {
		ownerIDs[g.SharedByID] = struct{}{}
	}
	ids := make([]uint, 0, len(ownerIDs))
	for id := range ownerIDs {
		ids = append(ids, id)
	}
	names, err := s.users.NamesByIDs(ctx, nil, ids)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to resolve user names", err)
	}

	for _, f := range sharedFiles {
		grant := accessByKey[f.Key]
		f.Shared = true
		f.Owner = names[f.UserID]
		f.SharedBy = names[grant.SharedByID]
		f.Access = grant.AccessType
		listing.Files = append(listing.Files, f)
	}
	for _, f := range sharedFolders {
		folderCount, err := s.folders.CountByParent(ctx, nil, f.Path)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "failed to count folders", err)
		}
		fileCount, err := s.files.CountByPath(ctx, nil, f.Path)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "failed to count files", err)
		}
		f.FolderCount = folderCount
		f.FileCount = fileCount
		listing.Folders = append(listing.Folders, f)
	}
	for _, l := range sharedLinks {
		grant := accessByKey[l.Path+l.Name]
		l.Shared = true
		l.Owner = names[l.UserID]
		l.SharedBy = names[grant.SharedByID]
		l.Access = grant.AccessType
		listing.Links = append(listing.Links, l)
	}
	return nil
}

func (s *documentService) CreateFolder(ctx context.Context, userID uint, currentPath, folderName string) (models.Folder, error) {
	folderName = strings.TrimSpace(folderName)
	if folderName == "" {
		return models.Folder{}, newAppError(http.StatusBadRequest, "folder name is required", nil)
	}
	if strings.Contains(folderName, pathSeparator) {
		return models.Folder{}, newAppError(http.StatusBadRequest, "folder name cannot contain a path separator", nil)
	}

	parent := NormalizeDirPath(currentPath)
	path := parent + folderName + pathSeparator

	if err := s.store.Put(ctx, path, nil, ""); err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to create folder marker", err)
	}

	folder := models.Folder{
		Name:   folderName,
		Path:   path,
		Parent: parent,
		UserID: userID,
	}
	if err := s.folders.Upsert(ctx, nil, &folder); err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to save folder", err)
	}
	return folder, nil
}

func (s *documentService) RecordUpload(ctx context.Context, userID uint, in RecordUploadInput) (models.FileRecord, error) {
	if in.Key == "" {
		return models.FileRecord{}, newAppError(http.StatusBadRequest, "key is required", nil)
	}
	if IsDirKey(in.Key) {
		return models.FileRecord{}, newAppError(http.StatusBadRequest, "key cannot denote a folder", nil)
	}

	parts := SplitKey(in.Key)
	name := in.Name
	if name == "" {
		name = parts.Name
	}

	existing, err := s.files.GetByKey(ctx, nil, in.Key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FileRecord{}, newAppError(http.StatusInternalServerError, "failed to query file record", err)
	}
	if err == nil {
		updates := map[string]interface{}{
			"name": name,
			"type": in.Type,
			"size": in.Size,
		}
		if err := s.files.UpdateByID(ctx, nil, existing.ID, updates); err != nil {
			return models.FileRecord{}, newAppError(http.StatusInternalServerError, "failed to update file record", err)
		}
		existing.Name = name
		existing.Type = in.Type
		existing.Size = in.Size
		return existing, nil
	}

	record := models.FileRecord{
		Name:   name,
		Key:    in.Key,
		Path:   parts.Dir,
		Type:   in.Type,
		Size:   in.Size,
		UserID: userID,
	}
	if err := s.files.Create(ctx, nil, &record); err != nil {
		return models.FileRecord{}, newAppError(http.StatusInternalServerError, "failed to save file record", err)
	}
	return record, nil
}

func (s *documentService) UploadFolder(ctx context.Context, userID uint, folderPath string, entries []FolderUploadEntry) error {
	if len(entries) == 0 {
		return newAppError(http.StatusBadRequest, "no entries to upload", nil)
	}
	base := NormalizeDirPath(folderPath)

	// Materialize every intermediate folder along each entry's path.
	folderPaths := map[string]struct{}{}
	for _, entry := range entries {
		relative := strings.TrimPrefix(entry.Path, pathSeparator)
		full := base + relative
		dir := SplitKey(full).Dir
		for dir != "" && dir != base && strings.HasPrefix(dir, base) {
			folderPaths[dir] = struct{}{}
			trimmed := strings.TrimSuffix(dir, pathSeparator)
			dir = SplitKey(trimmed).Dir
		}
	}

	for path := range folderPaths {
		if err := s.store.Put(ctx, path, nil, ""); err != nil {
			return newAppError(http.StatusInternalServerError, "failed to create folder marker", err)
		}
		info := DeriveFolderInfo(path)
		folder := models.Folder{
			Name:   info.Name,
			Path:   info.Path,
			Parent: info.Parent,
			UserID: userID,
		}
		if err := s.folders.Upsert(ctx, nil, &folder); err != nil {
			return newAppError(http.StatusInternalServerError, "failed to save folder", err)
		}
	}

	for _, entry := range entries {
		relative := strings.TrimPrefix(entry.Path, pathSeparator)
		full := base + relative

		if entry.URL != "" {
			parts := SplitKey(full)
			if _, err := s.createLink(ctx, userID, parts.Name, entry.URL, parts.Dir); err != nil {
				return err
			}
			continue
		}

		if _, err := s.RecordUpload(ctx, userID, RecordUploadInput{
			Key:  full,
			Type: entry.Type,
			Name: entry.Name,
			Size: entry.Size,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *documentService) CreateExternalLink(ctx context.Context, userID uint, name, rawURL, currentPath string) (models.ExternalLink, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ExternalLink{}, newAppError(http.StatusBadRequest, "link name is required", nil)
	}
	return s.createLink(ctx, userID, name, rawURL, NormalizeDirPath(currentPath))
}

func (s *documentService) createLink(ctx context.Context, userID uint, name, rawURL, path string) (models.ExternalLink, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return models.ExternalLink{}, newAppError(http.StatusBadRequest, "invalid url", nil)
	}

	existing, err := s.links.GetByNameAndPath(ctx, nil, name, path)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ExternalLink{}, newAppError(http.StatusInternalServerError, "failed to query external link", err)
	}
	if err == nil {
		if err := s.links.UpdateByID(ctx, nil, existing.ID, map[string]interface{}{"url": rawURL}); err != nil {
			return models.ExternalLink{}, newAppError(http.StatusInternalServerError, "failed to update external link", err)
		}
		existing.URL = rawURL
		return existing, nil
	}

	link := models.ExternalLink{
		Name:   name,
		URL:    rawURL,
		Path:   path,
		UserID: userID,
	}
	if err := s.links.Create(ctx, nil, &link); err != nil {
		return models.ExternalLink{}, newAppError(http.StatusInternalServerError, "failed to save external link", err)
	}
	return link, nil
}

func (s *documentService) Rename(ctx context.Context, userID uint, oldPath, newPath string) error {
	if oldPath == "" || newPath == "" {
		return newAppError(http.StatusBadRequest, "both old and new paths are required", nil)
	}
	if oldPath == newPath {
		return nil
	}
	if IsDirKey(oldPath) != IsDirKey(newPath) {
		return newAppError(http.StatusBadRequest, "old and new paths must both be folders or both be files", nil)
	}

	unlock, err := s.locker.Lock(ctx, oldPath)
	if err != nil {
		return newAppError(http.StatusConflict, "resource is busy, try again", err)
	}
	defer unlock()

	if IsDirKey(oldPath) {
		return s.relocateFolder(ctx, oldPath, newPath)
	}
	return s.relocateFile(ctx, oldPath, newPath)
}

func (s *documentService) Move(ctx context.Context, userID uint, sourceKey, destinationPath string, isExternalLink bool) error {
	if sourceKey == "" {
		return newAppError(http.StatusBadRequest, "source key is required", nil)
	}
	destination := NormalizeDirPath(destinationPath)

	if isExternalLink {
		parts := SplitKey(sourceKey)
		link, err := s.links.GetByNameAndPath(ctx, nil, parts.Name, parts.Dir)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newAppError(http.StatusNotFound, "external link not found", nil)
			}
			return newAppError(http.StatusInternalServerError, "failed to query external link", err)
		}
		if err := s.links.UpdateByID(ctx, nil, link.ID, map[string]interface{}{"path": destination}); err != nil {
			return newAppError(http.StatusInternalServerError, "failed to move external link", err)
		}
		return nil
	}

	unlock, err := s.locker.Lock(ctx, sourceKey)
	if err != nil {
		return newAppError(http.StatusConflict, "resource is busy, try again", err)
	}
	defer unlock()

	if IsDirKey(sourceKey) {
		info := DeriveFolderInfo(sourceKey)
		return s.relocateFolder(ctx, sourceKey, destination+info.Name+pathSeparator)
	}
	return s.relocateFile(ctx, sourceKey, destination+SplitKey(sourceKey).Name)
}

// relocateFile moves a single blob and its catalog entry to a new key.
// When no blob record exists the source is retried as an external link,
// matching the rename contract.
func (s *documentService) relocateFile(ctx context.Context, oldKey, newKey string) error {
	record, err := s.files.GetByKey(ctx, nil, oldKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.relocateLink(ctx, oldKey, newKey)
		}
		return newAppError(http.StatusInternalServerError, "failed to query file record", err)
	}

	if err := s.store.Copy(ctx, oldKey, newKey); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to copy object", err)
	}
	if err := s.store.Delete(ctx, oldKey); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete source object", err)
	}

	parts := SplitKey(newKey)
	updates := map[string]interface{}{
		"key":  newKey,
		"path": parts.Dir,
		"name": parts.Name,
	}
	if err := s.files.UpdateByID(ctx, nil, record.ID, updates); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update file record", err)
	}
	return nil
}

func (s *documentService) relocateLink(ctx context.Context, oldKey, newKey string) error {
	oldParts := SplitKey(oldKey)
	link, err := s.links.GetByNameAndPath(ctx, nil, oldParts.Name, oldParts.Dir)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "file not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query external link", err)
	}

	newParts := SplitKey(newKey)
	updates := map[string]interface{}{
		"name": newParts.Name,
		"path": newParts.Dir,
	}
	if err := s.links.UpdateByID(ctx, nil, link.ID, updates); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update external link", err)
	}
	return nil
}

// relocateFolder rewrites every blob and catalog row under oldPath to
// live under newPath. Blob moves happen first (copy then delete, one key
// at a time); catalog rows follow inside one transaction. A crash between
// the two phases leaves the stores inconsistent, which the per-path lock
// narrows but cannot eliminate.
func (s *documentService) relocateFolder(ctx context.Context, oldPath, newPath string) error {
	folder, err := s.folders.GetByPath(ctx, nil, oldPath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	objects, err := s.store.List(ctx, oldPath)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to list objects", err)
	}
	for _, obj := range objects {
		destKey := ReplaceKeyPrefix(obj.Key, oldPath, newPath)
		if err := s.store.Copy(ctx, obj.Key, destKey); err != nil {
			return newAppError(http.StatusInternalServerError, "failed to copy object", err)
		}
		if err := s.store.Delete(ctx, obj.Key); err != nil {
			return newAppError(http.StatusInternalServerError, "failed to delete source object", err)
		}
	}

	newInfo := DeriveFolderInfo(newPath)
	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.folders.UpdateByID(ctx, tx, folder.ID, map[string]interface{}{
			"name":   newInfo.Name,
			"path":   newInfo.Path,
			"parent": newInfo.Parent,
		}); err != nil {
			return err
		}

		descendants, err := s.folders.ListByPathPrefix(ctx, tx, oldPath)
		if err != nil {
			return err
		}
		for _, d := range descendants {
			if d.ID == folder.ID {
				continue
			}
			if err := s.folders.UpdateByID(ctx, tx, d.ID, map[string]interface{}{
				"path":   ReplaceKeyPrefix(d.Path, oldPath, newInfo.Path),
				"parent": ReplaceKeyPrefix(d.Parent, oldPath, newInfo.Path),
			}); err != nil {
				return err
			}
		}

		files, err := s.files.ListByKeyPrefix(ctx, tx, oldPath)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := s.files.UpdateByID(ctx, tx, f.ID, map[string]interface{}{
				"key":  ReplaceKeyPrefix(f.Key, oldPath, newInfo.Path),
				"path": ReplaceKeyPrefix(f.Path, oldPath, newInfo.Path),
			}); err != nil {
				return err
			}
		}

		links, err := s.links.ListByPathPrefix(ctx, tx, oldPath)
		if err != nil {
			return err
		}
		for _, l := range links {
			if err := s.links.UpdateByID(ctx, tx, l.ID, map[string]interface{}{
				"path": ReplaceKeyPrefix(l.Path, oldPath, newInfo.Path),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to update folder records", err)
	}
	return nil
}

func (s *documentService) Delete(ctx context.Context, userID uint, key string, isExternalLink bool) error {
	if key == "" {
		return newAppError(http.StatusBadRequest, "key is required", nil)
	}

	if isExternalLink {
		parts := SplitKey(key)
		link, err := s.links.GetByNameAndPath(ctx, nil, parts.Name, parts.Dir)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newAppError(http.StatusNotFound, "external link not found", nil)
			}
			return newAppError(http.StatusInternalServerError, "failed to query external link", err)
		}
		err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
			if err := s.links.DeleteByID(ctx, tx, link.ID); err != nil {
				return err
			}
			return s.shares.DeleteByKey(ctx, tx, key)
		})
		if err != nil {
			return newAppError(http.StatusInternalServerError, "failed to delete external link", err)
		}
		return nil
	}

	unlock, err := s.locker.Lock(ctx, key)
	if err != nil {
		return newAppError(http.StatusConflict, "resource is busy, try again", err)
	}
	defer unlock()

	if IsDirKey(key) {
		return s.deleteFolder(ctx, key)
	}
	return s.deleteFile(ctx, key)
}

func (s *documentService) deleteFile(ctx context.Context, key string) error {
	if _, err := s.files.GetByKey(ctx, nil, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "file not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query file record", err)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete object", err)
	}

	err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.files.DeleteByKey(ctx, tx, key); err != nil {
			return err
		}
		return s.shares.DeleteByKey(ctx, tx, key)
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete file record", err)
	}
	return nil
}

func (s *documentService) deleteFolder(ctx context.Context, path string) error {
	objects, err := s.store.List(ctx, path)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to list objects", err)
	}
	for _, obj := range objects {
		if err := s.store.Delete(ctx, obj.Key); err != nil {
			return newAppError(http.StatusInternalServerError, "failed to delete object", err)
		}
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.folders.DeleteByPathPrefix(ctx, tx, path); err != nil {
			return err
		}
		if err := s.files.DeleteByKeyPrefix(ctx, tx, path); err != nil {
			return err
		}
		if err := s.links.DeleteByPathPrefix(ctx, tx, path); err != nil {
			return err
		}
		return s.shares.DeleteByKeyPrefix(ctx, tx, path)
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete folder records", err)
	}

	logger.Infof("deleted folder %q with %d objects", path, len(objects))
	return nil
}

func (s *documentService) SaveEditedImage(ctx context.Context, userID uint, key, imageData string) (EditedImageResult, error) {
	if key == "" {
		return EditedImageResult{}, newAppError(http.StatusBadRequest, "key is required", nil)
	}

	contentType, payload, err := decodeDataURL(imageData)
	if err != nil {
		return EditedImageResult{}, newAppError(http.StatusBadRequest, "invalid image data", err)
	}
	if s.maxImageBytes > 0 && int64(len(payload)) > s.maxImageBytes {
		return EditedImageResult{}, newAppError(http.StatusBadRequest, "image exceeds maximum allowed size", nil)
	}
	if _, err := imaging.Decode(bytes.NewReader(payload)); err != nil {
		return EditedImageResult{}, newAppError(http.StatusBadRequest, "payload is not a decodable image", err)
	}

	if err := s.store.Put(ctx, key, payload, contentType); err != nil {
		return EditedImageResult{}, newAppError(http.StatusInternalServerError, "failed to save image", err)
	}

	if err := s.files.UpdateByKey(ctx, nil, key, map[string]interface{}{"size": int64(len(payload))}); err != nil {
		return EditedImageResult{}, newAppError(http.StatusInternalServerError, "failed to update file record", err)
	}

	viewURL, err := s.store.PresignGet(ctx, key, s.viewURLExpiry)
	if err != nil {
		return EditedImageResult{}, newAppError(http.StatusInternalServerError, "failed to generate view url", err)
	}

	return EditedImageResult{
		Key:     key,
		Size:    int64(len(payload)),
		ViewURL: viewURL,
	}, nil
}

// decodeDataURL splits a "data:<mime>;base64,<payload>" string.
func decodeDataURL(data string) (string, []byte, error) {
	const marker = ";base64,"
	if !strings.HasPrefix(data, "data:") {
		return "", nil, errors.New("missing data url prefix")
	}
	idx := strings.Index(data, marker)
	if idx < 0 {
		return "", nil, errors.New("missing base64 marker")
	}

	contentType := data[len("data:"):idx]
	payload, err := base64.StdEncoding.DecodeString(data[idx+len(marker):])
	if err != nil {
		return "", nil, err
	}
	return contentType, payload, nil
}
