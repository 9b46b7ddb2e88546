package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"

	"gorm.io/gorm"
)

type ShareTarget struct {
	UserID       *uint
	DepartmentID *uint
	JobProfileID *uint
}

// SharedResource is one entry of a "shared with me" listing: the grant
// joined with whichever catalog record its key resolves to.
type SharedResource struct {
	Kind       string                `json:"kind"`
	Key        string                `json:"key"`
	AccessType string                `json:"access_type"`
	SharedBy   string                `json:"shared_by"`
	Owner      string                `json:"owner"`
	File       *models.FileRecord    `json:"file,omitempty"`
	Folder     *models.Folder        `json:"folder,omitempty"`
	Link       *models.ExternalLink  `json:"external_link,omitempty"`
}

// KeyGrants groups every grant on one key by target kind.
type KeyGrants struct {
	Key         string              `json:"key"`
	Users       []models.ShareGrant `json:"users"`
	Departments []models.ShareGrant `json:"departments"`
	JobProfiles []models.ShareGrant `json:"job_profiles"`
}

type SharingService interface {
	Share(ctx context.Context, sharedByID uint, key string, target ShareTarget, accessType string) (models.ShareGrant, error)
	Unshare(ctx context.Context, key string, target ShareTarget) error
	SharedWithCaller(ctx context.Context, caller Caller) ([]SharedResource, error)
	GrantsForKey(ctx context.Context, key string) (KeyGrants, error)
}

type sharingService struct {
	shares      repositories.ShareGrantRepository
	files       repositories.FileRecordRepository
	folders     repositories.FolderRepository
	links       repositories.ExternalLinkRepository
	users       repositories.UserRepository
	departments repositories.DepartmentRepository
	jobProfiles repositories.JobProfileRepository
}

func NewSharingService(repos *repositories.Container) SharingService {
	return &sharingService{
		shares:      repos.Shares,
		files:       repos.Files,
		folders:     repos.Folders,
		links:       repos.Links,
		users:       repos.Users,
		departments: repos.Departments,
		jobProfiles: repos.JobProfiles,
	}
}

func (t ShareTarget) validate() error {
	count := 0
	if t.UserID != nil {
		count++
	}
	if t.DepartmentID != nil {
		count++
	}
	if t.JobProfileID != nil {
		count++
	}
	if count != 1 {
		return newAppError(http.StatusBadRequest, "exactly one share target is required", nil)
	}
	return nil
}

func (t ShareTarget) repoTarget() repositories.ShareTarget {
	return repositories.ShareTarget{
		UserID:       t.UserID,
		DepartmentID: t.DepartmentID,
		JobProfileID: t.JobProfileID,
	}
}

// Share upserts a grant for the (key, target) pair: re-sharing updates
// the access type in place rather than adding a second grant.
func (s *sharingService) Share(ctx context.Context, sharedByID uint, key string, target ShareTarget, accessType string) (models.ShareGrant, error) {
	if key == "" {
		return models.ShareGrant{}, newAppError(http.StatusBadRequest, "key is required", nil)
	}
	if err := target.validate(); err != nil {
		return models.ShareGrant{}, err
	}
	if accessType == "" {
		accessType = models.AccessViewer
	}
	if !models.ValidAccessType(accessType) {
		return models.ShareGrant{}, newAppError(http.StatusBadRequest, "invalid access type", nil)
	}

	switch {
	case target.UserID != nil:
		if err := s.checkKeyExists(ctx, key); err != nil {
			return models.ShareGrant{}, err
		}
	case target.DepartmentID != nil:
		if _, err := s.departments.GetByID(ctx, nil, *target.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ShareGrant{}, newAppError(http.StatusNotFound, "department not found", nil)
			}
			return models.ShareGrant{}, newAppError(http.StatusInternalServerError, "failed to query department", err)
		}
	case target.JobProfileID != nil:
		if _, err := s.jobProfiles.GetByID(ctx, nil, *target.JobProfileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ShareGrant{}, newAppError(http.StatusNotFound, "job profile not found", nil)
			}
			return models.ShareGrant{}, newAppError(http.StatusInternalServerError, "failed to query job profile", err)
		}
	}

	existing, err := s.shares.GetByKeyAndTarget(ctx, nil, key, target.repoTarget())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ShareGrant{}, newAppError(http.StatusInternalServerError, "failed to query share grant", err)
	}
	if err == nil {
		if err := s.shares.UpdateAccessByID(ctx, nil, existing.ID, accessType); err != nil {
			return models.ShareGrant{}, newAppError(http.StatusInternalServerError, "failed to update share grant", err)
		}
		existing.AccessType = accessType
		return existing, nil
	}

	grant := models.ShareGrant{
		Key:          key,
		UserID:       target.UserID,
		DepartmentID: target.DepartmentID,
		JobProfileID: target.JobProfileID,
		AccessType:   accessType,
		SharedByID:   sharedByID,
	}
	if err := s.shares.Create(ctx, nil, &grant); err != nil {
		return models.ShareGrant{}, newAppError(http.StatusInternalServerError, "failed to create share grant", err)
	}
	return grant, nil
}

// checkKeyExists resolves a grant key to a catalog record: a folder for
// separator-terminated keys, otherwise a file by exact key with an
// external-link fallback by split path and name.
func (s *sharingService) checkKeyExists(ctx context.Context, key string) error {
	if IsDirKey(key) {
		if _, err := s.folders.GetByPath(ctx, nil, key); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newAppError(http.StatusNotFound, "file or folder not found", nil)
			}
			return newAppError(http.StatusInternalServerError, "failed to resolve shared resource", err)
		}
		return nil
	}

	_, err := s.files.GetByKey(ctx, nil, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return newAppError(http.StatusInternalServerError, "failed to resolve shared resource", err)
	}

	parts := SplitKey(key)
	if _, err := s.links.GetByNameAndPath(ctx, nil, parts.Name, parts.Dir); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "file or folder not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to resolve shared resource", err)
	}
	return nil
}

func (s *sharingService) Unshare(ctx context.Context, key string, target ShareTarget) error {
	if key == "" {
		return newAppError(http.StatusBadRequest, "key is required", nil)
	}
	if err := target.validate(); err != nil {
		return err
	}

	affected, err := s.shares.DeleteByKeyAndTarget(ctx, nil, key, target.repoTarget())
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to revoke share grant", err)
	}
	if affected == 0 {
		return newAppError(http.StatusNotFound, "share grant not found", nil)
	}
	return nil
}

func (s *sharingService) SharedWithCaller(ctx context.Context, caller Caller) ([]SharedResource, error) {
	grants, err := s.shares.ListForCaller(ctx, nil, caller.UserID, caller.DepartmentID, caller.JobProfileID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list share grants", err)
	}

	resources := []SharedResource{}
	userIDs := map[uint]struct{}{}
	for _, g := range grants {
		userIDs[g.SharedByID] = struct{}{}
	}

	type resolved struct {
		kind   string
		owner  uint
		file   *models.FileRecord
		folder *models.Folder
		link   *models.ExternalLink
	}
	resolvedByGrant := make([]resolved, 0, len(grants))
	kept := make([]models.ShareGrant, 0, len(grants))

	for _, g := range grants {
		if IsDirKey(g.Key) {
			folder, err := s.folders.GetByPath(ctx, nil, g.Key)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return nil, newAppError(http.StatusInternalServerError, "failed to resolve shared folder", err)
			}
			if folder.UserID == caller.UserID {
				continue
			}
			f := folder
			resolvedByGrant = append(resolvedByGrant, resolved{kind: "folder", owner: f.UserID, folder: &f})
			kept = append(kept, g)
			userIDs[f.UserID] = struct{}{}
			continue
		}

		file, err := s.files.GetByKey(ctx, nil, g.Key)
		if err == nil {
			if file.UserID == caller.UserID {
				continue
			}
			f := file
			resolvedByGrant = append(resolvedByGrant, resolved{kind: "file", owner: f.UserID, file: &f})
			kept = append(kept, g)
			userIDs[f.UserID] = struct{}{}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusInternalServerError, "failed to resolve shared file", err)
		}

		parts := SplitKey(g.Key)
		link, err := s.links.GetByNameAndPath(ctx, nil, parts.Name, parts.Dir)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, newAppError(http.StatusInternalServerError, "failed to resolve shared link", err)
		}
		if link.UserID == caller.UserID {
			continue
		}
		l := link
		resolvedByGrant = append(resolvedByGrant, resolved{kind: "link", owner: l.UserID, link: &l})
		kept = append(kept, g)
		userIDs[l.UserID] = struct{}{}
	}

	ids := make([]uint, 0, len(userIDs))
	for id := range userIDs {
		ids = append(ids, id)
	}
	names, err := s.users.NamesByIDs(ctx, nil, ids)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to resolve user names", err)
	}

	for i, g := range kept {
		r := resolvedByGrant[i]
		resource := SharedResource{
			Kind:       r.kind,
			Key:        g.Key,
			AccessType: g.AccessType,
			SharedBy:   names[g.SharedByID],
			Owner:      names[r.owner],
			File:       r.file,
			Folder:     r.folder,
			Link:       r.link,
		}
		resources = append(resources, resource)
	}
	return resources, nil
}

func (s *sharingService) GrantsForKey(ctx context.Context, key string) (KeyGrants, error) {
	if key == "" {
		return KeyGrants{}, newAppError(http.StatusBadRequest, "key is required", nil)
	}

	grants, err := s.shares.ListByKey(ctx, nil, key)
	if err != nil {
		return KeyGrants{}, newAppError(http.StatusInternalServerError, "failed to list share grants", err)
	}

	out := KeyGrants{
		Key:         key,
		Users:       []models.ShareGrant{},
		Departments: []models.ShareGrant{},
		JobProfiles: []models.ShareGrant{},
	}
	for _, g := range grants {
		switch {
		case g.UserID != nil:
			out.Users = append(out.Users, g)
		case g.DepartmentID != nil:
			out.Departments = append(out.Departments, g)
		case g.JobProfileID != nil:
			out.JobProfiles = append(out.JobProfiles, g)
		}
	}
	return out, nil
}
