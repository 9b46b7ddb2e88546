package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ListUsersInput struct {
	DepartmentID *uint
	Role         string
	Status       string
	Search       string
	Offset       int
	Limit        int
}

type UserRepository interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint, preload bool) (models.User, error)
	List(ctx context.Context, tx *gorm.DB, in ListUsersInput) ([]models.User, int64, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, userID uint, updates map[string]interface{}) error
	NamesByIDs(ctx context.Context, tx *gorm.DB, userIDs []uint) (map[uint]string, error)
}

type ListInput struct {
	Search string
	Offset int
	Limit  int
}

type DepartmentRepository interface {
	Count(ctx context.Context, tx *gorm.DB, search string) (int64, error)
	List(ctx context.Context, tx *gorm.DB, in ListInput) ([]models.Department, error)
	GetByID(ctx context.Context, tx *gorm.DB, departmentID uint) (models.Department, error)
	CountByName(ctx context.Context, tx *gorm.DB, name string, excludeID uint) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, department *models.Department) error
	UpdateByID(ctx context.Context, tx *gorm.DB, departmentID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, departmentID uint) error
	EmployeeCounts(ctx context.Context, tx *gorm.DB, departmentIDs []uint) (map[uint]int64, error)
}

type JobProfileRepository interface {
	Count(ctx context.Context, tx *gorm.DB, search string) (int64, error)
	List(ctx context.Context, tx *gorm.DB, in ListInput) ([]models.JobProfile, error)
	GetByID(ctx context.Context, tx *gorm.DB, jobProfileID uint) (models.JobProfile, error)
	Create(ctx context.Context, tx *gorm.DB, profile *models.JobProfile) error
	Save(ctx context.Context, tx *gorm.DB, profile *models.JobProfile) error
	DeleteByID(ctx context.Context, tx *gorm.DB, jobProfileID uint) error
}

type ListEmployeesInput struct {
	DepartmentID *uint
	Status       string
	Search       string
	Offset       int
	Limit        int
}

type EmployeeRepository interface {
	Count(ctx context.Context, tx *gorm.DB, in ListEmployeesInput) (int64, error)
	List(ctx context.Context, tx *gorm.DB, in ListEmployeesInput) ([]models.Employee, error)
	GetByID(ctx context.Context, tx *gorm.DB, employeeID uint) (models.Employee, error)
	CountByEmail(ctx context.Context, tx *gorm.DB, email string, excludeID uint) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, employee *models.Employee) error
	UpdateByID(ctx context.Context, tx *gorm.DB, employeeID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, employeeID uint) error
	CountByStatus(ctx context.Context, tx *gorm.DB) (map[string]int64, error)
}

type OnboardingRepository interface {
	Count(ctx context.Context, tx *gorm.DB, search string) (int64, error)
	List(ctx context.Context, tx *gorm.DB, in ListInput) ([]models.Onboarding, error)
	GetByID(ctx context.Context, tx *gorm.DB, onboardingID uint) (models.Onboarding, error)
	Create(ctx context.Context, tx *gorm.DB, onboarding *models.Onboarding) error
	Save(ctx context.Context, tx *gorm.DB, onboarding *models.Onboarding) error
	ReplaceTasks(ctx context.Context, tx *gorm.DB, onboardingID uint, tasks []models.OnboardingTask) error
	DeleteByID(ctx context.Context, tx *gorm.DB, onboardingID uint) error
}

type OnboardingTemplateRepository interface {
	Count(ctx context.Context, tx *gorm.DB, search string) (int64, error)
	List(ctx context.Context, tx *gorm.DB, in ListInput) ([]models.OnboardingTemplate, error)
	GetByID(ctx context.Context, tx *gorm.DB, templateID uint) (models.OnboardingTemplate, error)
	Create(ctx context.Context, tx *gorm.DB, template *models.OnboardingTemplate) error
	Save(ctx context.Context, tx *gorm.DB, template *models.OnboardingTemplate) error
	ReplaceTasks(ctx context.Context, tx *gorm.DB, templateID uint, tasks []models.TemplateTask) error
	DeleteByID(ctx context.Context, tx *gorm.DB, templateID uint) error
}

type FolderRepository interface {
	GetByPath(ctx context.Context, tx *gorm.DB, path string) (models.Folder, error)
	ListByParentAndUser(ctx context.Context, tx *gorm.DB, parent string, userID uint) ([]models.Folder, error)
	ListByPaths(ctx context.Context, tx *gorm.DB, paths []string) ([]models.Folder, error)
	ListByPathPrefix(ctx context.Context, tx *gorm.DB, prefix string) ([]models.Folder, error)
	Upsert(ctx context.Context, tx *gorm.DB, folder *models.Folder) error
	UpdateByID(ctx context.Context, tx *gorm.DB, folderID uint, updates map[string]interface{}) error
	DeleteByPathPrefix(ctx context.Context, tx *gorm.DB, prefix string) error
	CountByParent(ctx context.Context, tx *gorm.DB, parent string) (int64, error)
}

type FileRecordRepository interface {
	GetByKey(ctx context.Context, tx *gorm.DB, key string) (models.FileRecord, error)
	ListByPathAndUser(ctx context.Context, tx *gorm.DB, path string, userID uint) ([]models.FileRecord, error)
	ListSharedAtPath(ctx context.Context, tx *gorm.DB, keys []string, path string, excludeUserID uint) ([]models.FileRecord, error)
	ListByKeyPrefix(ctx context.Context, tx *gorm.DB, prefix string) ([]models.FileRecord, error)
	Create(ctx context.Context, tx *gorm.DB, record *models.FileRecord) error
	UpdateByID(ctx context.Context, tx *gorm.DB, recordID uint, updates map[string]interface{}) error
	UpdateByKey(ctx context.Context, tx *gorm.DB, key string, updates map[string]interface{}) error
	DeleteByKey(ctx context.Context, tx *gorm.DB, key string) error
	DeleteByKeyPrefix(ctx context.Context, tx *gorm.DB, prefix string) error
	CountByPath(ctx context.Context, tx *gorm.DB, path string) (int64, error)
}

type ExternalLinkRepository interface {
	GetByNameAndPath(ctx context.Context, tx *gorm.DB, name, path string) (models.ExternalLink, error)
	ListByPathAndUser(ctx context.Context, tx *gorm.DB, path string, userID uint) ([]models.ExternalLink, error)
	ListByPathPrefix(ctx context.Context, tx *gorm.DB, prefix string) ([]models.ExternalLink, error)
	Create(ctx context.Context, tx *gorm.DB, link *models.ExternalLink) error
	UpdateByID(ctx context.Context, tx *gorm.DB, linkID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, linkID uint) error
	DeleteByPathPrefix(ctx context.Context, tx *gorm.DB, prefix string) error
}

// ShareTarget selects exactly one grantee kind.
type ShareTarget struct {
	UserID       *uint
	DepartmentID *uint
	JobProfileID *uint
}

type ShareGrantRepository interface {
	GetByKeyAndTarget(ctx context.Context, tx *gorm.DB, key string, target ShareTarget) (models.ShareGrant, error)
	ListForCaller(ctx context.Context, tx *gorm.DB, userID uint, departmentID, jobProfileID *uint) ([]models.ShareGrant, error)
	ListByKey(ctx context.Context, tx *gorm.DB, key string) ([]models.ShareGrant, error)
	Create(ctx context.Context, tx *gorm.DB, grant *models.ShareGrant) error
	UpdateAccessByID(ctx context.Context, tx *gorm.DB, grantID uint, accessType string) error
	DeleteByKeyAndTarget(ctx context.Context, tx *gorm.DB, key string, target ShareTarget) (int64, error)
	DeleteByKey(ctx context.Context, tx *gorm.DB, key string) error
	DeleteByKeyPrefix(ctx context.Context, tx *gorm.DB, prefix string) error
}

type Container struct {
	TxManager   TxManager
	Users       UserRepository
	Departments DepartmentRepository
	JobProfiles JobProfileRepository
	Employees   EmployeeRepository
	Onboardings OnboardingRepository
	Templates   OnboardingTemplateRepository
	Folders     FolderRepository
	Files       FileRecordRepository
	Links       ExternalLinkRepository
	Shares      ShareGrantRepository
}
