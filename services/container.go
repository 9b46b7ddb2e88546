package services

import (
	"time"

	"github.com/mdowais-techno/team-hub-server/config"
	"github.com/mdowais-techno/team-hub-server/repositories"
	"github.com/mdowais-techno/team-hub-server/storage"
)

// Container wires every service over one repository container.
type Container struct {
	Auth        AuthService
	Users       UserService
	Departments DepartmentService
	JobProfiles JobProfileService
	Employees   EmployeeService
	Onboardings OnboardingService
	Templates   OnboardingTemplateService
	Documents   DocumentService
	Sharing     SharingService
}

func NewContainer(repos *repositories.Container, store storage.ObjectStore, locker PathLocker, cfg *config.Config) *Container {
	docCfg := DocumentServiceConfig{
		ViewURLExpiry:   time.Duration(cfg.Storage.ViewURLExpiry) * time.Second,
		UploadURLExpiry: time.Duration(cfg.Storage.UploadURLExpiry) * time.Second,
		MaxImageBytes:   int64(cfg.Storage.MaxEditedImageMB) << 20,
	}

	return &Container{
		Auth:        NewAuthService(repos.TxManager, repos.Users, repos.Departments),
		Users:       NewUserService(repos.Users),
		Departments: NewDepartmentService(repos.Departments),
		JobProfiles: NewJobProfileService(repos.JobProfiles, repos.Departments),
		Employees:   NewEmployeeService(repos.Employees, repos.Departments, repos.JobProfiles),
		Onboardings: NewOnboardingService(repos.TxManager, repos.Onboardings, repos.Templates, repos.Departments),
		Templates:   NewOnboardingTemplateService(repos.TxManager, repos.Templates),
		Documents:   NewDocumentService(repos.TxManager, store, locker, repos, docCfg),
		Sharing:     NewSharingService(repos),
	}
}
