package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"
	"github.com/mdowais-techno/team-hub-server/storage"

	"gorm.io/gorm"
)

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeObjectStore struct {
	objects map[string][]byte
	copies  []string
	deletes []string
	puts    []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (s *fakeObjectStore) List(_ context.Context, prefix string) ([]storage.Object, error) {
	var out []storage.Object
	for key, body := range s.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.Object{Key: key, Size: int64(len(body)), LastModified: time.Now()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *fakeObjectStore) Put(_ context.Context, key string, body []byte, _ string) error {
	s.objects[key] = body
	s.puts = append(s.puts, key)
	return nil
}

func (s *fakeObjectStore) Copy(_ context.Context, sourceKey, destKey string) error {
	s.objects[destKey] = s.objects[sourceKey]
	s.copies = append(s.copies, sourceKey+" -> "+destKey)
	return nil
}

func (s *fakeObjectStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deletes = append(s.deletes, key)
	return nil
}

func (s *fakeObjectStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/get/" + key, nil
}

func (s *fakeObjectStore) PresignPut(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/put/" + key, nil
}

type fakeFolderRepo struct {
	folders map[uint]models.Folder
	nextID  uint
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: map[uint]models.Folder{}, nextID: 1}
}

func (r *fakeFolderRepo) sorted() []models.Folder {
	out := make([]models.Folder, 0, len(r.folders))
	for _, f := range r.folders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeFolderRepo) GetByPath(_ context.Context, _ *gorm.DB, path string) (models.Folder, error) {
	for _, f := range r.folders {
		if f.Path == path {
			return f, nil
		}
	}
	return models.Folder{}, gorm.ErrRecordNotFound
}

func (r *fakeFolderRepo) ListByParentAndUser(_ context.Context, _ *gorm.DB, parent string, userID uint) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.sorted() {
		if f.Parent == parent && f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) ListByPaths(_ context.Context, _ *gorm.DB, paths []string) ([]models.Folder, error) {
	want := map[string]struct{}{}
	for _, p := range paths {
		want[p] = struct{}{}
	}
	var out []models.Folder
	for _, f := range r.sorted() {
		if _, ok := want[f.Path]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) ListByPathPrefix(_ context.Context, _ *gorm.DB, prefix string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.sorted() {
		if strings.HasPrefix(f.Path, prefix) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) Upsert(_ context.Context, _ *gorm.DB, folder *models.Folder) error {
	for id, f := range r.folders {
		if f.Path == folder.Path && f.UserID == folder.UserID {
			f.Name = folder.Name
			f.Parent = folder.Parent
			r.folders[id] = f
			folder.ID = id
			return nil
		}
	}
	folder.ID = r.nextID
	r.nextID++
	r.folders[folder.ID] = *folder
	return nil
}

func (r *fakeFolderRepo) UpdateByID(_ context.Context, _ *gorm.DB, folderID uint, updates map[string]interface{}) error {
	f, ok := r.folders[folderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		f.Name = v.(string)
	}
	if v, ok := updates["path"]; ok {
		f.Path = v.(string)
	}
	if v, ok := updates["parent"]; ok {
		f.Parent = v.(string)
	}
	r.folders[folderID] = f
	return nil
}

func (r *fakeFolderRepo) DeleteByPathPrefix(_ context.Context, _ *gorm.DB, prefix string) error {
	for id, f := range r.folders {
		if strings.HasPrefix(f.Path, prefix) {
			delete(r.folders, id)
		}
	}
	return nil
}

func (r *fakeFolderRepo) CountByParent(_ context.Context, _ *gorm.DB, parent string) (int64, error) {
	var n int64
	for _, f := range r.folders {
		if f.Parent == parent {
			n++
		}
	}
	return n, nil
}

type fakeFileRepo struct {
	files  map[uint]models.FileRecord
	nextID uint
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[uint]models.FileRecord{}, nextID: 1}
}

func (r *fakeFileRepo) sorted() []models.FileRecord {
	out := make([]models.FileRecord, 0, len(r.files))
	for _, f := range r.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeFileRepo) GetByKey(_ context.Context, _ *gorm.DB, key string) (models.FileRecord, error) {
	for _, f := range r.files {
		if f.Key == key {
			return f, nil
		}
	}
	return models.FileRecord{}, gorm.ErrRecordNotFound
}

func (r *fakeFileRepo) ListByPathAndUser(_ context.Context, _ *gorm.DB, path string, userID uint) ([]models.FileRecord, error) {
	var out []models.FileRecord
	for _, f := range r.sorted() {
		if f.Path == path && f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) ListSharedAtPath(_ context.Context, _ *gorm.DB, keys []string, path string, excludeUserID uint) ([]models.FileRecord, error) {
	want := map[string]struct{}{}
	for _, k := range keys {
		want[k] = struct{}{}
	}
	var out []models.FileRecord
	for _, f := range r.sorted() {
		if _, ok := want[f.Key]; !ok {
			continue
		}
		if f.Path == path && f.UserID != excludeUserID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) ListByKeyPrefix(_ context.Context, _ *gorm.DB, prefix string) ([]models.FileRecord, error) {
	var out []models.FileRecord
	for _, f := range r.sorted() {
		if strings.HasPrefix(f.Key, prefix) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) Create(_ context.Context, _ *gorm.DB, record *models.FileRecord) error {
	record.ID = r.nextID
	r.nextID++
	r.files[record.ID] = *record
	return nil
}

func (r *fakeFileRepo) UpdateByID(_ context.Context, _ *gorm.DB, recordID uint, updates map[string]interface{}) error {
	f, ok := r.files[recordID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyFileUpdates(&f, updates)
	r.files[recordID] = f
	return nil
}

func (r *fakeFileRepo) UpdateByKey(_ context.Context, _ *gorm.DB, key string, updates map[string]interface{}) error {
	for id, f := range r.files {
		if f.Key == key {
			applyFileUpdates(&f, updates)
			r.files[id] = f
		}
	}
	return nil
}

func applyFileUpdates(f *models.FileRecord, updates map[string]interface{}) {
	if v, ok := updates["name"]; ok {
		f.Name = v.(string)
	}
	if v, ok := updates["key"]; ok {
		f.Key = v.(string)
	}
	if v, ok := updates["path"]; ok {
		f.Path = v.(string)
	}
	if v, ok := updates["type"]; ok {
		f.Type = v.(string)
	}
	if v, ok := updates["size"]; ok {
		f.Size = v.(int64)
	}
}

func (r *fakeFileRepo) DeleteByKey(_ context.Context, _ *gorm.DB, key string) error {
	for id, f := range r.files {
		if f.Key == key {
			delete(r.files, id)
		}
	}
	return nil
}

func (r *fakeFileRepo) DeleteByKeyPrefix(_ context.Context, _ *gorm.DB, prefix string) error {
	for id, f := range r.files {
		if strings.HasPrefix(f.Key, prefix) {
			delete(r.files, id)
		}
	}
	return nil
}

func (r *fakeFileRepo) CountByPath(_ context.Context, _ *gorm.DB, path string) (int64, error) {
	var n int64
	for _, f := range r.files {
		if f.Path == path {
			n++
		}
	}
	return n, nil
}

type fakeLinkRepo struct {
	links  map[uint]models.ExternalLink
	nextID uint
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[uint]models.ExternalLink{}, nextID: 1}
}

func (r *fakeLinkRepo) sorted() []models.ExternalLink {
	out := make([]models.ExternalLink, 0, len(r.links))
	for _, l := range r.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeLinkRepo) GetByNameAndPath(_ context.Context, _ *gorm.DB, name, path string) (models.ExternalLink, error) {
	for _, l := range r.links {
		if l.Name == name && l.Path == path {
			return l, nil
		}
	}
	return models.ExternalLink{}, gorm.ErrRecordNotFound
}

func (r *fakeLinkRepo) ListByPathAndUser(_ context.Context, _ *gorm.DB, path string, userID uint) ([]models.ExternalLink, error) {
	var out []models.ExternalLink
	for _, l := range r.sorted() {
		if l.Path == path && l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) ListByPathPrefix(_ context.Context, _ *gorm.DB, prefix string) ([]models.ExternalLink, error) {
	var out []models.ExternalLink
	for _, l := range r.sorted() {
		if strings.HasPrefix(l.Path, prefix) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) Create(_ context.Context, _ *gorm.DB, link *models.ExternalLink) error {
	link.ID = r.nextID
	r.nextID++
	r.links[link.ID] = *link
	return nil
}

func (r *fakeLinkRepo) UpdateByID(_ context.Context, _ *gorm.DB, linkID uint, updates map[string]interface{}) error {
	l, ok := r.links[linkID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		l.Name = v.(string)
	}
	if v, ok := updates["url"]; ok {
		l.URL = v.(string)
	}
	if v, ok := updates["path"]; ok {
		l.Path = v.(string)
	}
	r.links[linkID] = l
	return nil
}

func (r *fakeLinkRepo) DeleteByID(_ context.Context, _ *gorm.DB, linkID uint) error {
	delete(r.links, linkID)
	return nil
}

func (r *fakeLinkRepo) DeleteByPathPrefix(_ context.Context, _ *gorm.DB, prefix string) error {
	for id, l := range r.links {
		if strings.HasPrefix(l.Path, prefix) {
			delete(r.links, id)
		}
	}
	return nil
}

type fakeShareRepo struct {
	grants map[uint]models.ShareGrant
	nextID uint
}

func newFakeShareRepo() *fakeShareRepo {
	return &fakeShareRepo{grants: map[uint]models.ShareGrant{}, nextID: 1}
}

func (r *fakeShareRepo) sorted() []models.ShareGrant {
	out := make([]models.ShareGrant, 0, len(r.grants))
	for _, g := range r.grants {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func matchTarget(g models.ShareGrant, target repositories.ShareTarget) bool {
	switch {
	case target.UserID != nil:
		return g.UserID != nil && *g.UserID == *target.UserID
	case target.DepartmentID != nil:
		return g.DepartmentID != nil && *g.DepartmentID == *target.DepartmentID
	case target.JobProfileID != nil:
		return g.JobProfileID != nil && *g.JobProfileID == *target.JobProfileID
	}
	return false
}

func (r *fakeShareRepo) GetByKeyAndTarget(_ context.Context, _ *gorm.DB, key string, target repositories.ShareTarget) (models.ShareGrant, error) {
	for _, g := range r.grants {
		if g.Key == key && matchTarget(g, target) {
			return g, nil
		}
	}
	return models.ShareGrant{}, gorm.ErrRecordNotFound
}

func (r *fakeShareRepo) ListForCaller(_ context.Context, _ *gorm.DB, userID uint, departmentID, jobProfileID *uint) ([]models.ShareGrant, error) {
	var out []models.ShareGrant
	for _, g := range r.sorted() {
		if g.UserID != nil && *g.UserID == userID {
			out = append(out, g)
			continue
		}
		if g.DepartmentID != nil && departmentID != nil && *g.DepartmentID == *departmentID {
			out = append(out, g)
			continue
		}
		if g.JobProfileID != nil && jobProfileID != nil && *g.JobProfileID == *jobProfileID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeShareRepo) ListByKey(_ context.Context, _ *gorm.DB, key string) ([]models.ShareGrant, error) {
	var out []models.ShareGrant
	for _, g := range r.sorted() {
		if g.Key == key {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeShareRepo) Create(_ context.Context, _ *gorm.DB, grant *models.ShareGrant) error {
	grant.ID = r.nextID
	r.nextID++
	r.grants[grant.ID] = *grant
	return nil
}

func (r *fakeShareRepo) UpdateAccessByID(_ context.Context, _ *gorm.DB, grantID uint, accessType string) error {
	g, ok := r.grants[grantID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.AccessType = accessType
	r.grants[grantID] = g
	return nil
}

func (r *fakeShareRepo) DeleteByKeyAndTarget(_ context.Context, _ *gorm.DB, key string, target repositories.ShareTarget) (int64, error) {
	var affected int64
	for id, g := range r.grants {
		if g.Key == key && matchTarget(g, target) {
			delete(r.grants, id)
			affected++
		}
	}
	return affected, nil
}

func (r *fakeShareRepo) DeleteByKey(_ context.Context, _ *gorm.DB, key string) error {
	for id, g := range r.grants {
		if g.Key == key {
			delete(r.grants, id)
		}
	}
	return nil
}

func (r *fakeShareRepo) DeleteByKeyPrefix(_ context.Context, _ *gorm.DB, prefix string) error {
	for id, g := range r.grants {
		if strings.HasPrefix(g.Key, prefix) {
			delete(r.grants, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}, nextID: 1}
}

func (r *fakeUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID uint, _ bool) (models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ *gorm.DB, in repositories.ListUsersInput) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if in.Role != "" && u.Role != in.Role {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, _ *gorm.DB, userID uint, updates map[string]interface{}) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := updates["phone"]; ok {
		u.Phone = v.(string)
	}
	if v, ok := updates["role"]; ok {
		u.Role = v.(string)
	}
	if v, ok := updates["status"]; ok {
		u.Status = v.(string)
	}
	if v, ok := updates["password"]; ok {
		u.Password = v.(string)
	}
	if v, ok := updates["last_login"]; ok {
		t := v.(time.Time)
		u.LastLogin = &t
	}
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) NamesByIDs(_ context.Context, _ *gorm.DB, userIDs []uint) (map[uint]string, error) {
	out := map[uint]string{}
	for _, id := range userIDs {
		if u, ok := r.users[id]; ok {
			out[id] = u.Name
		}
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	departments map[uint]models.Department
	nextID      uint
}

func stubDepartments() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[uint]models.Department{}, nextID: 1}
}

func (r *fakeDepartmentRepo) Count(_ context.Context, _ *gorm.DB, _ string) (int64, error) {
	return int64(len(r.departments)), nil
}

func (r *fakeDepartmentRepo) List(_ context.Context, _ *gorm.DB, _ repositories.ListInput) ([]models.Department, error) {
	out := make([]models.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, _ *gorm.DB, departmentID uint) (models.Department, error) {
	d, ok := r.departments[departmentID]
	if !ok {
		return models.Department{}, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeDepartmentRepo) CountByName(_ context.Context, _ *gorm.DB, name string, excludeID uint) (int64, error) {
	var n int64
	for _, d := range r.departments {
		if d.Name == name && d.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeDepartmentRepo) Create(_ context.Context, _ *gorm.DB, department *models.Department) error {
	department.ID = r.nextID
	r.nextID++
	r.departments[department.ID] = *department
	return nil
}

func (r *fakeDepartmentRepo) UpdateByID(_ context.Context, _ *gorm.DB, departmentID uint, updates map[string]interface{}) error {
	d, ok := r.departments[departmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		d.Name = v.(string)
	}
	if v, ok := updates["status"]; ok {
		d.Status = v.(string)
	}
	r.departments[departmentID] = d
	return nil
}

func (r *fakeDepartmentRepo) DeleteByID(_ context.Context, _ *gorm.DB, departmentID uint) error {
	delete(r.departments, departmentID)
	return nil
}

func (r *fakeDepartmentRepo) EmployeeCounts(_ context.Context, _ *gorm.DB, departmentIDs []uint) (map[uint]int64, error) {
	out := map[uint]int64{}
	for _, id := range departmentIDs {
		out[id] = 0
	}
	return out, nil
}

type fakeJobProfileRepo struct {
	profiles map[uint]models.JobProfile
	nextID   uint
}

func stubJobProfiles() *fakeJobProfileRepo {
	return &fakeJobProfileRepo{profiles: map[uint]models.JobProfile{}, nextID: 1}
}

func (r *fakeJobProfileRepo) Count(_ context.Context, _ *gorm.DB, _ string) (int64, error) {
	return int64(len(r.profiles)), nil
}

func (r *fakeJobProfileRepo) List(_ context.Context, _ *gorm.DB, _ repositories.ListInput) ([]models.JobProfile, error) {
	out := make([]models.JobProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeJobProfileRepo) GetByID(_ context.Context, _ *gorm.DB, jobProfileID uint) (models.JobProfile, error) {
	p, ok := r.profiles[jobProfileID]
	if !ok {
		return models.JobProfile{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeJobProfileRepo) Create(_ context.Context, _ *gorm.DB, profile *models.JobProfile) error {
	profile.ID = r.nextID
	r.nextID++
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeJobProfileRepo) Save(_ context.Context, _ *gorm.DB, profile *models.JobProfile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeJobProfileRepo) DeleteByID(_ context.Context, _ *gorm.DB, jobProfileID uint) error {
	delete(r.profiles, jobProfileID)
	return nil
}

type documentFixture struct {
	store       *fakeObjectStore
	folders     *fakeFolderRepo
	files       *fakeFileRepo
	links       *fakeLinkRepo
	shares      *fakeShareRepo
	users       *fakeUserRepo
	departments *fakeDepartmentRepo
	jobProfiles *fakeJobProfileRepo
	service     DocumentService
	sharing     SharingService
}

func newDocumentFixture() *documentFixture {
	f := &documentFixture{
		store:       newFakeObjectStore(),
		folders:     newFakeFolderRepo(),
		files:       newFakeFileRepo(),
		links:       newFakeLinkRepo(),
		shares:      newFakeShareRepo(),
		users:       newFakeUserRepo(),
		departments: stubDepartments(),
		jobProfiles: stubJobProfiles(),
	}
	repos := &repositories.Container{
		TxManager:   fakeTxManager{},
		Users:       f.users,
		Departments: f.departments,
		JobProfiles: f.jobProfiles,
		Folders:     f.folders,
		Files:       f.files,
		Links:       f.links,
		Shares:      f.shares,
	}
	f.service = NewDocumentService(fakeTxManager{}, f.store, NewMemoryPathLocker(), repos, DocumentServiceConfig{
		ViewURLExpiry:   30 * time.Minute,
		UploadURLExpiry: 5 * time.Minute,
		MaxImageBytes:   10 << 20,
	})
	f.sharing = NewSharingService(repos)
	return f
}
