package services

import (
	"context"
	"testing"

	"github.com/mdowais-techno/team-hub-server/models"
)

func seedDepartment(t *testing.T, f *documentFixture, name string) uint {
	t.Helper()
	department := models.Department{Name: name, Status: "active"}
	if err := f.departments.Create(context.Background(), nil, &department); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	return department.ID
}

func seedJobProfile(t *testing.T, f *documentFixture, title string) uint {
	t.Helper()
	profile := models.JobProfile{Title: title}
	if err := f.jobProfiles.Create(context.Background(), nil, &profile); err != nil {
		t.Fatalf("seed job profile: %v", err)
	}
	return profile.ID
}

func TestShareUpsertsByKeyAndTarget(t *testing.T) {
	f := newDocumentFixture()
	seedFile(t, f, 1, "docs/report.pdf", 10)
	target := uint(7)

	first, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{UserID: &target}, models.AccessViewer)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}

	second, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{UserID: &target}, models.AccessEditor)
	if err != nil {
		t.Fatalf("Share again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("re-share created a new grant: %d vs %d", second.ID, first.ID)
	}
	if len(f.shares.grants) != 1 {
		t.Fatalf("expected one grant, got %d", len(f.shares.grants))
	}
	if got := f.shares.grants[first.ID].AccessType; got != models.AccessEditor {
		t.Fatalf("access type = %q, want %q", got, models.AccessEditor)
	}
}

func TestShareToDifferentTargetsCreatesSeparateGrants(t *testing.T) {
	f := newDocumentFixture()
	seedFile(t, f, 1, "docs/report.pdf", 10)
	user := uint(7)
	department := seedDepartment(t, f, "Engineering")

	if _, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{UserID: &user}, models.AccessViewer); err != nil {
		t.Fatalf("Share user: %v", err)
	}
	if _, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{DepartmentID: &department}, models.AccessViewer); err != nil {
		t.Fatalf("Share department: %v", err)
	}
	if len(f.shares.grants) != 2 {
		t.Fatalf("expected two grants, got %d", len(f.shares.grants))
	}
}

func TestShareRejectsAmbiguousTarget(t *testing.T) {
	f := newDocumentFixture()
	user := uint(7)
	department := uint(3)

	_, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{UserID: &user, DepartmentID: &department}, models.AccessViewer)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 400 {
		t.Fatalf("expected 400 AppError, got %v", err)
	}

	_, err = f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{}, models.AccessViewer)
	appErr, ok = err.(*AppError)
	if !ok || appErr.HTTPCode != 400 {
		t.Fatalf("expected 400 AppError for empty target, got %v", err)
	}
}

func TestShareUnknownResourceNotFound(t *testing.T) {
	f := newDocumentFixture()
	target := uint(7)

	_, err := f.sharing.Share(context.Background(), 1, "ghost/nothing.pdf", ShareTarget{UserID: &target}, models.AccessViewer)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError for unknown key, got %v", err)
	}
	if len(f.shares.grants) != 0 {
		t.Fatalf("grant must not be created for an unknown key: %+v", f.shares.grants)
	}

	_, err = f.sharing.Share(context.Background(), 1, "ghost/", ShareTarget{UserID: &target}, models.AccessViewer)
	appErr, ok = err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError for unknown folder, got %v", err)
	}
	if len(f.shares.grants) != 0 {
		t.Fatalf("grant must not be created for an unknown folder: %+v", f.shares.grants)
	}
}

func TestShareUnknownDepartmentNotFound(t *testing.T) {
	f := newDocumentFixture()
	seedFile(t, f, 1, "docs/report.pdf", 10)
	ghost := uint(99)

	_, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{DepartmentID: &ghost}, models.AccessViewer)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError for unknown department, got %v", err)
	}
	if len(f.shares.grants) != 0 {
		t.Fatalf("grant must not be created for an unknown department: %+v", f.shares.grants)
	}
}

func TestShareUnknownJobProfileNotFound(t *testing.T) {
	f := newDocumentFixture()
	seedFile(t, f, 1, "docs/report.pdf", 10)
	ghost := uint(99)

	_, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{JobProfileID: &ghost}, models.AccessViewer)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError for unknown job profile, got %v", err)
	}
	if len(f.shares.grants) != 0 {
		t.Fatalf("grant must not be created for an unknown job profile: %+v", f.shares.grants)
	}
}

func TestShareResolvesExternalLinkKey(t *testing.T) {
	f := newDocumentFixture()
	link := models.ExternalLink{Name: "wiki", URL: "https://example.com", Path: "docs/", UserID: 1}
	if err := f.links.Create(context.Background(), nil, &link); err != nil {
		t.Fatalf("seed link: %v", err)
	}
	target := uint(7)

	grant, err := f.sharing.Share(context.Background(), 1, "docs/wiki", ShareTarget{UserID: &target}, models.AccessViewer)
	if err != nil {
		t.Fatalf("Share link: %v", err)
	}
	if grant.Key != "docs/wiki" {
		t.Fatalf("grant key = %q", grant.Key)
	}
}

func TestUnshareNotFound(t *testing.T) {
	f := newDocumentFixture()
	seedFile(t, f, 1, "docs/report.pdf", 10)
	target := uint(7)

	err := f.sharing.Unshare(context.Background(), "docs/report.pdf", ShareTarget{UserID: &target})
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}

	if _, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", ShareTarget{UserID: &target}, models.AccessViewer); err != nil {
		t.Fatalf("Share: %v", err)
	}
	if err := f.sharing.Unshare(context.Background(), "docs/report.pdf", ShareTarget{UserID: &target}); err != nil {
		t.Fatalf("Unshare: %v", err)
	}
	if len(f.shares.grants) != 0 {
		t.Fatalf("grant not removed")
	}
}

func TestSharedWithCallerMatchesDepartment(t *testing.T) {
	f := newDocumentFixture()
	owner := models.User{Name: "Owner", Email: "owner@example.com"}
	f.users.Create(context.Background(), nil, &owner)

	record := seedFile(t, f, owner.ID, "docs/report.pdf", 10)

	d1 := seedDepartment(t, f, "Engineering")
	d2 := seedDepartment(t, f, "Finance")
	if _, err := f.sharing.Share(context.Background(), owner.ID, record.Key, ShareTarget{DepartmentID: &d1}, models.AccessViewer); err != nil {
		t.Fatalf("Share: %v", err)
	}

	sameDept := Caller{UserID: 99, DepartmentID: &d1}
	resources, err := f.sharing.SharedWithCaller(context.Background(), sameDept)
	if err != nil {
		t.Fatalf("SharedWithCaller: %v", err)
	}
	if len(resources) != 1 {
		t.Fatalf("expected one shared resource, got %d", len(resources))
	}
	got := resources[0]
	if got.Kind != "file" || got.Key != record.Key || got.SharedBy != "Owner" {
		t.Fatalf("unexpected resource: %+v", got)
	}

	otherDept := Caller{UserID: 99, DepartmentID: &d2}
	resources, err = f.sharing.SharedWithCaller(context.Background(), otherDept)
	if err != nil {
		t.Fatalf("SharedWithCaller: %v", err)
	}
	if len(resources) != 0 {
		t.Fatalf("different department must not see the file: %+v", resources)
	}
}

func TestSharedWithCallerSkipsOwnResources(t *testing.T) {
	f := newDocumentFixture()
	owner := models.User{Name: "Owner", Email: "owner@example.com"}
	f.users.Create(context.Background(), nil, &owner)

	record := seedFile(t, f, owner.ID, "docs/report.pdf", 10)
	if _, err := f.sharing.Share(context.Background(), owner.ID, record.Key, ShareTarget{UserID: &owner.ID}, models.AccessViewer); err != nil {
		t.Fatalf("Share: %v", err)
	}

	resources, err := f.sharing.SharedWithCaller(context.Background(), Caller{UserID: owner.ID})
	if err != nil {
		t.Fatalf("SharedWithCaller: %v", err)
	}
	if len(resources) != 0 {
		t.Fatalf("owner must not see own resource as shared: %+v", resources)
	}
}

func TestGrantsForKeyGroupsByTargetKind(t *testing.T) {
	f := newDocumentFixture()
	seedFile(t, f, 1, "docs/report.pdf", 10)
	user := uint(7)
	department := seedDepartment(t, f, "Engineering")
	profile := seedJobProfile(t, f, "Backend Engineer")

	for _, target := range []ShareTarget{
		{UserID: &user},
		{DepartmentID: &department},
		{JobProfileID: &profile},
	} {
		if _, err := f.sharing.Share(context.Background(), 1, "docs/report.pdf", target, models.AccessViewer); err != nil {
			t.Fatalf("Share: %v", err)
		}
	}

	grants, err := f.sharing.GrantsForKey(context.Background(), "docs/report.pdf")
	if err != nil {
		t.Fatalf("GrantsForKey: %v", err)
	}
	if len(grants.Users) != 1 || len(grants.Departments) != 1 || len(grants.JobProfiles) != 1 {
		t.Fatalf("grouping wrong: %+v", grants)
	}
}

func TestSharedWithCallerResolvesFolder(t *testing.T) {
	f := newDocumentFixture()
	owner := models.User{Name: "Owner", Email: "owner@example.com"}
	f.users.Create(context.Background(), nil, &owner)

	seedFolder(t, f, owner.ID, "docs/")

	viewer := uint(42)
	if _, err := f.sharing.Share(context.Background(), owner.ID, "docs/", ShareTarget{UserID: &viewer}, models.AccessEditor); err != nil {
		t.Fatalf("Share: %v", err)
	}

	resources, err := f.sharing.SharedWithCaller(context.Background(), Caller{UserID: viewer})
	if err != nil {
		t.Fatalf("SharedWithCaller: %v", err)
	}
	if len(resources) != 1 || resources[0].Kind != "folder" {
		t.Fatalf("expected one folder resource, got %+v", resources)
	}
	if resources[0].AccessType != models.AccessEditor {
		t.Fatalf("access type = %q", resources[0].AccessType)
	}
}
