package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/models"
)

func TestCreateProjectDuplicateNameRejected(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")

	createProject(t, r, session, "Website Redesign")

	w := postForm(r, "/projects/add/", url.Values{
		"name": {"Website Redesign"},
	}, session)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", w.Code)
	}
	if msg := fieldErrors(t, w)["name"]; msg != "A project with this name already exists." {
		t.Fatalf("got name error %q", msg)
	}

	var count int64
	db.DB.Model(&models.Project{}).Count(&count)
	if count != 1 {
		t.Fatalf("got %d projects, want 1", count)
	}
}

func TestCreateProjectNameTooLongRejected(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	w := postForm(r, "/projects/add/", url.Values{"name": {string(long)}}, session)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", w.Code)
	}
	if msg := fieldErrors(t, w)["name"]; msg != "Name cannot exceed 100 characters." {
		t.Fatalf("got name error %q", msg)
	}
}

func TestSameProjectNameAllowedForDifferentOwners(t *testing.T) {
	r := setupServer(t)
	annSession := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")
	bobSession := signupAndLogin(t, r, "Bob", "bob@x.com", "LongEnough1")

	createProject(t, r, annSession, "Website Redesign")

	w := postForm(r, "/projects/add/", url.Values{
		"name": {"Website Redesign"},
	}, bobSession)

	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302: name uniqueness should be per owner", w.Code)
	}
}

func TestEditProjectPersistsDescription(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")
	projectID := createProject(t, r, session, "Website Redesign")

	w := postForm(r, "/projects/"+projectID+"/edit/", url.Values{
		"name":        {"Website Redesign v2"},
		"description": {"now with a new description"},
	}, session)

	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302, body %s", w.Code, w.Body.String())
	}

	var project models.Project
	if err := db.DB.First(&project, "id = ?", projectID).Error; err != nil {
		t.Fatalf("project vanished: %v", err)
	}
	if project.Name != "Website Redesign v2" {
		t.Fatalf("got name %q", project.Name)
	}
	if project.Description != "now with a new description" {
		t.Fatalf("description update lost, got %q", project.Description)
	}
}

func TestForeignProjectIsNotFound(t *testing.T) {
	r := setupServer(t)
	annSession := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")
	bobSession := signupAndLogin(t, r, "Bob", "bob@x.com", "LongEnough1")

	projectID := createProject(t, r, annSession, "Secret Plans")

	if w := get(r, "/projects/"+projectID+"/", bobSession); w.Code != http.StatusNotFound {
		t.Fatalf("foreign project detail: got status %d, want 404", w.Code)
	}

	w := postForm(r, "/projects/"+projectID+"/edit/", url.Values{
		"name": {"Hijacked"},
	}, bobSession)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign project edit: got status %d, want 404", w.Code)
	}

	// A missing id reads exactly like a foreign one.
	if w := get(r, "/projects/00000000-0000-0000-0000-000000000000/", bobSession); w.Code != http.StatusNotFound {
		t.Fatalf("missing project detail: got status %d, want 404", w.Code)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")

	projectID := createProject(t, r, session, "Website Redesign")
	todolistID := createTodolist(t, r, session, projectID, "Launch Checklist")
	createTask(t, r, session, projectID, todolistID, "Write copy")

	note := models.ProjectNote{ProjectID: projectID, Name: "Kickoff", Body: "notes"}
	if err := db.DB.Create(&note).Error; err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}
	file := models.ProjectFile{ProjectID: projectID, Name: "Brief", Attachment: "projects/brief.pdf", Size: 10, ContentType: "application/pdf"}
	if err := db.DB.Create(&file).Error; err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	w := postForm(r, "/projects/"+projectID+"/delete/", url.Values{}, session)
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302, body %s", w.Code, w.Body.String())
	}

	for name, model := range map[string]interface{}{
		"projects":  &models.Project{},
		"todolists": &models.Todolist{},
		"tasks":     &models.Task{},
		"notes":     &models.ProjectNote{},
		"files":     &models.ProjectFile{},
	} {
		var count int64
		db.DB.Model(model).Count(&count)
		if count != 0 {
			t.Fatalf("%d orphaned %s left after project delete", count, name)
		}
	}
}

func TestDeleteProjectViaGetIsRejected(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")
	projectID := createProject(t, r, session, "Website Redesign")

	// The delete URL has no GET handler; nothing may be removed.
	w := get(r, "/projects/"+projectID+"/delete/", session)
	if w.Code == http.StatusFound {
		t.Fatalf("GET delete redirected (%d), destructive GET must not succeed", w.Code)
	}

	var count int64
	db.DB.Model(&models.Project{}).Count(&count)
	if count != 1 {
		t.Fatalf("project deleted via GET")
	}
}

func TestListProjectsOnlyShowsOwn(t *testing.T) {
	r := setupServer(t)
	annSession := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")
	bobSession := signupAndLogin(t, r, "Bob", "bob@x.com", "LongEnough1")

	createProject(t, r, annSession, "Ann Project")
	createProject(t, r, bobSession, "Bob Project")

	w := get(r, "/projects/", annSession)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Ann Project") {
		t.Fatalf("own project missing from list: %s", body)
	}
	if strings.Contains(body, "Bob Project") {
		t.Fatalf("foreign project leaked into list: %s", body)
	}
}
