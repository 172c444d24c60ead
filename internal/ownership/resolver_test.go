package ownership

import (
	"errors"
	"testing"

	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/models"
)

type fixture struct {
	resolver *Resolver
	ann      models.User
	bob      models.User
	project  models.Project
	todolist models.Todolist
	task     models.Task
	note     models.ProjectNote
	file     models.ProjectFile
}

func setup(t *testing.T) *fixture {
	t.Helper()

	if err := db.ConnectTestDatabase(); err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	for _, table := range []string{"tasks", "todolists", "project_notes", "project_files", "projects", "profiles", "users"} {
		db.DB.Exec("DELETE FROM " + table)
	}

	f := &fixture{resolver: NewResolver(db.DB)}

	f.ann = models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "x"}
	f.bob = models.User{Name: "Bob", Email: "bob@x.com", PasswordHash: "x"}
	for _, user := range []*models.User{&f.ann, &f.bob} {
		if err := db.DB.Create(user).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	f.project = models.Project{Name: "Website Redesign", OwnerID: f.ann.ID}
	if err := db.DB.Create(&f.project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	f.todolist = models.Todolist{Name: "Launch Checklist", ProjectID: f.project.ID, CreatorID: f.ann.ID}
	if err := db.DB.Create(&f.todolist).Error; err != nil {
		t.Fatalf("failed to seed todolist: %v", err)
	}

	f.task = models.Task{Name: "Write copy", TodolistID: f.todolist.ID, ProjectID: f.project.ID, CreatorID: f.ann.ID}
	if err := db.DB.Create(&f.task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	f.note = models.ProjectNote{Name: "Kickoff", Body: "notes", ProjectID: f.project.ID}
	if err := db.DB.Create(&f.note).Error; err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}

	f.file = models.ProjectFile{Name: "Brief", Attachment: "projects/brief.pdf", Size: 10, ContentType: "application/pdf", ProjectID: f.project.ID}
	if err := db.DB.Create(&f.file).Error; err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	return f
}

func TestResolveOwnedChain(t *testing.T) {
	f := setup(t)

	project, err := f.resolver.Project(f.ann.ID, f.project.ID)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if project.Name != "Website Redesign" {
		t.Fatalf("got project %q", project.Name)
	}

	if _, err := f.resolver.Todolist(f.ann.ID, f.project.ID, f.todolist.ID); err != nil {
		t.Fatalf("todolist: %v", err)
	}
	if _, err := f.resolver.Task(f.ann.ID, f.project.ID, f.todolist.ID, f.task.ID); err != nil {
		t.Fatalf("task: %v", err)
	}
	if _, err := f.resolver.Note(f.ann.ID, f.project.ID, f.note.ID); err != nil {
		t.Fatalf("note: %v", err)
	}
	if _, err := f.resolver.File(f.ann.ID, f.project.ID, f.file.ID); err != nil {
		t.Fatalf("file: %v", err)
	}
}

func TestForeignResourcesAreNotFound(t *testing.T) {
	f := setup(t)

	if _, err := f.resolver.Project(f.bob.ID, f.project.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign project: got %v, want ErrNotFound", err)
	}
	if _, err := f.resolver.Todolist(f.bob.ID, f.project.ID, f.todolist.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign todolist: got %v, want ErrNotFound", err)
	}
	if _, err := f.resolver.Task(f.bob.ID, f.project.ID, f.todolist.ID, f.task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign task: got %v, want ErrNotFound", err)
	}
	if _, err := f.resolver.Note(f.bob.ID, f.project.ID, f.note.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign note: got %v, want ErrNotFound", err)
	}
	if _, err := f.resolver.File(f.bob.ID, f.project.ID, f.file.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign file: got %v, want ErrNotFound", err)
	}
}

func TestMissingIDsAreNotFound(t *testing.T) {
	f := setup(t)
	fake := "00000000-0000-0000-0000-000000000000"

	if _, err := f.resolver.Project(f.ann.ID, fake); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing project: got %v, want ErrNotFound", err)
	}
	if _, err := f.resolver.Task(f.ann.ID, f.project.ID, f.todolist.ID, fake); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing task: got %v, want ErrNotFound", err)
	}
}

func TestChainLinksMustAgree(t *testing.T) {
	f := setup(t)

	other := models.Project{Name: "Mobile App", OwnerID: f.ann.ID}
	if err := db.DB.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	// Real todolist, but addressed through the wrong parent project.
	if _, err := f.resolver.Todolist(f.ann.ID, other.ID, f.todolist.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mismatched parent: got %v, want ErrNotFound", err)
	}
	if _, err := f.resolver.Task(f.ann.ID, other.ID, f.todolist.ID, f.task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mismatched task chain: got %v, want ErrNotFound", err)
	}
}
