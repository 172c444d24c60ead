package handlers_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/auth"
	"github.com/mahmoudessam820/planpilot/internal/config"
	"github.com/mahmoudessam820/planpilot/internal/flash"
	"github.com/mahmoudessam820/planpilot/internal/handlers"
	"github.com/mahmoudessam820/planpilot/internal/models"
	"github.com/mahmoudessam820/planpilot/internal/router"
)

// setupServer wires a fresh router against the in-memory database. Rows are
// wiped per test so cases stay independent.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if err := auth.InitJWTSecret("test-secret"); err != nil {
		t.Fatalf("InitJWTSecret: %v", err)
	}

	if err := db.ConnectTestDatabase(); err != nil {
		t.Fatalf("ConnectTestDatabase: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("MigrateDatabase: %v", err)
	}

	for _, model := range []interface{}{
		&models.Task{}, &models.Todolist{}, &models.ProjectNote{},
		&models.ProjectFile{}, &models.Project{}, &models.Profile{}, &models.User{},
	} {
		if err := db.DB.Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("failed to clean table: %v", err)
		}
	}

	mediaDir := t.TempDir()
	handlers.InitUploads(mediaDir)

	return router.NewRouter(&config.Config{
		UploadDir: mediaDir,
		MediaURL:  "/media",
	})
}

func postForm(r *gin.Engine, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signup creates an account through the public endpoint.
func signup(t *testing.T, r *gin.Engine, name, email, password string) {
	t.Helper()

	w := postForm(r, "/signup/", url.Values{
		"name":      {name},
		"email":     {email},
		"password1": {password},
		"password2": {password},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("signup for %s: got status %d, body %s", email, w.Code, w.Body.String())
	}
}

// login authenticates and returns the session cookie.
func login(t *testing.T, r *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := postForm(r, "/login/", url.Values{
		"email":    {email},
		"password": {password},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("login for %s: got status %d, body %s", email, w.Code, w.Body.String())
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie
		}
	}

	t.Fatalf("login for %s: no session cookie set", email)
	return nil
}

func signupAndLogin(t *testing.T, r *gin.Engine, name, email, password string) *http.Cookie {
	t.Helper()
	signup(t, r, name, email, password)
	return login(t, r, email, password)
}

// flashMessages decodes the pending notices set on a response.
func flashMessages(t *testing.T, w *httptest.ResponseRecorder) []flash.Message {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != "flash" || cookie.Value == "" {
			continue
		}

		payload, err := base64.URLEncoding.DecodeString(cookie.Value)
		if err != nil {
			t.Fatalf("failed to decode flash cookie: %v", err)
		}

		var messages []flash.Message
		if err := json.Unmarshal(payload, &messages); err != nil {
			t.Fatalf("failed to unmarshal flash cookie: %v", err)
		}
		return messages
	}

	return nil
}

func requireFlash(t *testing.T, w *httptest.ResponseRecorder, level flash.Level, text string) {
	t.Helper()

	for _, message := range flashMessages(t, w) {
		if message.Level == level && message.Text == text {
			return
		}
	}

	t.Fatalf("flash %q (%s) not set, got %v", text, level, flashMessages(t, w))
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %s: %v", w.Body.String(), err)
	}
	return body.Errors
}

// createProject persists a project through the handler and returns its id.
func createProject(t *testing.T, r *gin.Engine, session *http.Cookie, name string) string {
	t.Helper()

	w := postForm(r, "/projects/add/", url.Values{
		"name":        {name},
		"description": {"test project"},
	}, session)

	if w.Code != http.StatusFound {
		t.Fatalf("create project %q: got status %d, body %s", name, w.Code, w.Body.String())
	}

	var project models.Project
	if err := db.DB.Where("name = ?", name).First(&project).Error; err != nil {
		t.Fatalf("project %q not persisted: %v", name, err)
	}
	return project.ID
}

// createTodolist persists a list under a project and returns its id.
func createTodolist(t *testing.T, r *gin.Engine, session *http.Cookie, projectID, name string) string {
	t.Helper()

	w := postForm(r, "/projects/"+projectID+"/add/", url.Values{
		"name":        {name},
		"description": {"test list"},
	}, session)

	if w.Code != http.StatusFound {
		t.Fatalf("create todolist %q: got status %d, body %s", name, w.Code, w.Body.String())
	}

	var todolist models.Todolist
	if err := db.DB.Where("project_id = ? AND name = ?", projectID, name).First(&todolist).Error; err != nil {
		t.Fatalf("todolist %q not persisted: %v", name, err)
	}
	return todolist.ID
}

// createTask persists a task under a todolist and returns its id.
func createTask(t *testing.T, r *gin.Engine, session *http.Cookie, projectID, todolistID, name string) string {
	t.Helper()

	w := postForm(r, "/projects/"+projectID+"/"+todolistID+"/add/", url.Values{
		"name":        {name},
		"description": {"test task"},
	}, session)

	if w.Code != http.StatusFound {
		t.Fatalf("create task %q: got status %d, body %s", name, w.Code, w.Body.String())
	}

	var task models.Task
	if err := db.DB.Where("todolist_id = ? AND name = ?", todolistID, name).First(&task).Error; err != nil {
		t.Fatalf("task %q not persisted: %v", name, err)
	}
	return task.ID
}
