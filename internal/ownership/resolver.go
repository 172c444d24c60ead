// Package ownership centralizes the resolve-or-404 chain every handler
// needs: walk user -> project -> todolist -> task (or a project child),
// filtering each link by the authenticated owner. A missing link and a
// foreign link are deliberately indistinguishable, so non-owners learn
// nothing about which ids exist.
package ownership

import (
	"errors"

	"github.com/mahmoudessam820/planpilot/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when any link of the chain is absent or not owned
// by the requesting user.
var ErrNotFound = errors.New("resource not found")

type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

// translate collapses record-not-found into ErrNotFound and passes real
// database failures through.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Project resolves a project owned by the user.
func (r *Resolver) Project(userID, projectID string) (*models.Project, error) {
	var project models.Project

	err := r.DB.Where("id = ? AND owner_id = ?", projectID, userID).First(&project).Error
	if err != nil {
		return nil, translate(err)
	}

	return &project, nil
}

// Todolist resolves a todolist through its owning project.
func (r *Resolver) Todolist(userID, projectID, todolistID string) (*models.Todolist, error) {
	var todolist models.Todolist

	err := r.DB.
		Joins("JOIN projects ON projects.id = todolists.project_id").
		Where("todolists.id = ? AND todolists.project_id = ? AND projects.owner_id = ?", todolistID, projectID, userID).
		First(&todolist).Error
	if err != nil {
		return nil, translate(err)
	}

	return &todolist, nil
}

// Task resolves a task through its todolist and owning project.
func (r *Resolver) Task(userID, projectID, todolistID, taskID string) (*models.Task, error) {
	var task models.Task

	err := r.DB.
		Joins("JOIN todolists ON todolists.id = tasks.todolist_id").
		Joins("JOIN projects ON projects.id = todolists.project_id").
		Where("tasks.id = ? AND tasks.todolist_id = ? AND todolists.project_id = ? AND projects.owner_id = ?",
			taskID, todolistID, projectID, userID).
		First(&task).Error
	if err != nil {
		return nil, translate(err)
	}

	return &task, nil
}

// Note resolves a project note through its owning project.
func (r *Resolver) Note(userID, projectID, noteID string) (*models.ProjectNote, error) {
	var note models.ProjectNote

	err := r.DB.
		Joins("JOIN projects ON projects.id = project_notes.project_id").
		Where("project_notes.id = ? AND project_notes.project_id = ? AND projects.owner_id = ?", noteID, projectID, userID).
		First(&note).Error
	if err != nil {
		return nil, translate(err)
	}

	return &note, nil
}

// File resolves a project file through its owning project.
func (r *Resolver) File(userID, projectID, fileID string) (*models.ProjectFile, error) {
	var file models.ProjectFile

	err := r.DB.
		Joins("JOIN projects ON projects.id = project_files.project_id").
		Where("project_files.id = ? AND project_files.project_id = ? AND projects.owner_id = ?", fileID, projectID, userID).
		First(&file).Error
	if err != nil {
		return nil, translate(err)
	}

	return &file, nil
}
