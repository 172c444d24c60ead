package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/flash"
	"github.com/mahmoudessam820/planpilot/internal/forms"
	"github.com/mahmoudessam820/planpilot/internal/models"
	"github.com/mahmoudessam820/planpilot/internal/utils"
	"gorm.io/gorm"
)

type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectDetail struct {
	ProjectSummary
	Todolists []TodolistSummary `json:"todolists"`
	Files     []FileSummary     `json:"files"`
	Notes     []NoteSummary     `json:"notes"`
}

func projectSummary(project models.Project) ProjectSummary {
	return ProjectSummary{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
	}
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := db.DB.Where("owner_id = ?", userID).Order("created_at").Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectSummary, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectSummary(project))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"projects": response,
		"flash":    flash.Take(ctx),
	})
}

func CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var form forms.ProjectForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	var count int64
	if err := db.DB.Model(&models.Project{}).Where("owner_id = ? AND name = ?", userID, form.Name).Count(&count).Error; err != nil {
		log.Printf("Failed to check project name: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		respondFieldErrors(ctx, forms.Errors{"name": "A project with this name already exists."})
		return
	}

	project := models.Project{
		Name:        form.Name,
		Description: form.Description,
		OwnerID:     userID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost the race against a concurrent submission with the
			// same name; the unique index is the authority.
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to create project: a project with this name already exists."})
			ctx.Redirect(http.StatusFound, "/projects/add/")
			return
		}
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Project created successfully."})
	ctx.Redirect(http.StatusFound, "/projects/")
}

func GetProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := resolver().Project(userID, ctx.Param("project_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	if err := db.DB.Preload("Todolists").Preload("Files").Preload("Notes").First(project, "id = ?", project.ID).Error; err != nil {
		log.Printf("Failed to load project children: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	detail := ProjectDetail{ProjectSummary: projectSummary(*project)}

	for _, todolist := range project.Todolists {
		detail.Todolists = append(detail.Todolists, todolistSummary(todolist))
	}
	for _, file := range project.Files {
		detail.Files = append(detail.Files, fileSummary(file))
	}
	for _, note := range project.Notes {
		detail.Notes = append(detail.Notes, noteSummary(note))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"project": detail,
		"flash":   flash.Take(ctx),
	})
}

func EditProjectPage(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := resolver().Project(userID, ctx.Param("project_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"project": projectSummary(*project),
		"flash":   flash.Take(ctx),
	})
}

func EditProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := resolver().Project(userID, ctx.Param("project_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	var form forms.ProjectForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	project.Name = form.Name
	project.Description = form.Description

	if err := db.DB.Save(project).Error; err != nil {
		if isUniqueViolation(err) {
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to update project: a project with this name already exists."})
			ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/edit/")
			return
		}
		log.Printf("Failed to update project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Project updated successfully."})
	ctx.Redirect(http.StatusFound, "/projects/")
}

func DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := resolver().Project(userID, ctx.Param("project_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	var files []models.ProjectFile
	if err := db.DB.Where("project_id = ?", project.ID).Find(&files).Error; err != nil {
		log.Printf("Failed to list project files: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	// Children are removed in the same transaction as the project so no
	// orphan rows survive a partial failure.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Todolist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectNote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})

	if err != nil {
		log.Printf("Failed to delete project: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to delete project. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/")
		return
	}

	for _, file := range files {
		if err := uploads.Remove(file.Attachment); err != nil {
			log.Printf("Failed to remove stored attachment %s: %v", file.Attachment, err)
		}
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Project deleted successfully."})
	ctx.Redirect(http.StatusFound, "/projects/")
}
