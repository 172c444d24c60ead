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

type TodolistSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TodolistDetail struct {
	TodolistSummary
	Tasks []TaskSummary `json:"tasks"`
}

func todolistSummary(todolist models.Todolist) TodolistSummary {
	return TodolistSummary{
		ID:          todolist.ID,
		Name:        todolist.Name,
		Description: todolist.Description,
		CreatedAt:   todolist.CreatedAt,
	}
}

func AddTodolist(ctx *gin.Context) {
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

	var form forms.TodolistForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	var count int64
	if err := db.DB.Model(&models.Todolist{}).Where("project_id = ? AND name = ?", project.ID, form.Name).Count(&count).Error; err != nil {
		log.Printf("Failed to check todolist name: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		respondFieldErrors(ctx, forms.Errors{"name": "A todo list with this name already exists."})
		return
	}

	todolist := models.Todolist{
		Name:        form.Name,
		Description: form.Description,
		ProjectID:   project.ID,
		CreatorID:   userID,
	}

	if err := db.DB.Create(&todolist).Error; err != nil {
		if isUniqueViolation(err) {
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "A todo list with this name already exists."})
			ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/")
			return
		}
		log.Printf("Failed to create todolist: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo list"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Todo list created successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/")
}

func GetTodolist(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	todolist, err := resolver().Todolist(userID, ctx.Param("project_id"), ctx.Param("todolist_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	var tasks []models.Task

	if err := db.DB.Where("todolist_id = ?", todolist.ID).Order("created_at").Find(&tasks).Error; err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo list"})
		return
	}

	detail := TodolistDetail{TodolistSummary: todolistSummary(*todolist)}

	for _, task := range tasks {
		detail.Tasks = append(detail.Tasks, taskSummary(task))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"todolist": detail,
		"flash":    flash.Take(ctx),
	})
}

func EditTodolistPage(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	todolist, err := resolver().Todolist(userID, ctx.Param("project_id"), ctx.Param("todolist_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"todolist": todolistSummary(*todolist),
		"flash":    flash.Take(ctx),
	})
}

func EditTodolist(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	todolist, err := resolver().Todolist(userID, ctx.Param("project_id"), ctx.Param("todolist_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	var form forms.TodolistForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	todolist.Name = form.Name
	todolist.Description = form.Description

	if err := db.DB.Save(todolist).Error; err != nil {
		if isUniqueViolation(err) {
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "A todo list with this name already exists."})
			ctx.Redirect(http.StatusFound, "/projects/"+todolist.ProjectID+"/")
			return
		}
		log.Printf("Failed to update todolist: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo list"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Todo list updated successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+todolist.ProjectID+"/")
}

func DeleteTodolist(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	todolist, err := resolver().Todolist(userID, ctx.Param("project_id"), ctx.Param("todolist_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	// Tasks go with their list in one transaction.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todolist_id = ?", todolist.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(todolist).Error
	})

	if err != nil {
		log.Printf("Failed to delete todolist: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to delete todo list. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/"+todolist.ProjectID+"/")
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Todo list deleted successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+todolist.ProjectID+"/")
}
