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
)

type TaskSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

func taskSummary(task models.Task) TaskSummary {
	return TaskSummary{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Done:        task.Done,
		CreatedAt:   task.CreatedAt,
	}
}

func taskRedirect(task *models.Task) string {
	return "/projects/" + task.ProjectID + "/" + task.TodolistID + "/"
}

func AddTask(ctx *gin.Context) {
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

	var form forms.TaskForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	var count int64
	if err := db.DB.Model(&models.Task{}).Where("todolist_id = ? AND name = ?", todolist.ID, form.Name).Count(&count).Error; err != nil {
		log.Printf("Failed to check task name: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		respondFieldErrors(ctx, forms.Errors{"name": "A task with this name already exists."})
		return
	}

	task := models.Task{
		Name:        form.Name,
		Description: form.Description,
		TodolistID:  todolist.ID,
		ProjectID:   todolist.ProjectID,
		CreatorID:   userID,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		if isUniqueViolation(err) {
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "An error occurred while creating the task. Please try again."})
			ctx.Redirect(http.StatusFound, taskRedirect(&task))
			return
		}
		log.Printf("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Task created successfully."})
	ctx.Redirect(http.StatusFound, taskRedirect(&task))
}

func GetTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	task, err := resolver().Task(userID, ctx.Param("project_id"), ctx.Param("todolist_id"), ctx.Param("task_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"task":  taskSummary(*task),
		"flash": flash.Take(ctx),
	})
}

func EditTaskPage(ctx *gin.Context) {
	GetTask(ctx)
}

func EditTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	task, err := resolver().Task(userID, ctx.Param("project_id"), ctx.Param("todolist_id"), ctx.Param("task_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	var form forms.TaskForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	task.Name = form.Name
	task.Description = form.Description

	if err := db.DB.Save(task).Error; err != nil {
		if isUniqueViolation(err) {
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "An error occurred while updating the task. Please try again."})
			ctx.Redirect(http.StatusFound, taskRedirect(task))
			return
		}
		log.Printf("Failed to update task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Task updated successfully."})
	ctx.Redirect(http.StatusFound, taskRedirect(task))
}

// CompleteTask toggles the completion flag.
func CompleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	task, err := resolver().Task(userID, ctx.Param("project_id"), ctx.Param("todolist_id"), ctx.Param("task_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	task.Done = !task.Done

	if err := db.DB.Model(task).Update("done", task.Done).Error; err != nil {
		log.Printf("Failed to update task completion: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"task": taskSummary(*task)})
}

func DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	task, err := resolver().Task(userID, ctx.Param("project_id"), ctx.Param("todolist_id"), ctx.Param("task_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	if err := db.DB.Delete(task).Error; err != nil {
		log.Printf("Failed to delete task: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to delete task. Please try again."})
		ctx.Redirect(http.StatusFound, taskRedirect(task))
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Task deleted successfully"})
	ctx.Redirect(http.StatusFound, taskRedirect(task))
}
