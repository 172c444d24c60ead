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

type NoteSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func noteSummary(note models.ProjectNote) NoteSummary {
	return NoteSummary{
		ID:        note.ID,
		Name:      note.Name,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
}

func AddNote(ctx *gin.Context) {
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

	var form forms.ProjectNoteForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	note := models.ProjectNote{
		ProjectID: project.ID,
		Name:      form.Name,
		Body:      form.Body,
	}

	if err := db.DB.Create(&note).Error; err != nil {
		log.Printf("Failed to create note: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "An error occurred while creating the note. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/")
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Note created successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/")
}

func GetNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	note, err := resolver().Note(userID, ctx.Param("project_id"), ctx.Param("note_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"note":  noteSummary(*note),
		"flash": flash.Take(ctx),
	})
}

func EditNotePage(ctx *gin.Context) {
	GetNote(ctx)
}

func EditNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	note, err := resolver().Note(userID, ctx.Param("project_id"), ctx.Param("note_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	var form forms.ProjectNoteForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	note.Name = form.Name
	note.Body = form.Body

	if err := db.DB.Save(note).Error; err != nil {
		log.Printf("Failed to update note: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "An error occurred while updating the note. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/"+note.ProjectID+"/")
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Note updated successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+note.ProjectID+"/")
}

func DeleteNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	note, err := resolver().Note(userID, ctx.Param("project_id"), ctx.Param("note_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	if err := db.DB.Delete(note).Error; err != nil {
		log.Printf("Failed to delete note: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to delete note. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/"+note.ProjectID+"/")
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Note deleted successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+note.ProjectID+"/")
}
