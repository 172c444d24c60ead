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

type FileSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Attachment  string    `json:"attachment"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func fileSummary(file models.ProjectFile) FileSummary {
	return FileSummary{
		ID:          file.ID,
		Name:        file.Name,
		Attachment:  file.Attachment,
		Size:        file.Size,
		ContentType: file.ContentType,
		CreatedAt:   file.CreatedAt,
	}
}

func UploadFile(ctx *gin.Context) {
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

	form := forms.ProjectFileForm{Name: ctx.PostForm("name")}

	if attachment, err := ctx.FormFile("attachment"); err == nil {
		form.Attachment = attachment
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	path, err := uploads.Save("projects", form.Attachment)

	if err != nil {
		log.Printf("Failed to store attachment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	file := models.ProjectFile{
		ProjectID:   project.ID,
		Name:        form.Name,
		Attachment:  path,
		Size:        form.Attachment.Size,
		ContentType: form.Attachment.Header.Get("Content-Type"),
	}

	if err := db.DB.Create(&file).Error; err != nil {
		log.Printf("Failed to create file record: %v", err)
		if err := uploads.Remove(path); err != nil {
			log.Printf("Failed to remove orphaned upload %s: %v", path, err)
		}
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "An error occurred while uploading the file. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/")
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "File uploaded successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+project.ID+"/")
}

func DeleteFile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	file, err := resolver().File(userID, ctx.Param("project_id"), ctx.Param("file_id"))

	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	if err := db.DB.Delete(file).Error; err != nil {
		log.Printf("Failed to delete file record: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to delete file. Please try again."})
		ctx.Redirect(http.StatusFound, "/projects/"+file.ProjectID+"/")
		return
	}

	if err := uploads.Remove(file.Attachment); err != nil {
		log.Printf("Failed to remove stored attachment %s: %v", file.Attachment, err)
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "File deleted successfully."})
	ctx.Redirect(http.StatusFound, "/projects/"+file.ProjectID+"/")
}
