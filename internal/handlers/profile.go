package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/flash"
	"github.com/mahmoudessam820/planpilot/internal/forms"
	"github.com/mahmoudessam820/planpilot/internal/models"
	"github.com/mahmoudessam820/planpilot/internal/utils"
)

type ProfileResponse struct {
	ID          string `json:"id"`
	JobTitle    string `json:"job_title"`
	Bio         string `json:"bio"`
	Avatar      string `json:"avatar"`
	CoverPhoto  string `json:"cover_photo"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phone_number"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	Website     string `json:"website"`
	YouTube     string `json:"youtube"`
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	X           string `json:"x"`
}

func profileResponse(profile models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID,
		JobTitle:    profile.JobTitle,
		Bio:         profile.Bio,
		Avatar:      profile.Avatar,
		CoverPhoto:  profile.CoverPhoto,
		Country:     profile.Country,
		City:        profile.City,
		Department:  profile.Department,
		PhoneNumber: profile.PhoneNumber,
		LinkedIn:    profile.LinkedIn,
		GitHub:      profile.GitHub,
		Website:     profile.Website,
		YouTube:     profile.YouTube,
		Facebook:    profile.Facebook,
		Instagram:   profile.Instagram,
		X:           profile.X,
	}
}

func currentProfile(ctx *gin.Context) (*models.Profile, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	var profile models.Profile

	// Accounts predating the profile row get one on first access.
	if err := db.DB.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
		log.Printf("Failed to load profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	return &profile, true
}

func GetProfile(ctx *gin.Context) {
	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile": profileResponse(*profile),
		"flash":   flash.Take(ctx),
	})
}

func EditProfilePage(ctx *gin.Context) {
	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile": profileResponse(*profile),
		"flash":   flash.Take(ctx),
	})
}

func EditProfile(ctx *gin.Context) {
	profile, ok := currentProfile(ctx)
	if !ok {
		return
	}

	var form forms.ProfileForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind profile form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if avatar, err := ctx.FormFile("avatar"); err == nil {
		form.Avatar = avatar
	}
	if cover, err := ctx.FormFile("cover_photo"); err == nil {
		form.CoverPhoto = cover
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	if form.Avatar != nil {
		path, err := uploads.Save("avatars", form.Avatar)
		if err != nil {
			log.Printf("Failed to store avatar: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		profile.Avatar = path
	}

	if form.CoverPhoto != nil {
		path, err := uploads.Save("covers", form.CoverPhoto)
		if err != nil {
			log.Printf("Failed to store cover photo: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		profile.CoverPhoto = path
	}

	profile.JobTitle = form.JobTitle
	profile.Bio = form.Bio
	profile.Country = form.Country
	profile.City = form.City
	profile.Department = form.Department
	profile.PhoneNumber = form.PhoneNumber
	profile.LinkedIn = form.LinkedIn
	profile.GitHub = form.GitHub
	profile.Website = form.Website
	profile.YouTube = form.YouTube
	profile.Facebook = form.Facebook
	profile.Instagram = form.Instagram
	profile.X = form.X

	if err := db.DB.Save(profile).Error; err != nil {
		log.Printf("Failed to update profile: %v", err)
		flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Failed to update profile. Please try again."})
		ctx.Redirect(http.StatusFound, "/profile/edit/")
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Profile updated successfully!"})
	ctx.Redirect(http.StatusFound, "/profile/")
}
