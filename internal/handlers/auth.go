package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/auth"
	"github.com/mahmoudessam820/planpilot/internal/flash"
	"github.com/mahmoudessam820/planpilot/internal/forms"
	"github.com/mahmoudessam820/planpilot/internal/models"
	"github.com/mahmoudessam820/planpilot/internal/types"
	"github.com/mahmoudessam820/planpilot/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   cookieDomain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SignupPage returns any pending notices for the signup form.
func SignupPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"flash": flash.Take(ctx)})
}

func Signup(ctx *gin.Context) {
	var form forms.SignupForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind signup form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", form.Email).First(&existingUser).Error

	if err == nil {
		respondFieldErrors(ctx, forms.Errors{"email": "A user with that email already exists."})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: string(passwordHash),
	}

	// The user and their empty profile are written together so a failure
	// leaves nothing behind.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: newUser.ID}).Error
	})

	if err != nil {
		if isUniqueViolation(err) {
			flash.Set(ctx, flash.Message{Level: flash.Error, Text: "Email already exists, Please try again with a different email."})
			ctx.Redirect(http.StatusFound, "/signup/")
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Account created successfully, Please log in."})
	ctx.Redirect(http.StatusFound, "/login/")
}

// LoginPage returns any pending notices for the login form.
func LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"flash": flash.Take(ctx)})
}

func Login(ctx *gin.Context) {
	var form forms.LoginForm

	if err := ctx.ShouldBind(&form); err != nil {
		log.Printf("Failed to bind login form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		respondFieldErrors(ctx, errs)
		return
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", form.Email).First(&existingUser).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(form.Password))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(existingUser.ID, existingUser.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, 60*60*24*7)

	flash.Set(ctx, flash.Message{Level: flash.Success, Text: "Login successful."})
	ctx.Redirect(http.StatusFound, "/projects/")
}

func Logout(ctx *gin.Context) {
	setSessionCookie(ctx, "", -1)

	flash.Set(ctx, flash.Message{Level: flash.Info, Text: "You have been logged out."})
	ctx.Redirect(http.StatusFound, "/login/")
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
	})
}
