package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/forms"
	"github.com/mahmoudessam820/planpilot/internal/ownership"
	"github.com/mahmoudessam820/planpilot/internal/storage"
	"gorm.io/gorm"
)

var (
	uploads      *storage.Uploads
	cookieDomain string
)

// InitUploads wires the media directory before the router starts serving.
func InitUploads(dir string) {
	uploads = storage.NewUploads(dir)
}

// InitCookieDomain scopes the session cookie to the configured domain.
func InitCookieDomain(domain string) {
	cookieDomain = domain
}

func resolver() *ownership.Resolver {
	return ownership.NewResolver(db.DB)
}

// respondResolveError maps a failed ownership resolution to a response.
// Absent and foreign resources are reported identically.
func respondResolveError(ctx *gin.Context, err error) {
	if errors.Is(err, ownership.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	log.Printf("Failed to resolve resource: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// respondFieldErrors returns the validation messages unmodified, the way the
// form would be re-rendered with inline errors.
func respondFieldErrors(ctx *gin.Context, errs forms.Errors) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

// isUniqueViolation reports whether a persistence failure was a uniqueness
// constraint, either via GORM's translated sentinel or the raw pq code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
