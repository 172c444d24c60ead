package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/flash"
	"github.com/mahmoudessam820/planpilot/internal/models"
)

func TestGetProfileReturnsOwnProfile(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")

	w := get(r, "/profile/", session)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200, body %s", w.Code, w.Body.String())
	}

	// The profile row links back to its user.
	var profile models.Profile
	if err := db.DB.Preload("User").First(&profile).Error; err != nil {
		t.Fatalf("profile missing: %v", err)
	}
	if profile.User == nil || profile.User.Email != "ann@x.com" {
		t.Fatalf("user back-reference not loaded: %+v", profile.User)
	}
}

func TestEditProfilePersistsFields(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")

	w := postForm(r, "/profile/edit/", url.Values{
		"job_title":    {"Engineer"},
		"bio":          {"Updated bio"},
		"phone_number": {"1234567890"},
		"github":       {"https://github.com/ann"},
	}, session)

	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302, body %s", w.Code, w.Body.String())
	}
	if location := w.Header().Get("Location"); location != "/profile/" {
		t.Fatalf("got redirect to %q, want /profile/", location)
	}
	requireFlash(t, w, flash.Success, "Profile updated successfully!")

	var user models.User
	if err := db.DB.Where("email = ?", "ann@x.com").First(&user).Error; err != nil {
		t.Fatalf("user missing: %v", err)
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("profile missing: %v", err)
	}
	if profile.Bio != "Updated bio" || profile.PhoneNumber != "1234567890" {
		t.Fatalf("profile not updated: %+v", profile)
	}
}

func TestEditProfileInvalidPhoneRejected(t *testing.T) {
	r := setupServer(t)
	session := signupAndLogin(t, r, "Ann", "ann@x.com", "LongEnough1")

	w := postForm(r, "/profile/edit/", url.Values{
		"phone_number": {"not-a-number"},
	}, session)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", w.Code)
	}
	if _, ok := fieldErrors(t, w)["phone_number"]; !ok {
		t.Fatalf("phone_number error missing: %s", w.Body.String())
	}
}
