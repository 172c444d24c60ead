// Package flash carries one-time notices across a redirect, the way the
// account and project flows surface "created" / "failed" feedback. The
// pending messages live in a short-lived HttpOnly cookie and are consumed
// by the next rendered view.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

const cookieName = "flash"

// Set stores messages for the next request, replacing any pending ones.
func Set(ctx *gin.Context, messages ...Message) {
	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})
}

// Take returns the pending messages and clears the cookie. A missing or
// malformed cookie yields no messages.
func Take(ctx *gin.Context) []Message {
	value, err := ctx.Cookie(cookieName)
	if err != nil || value == "" {
		return nil
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	payload, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var messages []Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}

	return messages
}
