// internal/api/auth_handlers.go
package api

import (
	"time"

	"giftwise/internal/auth"
	stderrors "giftwise/internal/common/errors"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func clientInfo(c *gin.Context) auth.ClientInfo {
	return auth.ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func (r *Router) setAuthCookie(c *gin.Context, creds *auth.Credentials) {
	maxAge := int(time.Until(creds.ExpiresAt).Seconds())
	c.SetCookie(r.deps.Cookie.Name, creds.Token, maxAge, "/", "", r.deps.Cookie.Secure, true)
}

func (r *Router) clearAuthCookie(c *gin.Context) {
	c.SetCookie(r.deps.Cookie.Name, "", -1, "/", "", r.deps.Cookie.Secure, true)
}

func (r *Router) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.errors.Respond(c, stderrors.NewValidationFailedError("request body must be valid JSON"))
		return
	}

	creds, err := r.deps.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, clientInfo(c))
	if err != nil {
		r.errors.Respond(c, err)
		return
	}

	r.setAuthCookie(c, creds)
	c.JSON(201, gin.H{"user": creds.User})
}

func (r *Router) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.errors.Respond(c, stderrors.NewValidationFailedError("request body must be valid JSON"))
		return
	}

	creds, err := r.deps.Auth.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		r.errors.Respond(c, err)
		return
	}

	r.setAuthCookie(c, creds)
	c.JSON(200, gin.H{"user": creds.User})
}

func (r *Router) handleLogout(c *gin.Context) {
	claims := currentClaims(c)
	if err := r.deps.Auth.Logout(c.Request.Context(), claims); err != nil {
		r.errors.Respond(c, err)
		return
	}

	r.clearAuthCookie(c)
	c.JSON(200, gin.H{"message": "Logged out successfully"})
}

func (r *Router) handleMe(c *gin.Context) {
	user := currentUser(c)
	c.JSON(200, gin.H{"user": user.Safe()})
}

func (r *Router) handleForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		r.errors.Respond(c, stderrors.NewValidationFailedError("email is required"))
		return
	}

	if err := r.deps.Auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		r.errors.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Password reset email sent"})
}

func (r *Router) handleResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		r.errors.Respond(c, stderrors.NewValidationFailedError("token is required"))
		return
	}

	if err := r.deps.Auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		r.errors.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Password has been reset"})
}
