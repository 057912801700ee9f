// internal/api/admin_handlers.go
package api

import (
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/models"

	"github.com/gin-gonic/gin"
)

const adminGiftListLimit = 100

type changeRoleRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (r *Router) handleAdminStats(c *gin.Context) {
	stats, err := r.deps.History.Stats(c.Request.Context())
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"stats": stats})
}

func (r *Router) handleAdminUsers(c *gin.Context) {
	users, err := r.deps.Users.List(c.Request.Context())
	if err != nil {
		r.errors.Respond(c, err)
		return
	}

	safe := make([]models.SafeUser, 0, len(users))
	for i := range users {
		safe = append(safe, users[i].Safe())
	}
	c.JSON(200, gin.H{"users": safe})
}

func (r *Router) handleChangeRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		r.errors.Respond(c, stderrors.NewValidationFailedError("userId is required"))
		return
	}
	if !models.ValidRole(req.Role) {
		r.errors.Respond(c, stderrors.NewValidationFailedError("role must be user or admin"))
		return
	}

	if err := r.deps.Users.UpdateRole(c.Request.Context(), req.UserID, req.Role); err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Role updated"})
}

func (r *Router) handleAdminGifts(c *gin.Context) {
	gifts, err := r.deps.Gifts.ListAll(c.Request.Context(), adminGiftListLimit)
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"gifts": gifts})
}
